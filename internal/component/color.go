package component

import "strings"

// NamedColor is one of the 16 named chat colors.
type NamedColor int

const (
	Black NamedColor = iota
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
)

// namedColorNames maps each NamedColor to its canonical snake_case name.
var namedColorNames = [...]string{
	Black:       "black",
	DarkBlue:    "dark_blue",
	DarkGreen:   "dark_green",
	DarkAqua:    "dark_aqua",
	DarkRed:     "dark_red",
	DarkPurple:  "dark_purple",
	Gold:        "gold",
	Gray:        "gray",
	DarkGray:    "dark_gray",
	Blue:        "blue",
	Green:       "green",
	Aqua:        "aqua",
	Red:         "red",
	LightPurple: "light_purple",
	Yellow:      "yellow",
	White:       "white",
}

// namedColorHex maps each NamedColor to its canonical #RRGGBB value.
var namedColorHex = [...]string{
	Black:       "#000000",
	DarkBlue:    "#0000AA",
	DarkGreen:   "#00AA00",
	DarkAqua:    "#00AAAA",
	DarkRed:     "#AA0000",
	DarkPurple:  "#AA00AA",
	Gold:        "#FFAA00",
	Gray:        "#AAAAAA",
	DarkGray:    "#555555",
	Blue:        "#5555FF",
	Green:       "#55FF55",
	Aqua:        "#55FFFF",
	Red:         "#FF5555",
	LightPurple: "#FF55FF",
	Yellow:      "#FFFF55",
	White:       "#FFFFFF",
}

var namedColorByName = func() map[string]NamedColor {
	m := make(map[string]NamedColor, len(namedColorNames))
	for c, name := range namedColorNames {
		m[name] = NamedColor(c)
	}
	return m
}()

var namedColorByHex = func() map[string]NamedColor {
	m := make(map[string]NamedColor, len(namedColorHex))
	for c, hex := range namedColorHex {
		m[hex] = NamedColor(c)
	}
	return m
}()

// String returns the canonical snake_case name.
func (n NamedColor) String() string {
	if n < 0 || int(n) >= len(namedColorNames) {
		return "unknown"
	}
	return namedColorNames[n]
}

// Hex returns the canonical #RRGGBB value for the color.
func (n NamedColor) Hex() string {
	if n < 0 || int(n) >= len(namedColorHex) {
		return ""
	}
	return namedColorHex[n]
}

// ParseNamedColor looks up a named color by its snake_case name.
func ParseNamedColor(name string) (NamedColor, bool) {
	c, ok := namedColorByName[name]
	return c, ok
}

// NamedColorFromHex maps a canonical #RRGGBB value back to its named color.
// The comparison is case-insensitive on the hex digits.
func NamedColorFromHex(hex string) (NamedColor, bool) {
	c, ok := namedColorByHex[strings.ToUpper(hex)]
	return c, ok
}

// Color is a text color: either one of the 16 named colors or an arbitrary
// #RRGGBB value.
type Color struct {
	named NamedColor
	hex   string
	isHex bool
}

// Named wraps a NamedColor.
func Named(n NamedColor) Color {
	return Color{named: n}
}

// HexColor wraps a raw #RRGGBB string without validation. Use ParseColor
// when the input needs to be checked.
func HexColor(hex string) Color {
	return Color{hex: hex, isHex: true}
}

// ParseColor resolves a color argument: first as a named color, then as a
// strict #RRGGBB hex value.
func ParseColor(s string) (Color, bool) {
	if n, ok := ParseNamedColor(s); ok {
		return Named(n), true
	}
	if isHexColor(s) {
		return HexColor(s), true
	}
	return Color{}, false
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// Named reports the named color, if this color is one.
func (c Color) Named() (NamedColor, bool) {
	if c.isHex {
		return 0, false
	}
	return c.named, true
}

// Hex returns the #RRGGBB value: the raw hex for hex colors, the canonical
// hex for named colors.
func (c Color) Hex() string {
	if c.isHex {
		return c.hex
	}
	return c.named.Hex()
}

// CanonicalNamed resolves the color to a named color when possible: either
// it is one, or it is a hex value equal to a named color's canonical hex.
func (c Color) CanonicalNamed() (NamedColor, bool) {
	if !c.isHex {
		return c.named, true
	}
	return NamedColorFromHex(c.hex)
}

// Equal reports whether two colors are the same variant with the same value.
// A hex color equal to a named color's canonical hex is still distinct from
// that named color.
func (c Color) Equal(other Color) bool {
	return c == other
}

// String returns the color name for named colors, the hex value otherwise.
func (c Color) String() string {
	if c.isHex {
		return c.hex
	}
	return c.named.String()
}
