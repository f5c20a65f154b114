package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNamedColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected NamedColor
		ok       bool
	}{
		{"red", "red", Red, true},
		{"dark_purple", "dark_purple", DarkPurple, true},
		{"light_purple", "light_purple", LightPurple, true},
		{"unknown name", "crimson", 0, false},
		{"uppercase not accepted", "RED", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNamedColor(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestNamedColor_Hex(t *testing.T) {
	assert.Equal(t, "#FF5555", Red.Hex())
	assert.Equal(t, "#000000", Black.Hex())
	assert.Equal(t, "#FFAA00", Gold.Hex())
	assert.Equal(t, "#FFFFFF", White.Hex())
}

func TestNamedColorFromHex(t *testing.T) {
	got, ok := NamedColorFromHex("#FF5555")
	require.True(t, ok)
	assert.Equal(t, Red, got)

	got, ok = NamedColorFromHex("#ff5555")
	require.True(t, ok, "hex lookup is case-insensitive")
	assert.Equal(t, Red, got)

	_, ok = NamedColorFromHex("#123456")
	assert.False(t, ok)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		str   string
	}{
		{"named", "aqua", true, "aqua"},
		{"hex lowercase", "#a1b2c3", true, "#a1b2c3"},
		{"hex uppercase", "#A1B2C3", true, "#A1B2C3"},
		{"too short", "#abc", false, ""},
		{"too long", "#aabbccdd", false, ""},
		{"missing hash", "a1b2c3", false, ""},
		{"bad digit", "#a1b2cg", false, ""},
		{"garbage", "chartreuse", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColor(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.str, got.String())
			}
		})
	}
}

func TestColor_HexVariantStaysDistinct(t *testing.T) {
	// A hex color that happens to equal a named color's canonical value is
	// still a hex color; only CanonicalNamed folds the two together.
	hex := HexColor("#FF5555")
	named := Named(Red)

	assert.False(t, hex.Equal(named))
	_, isNamed := hex.Named()
	assert.False(t, isNamed)

	canonical, ok := hex.CanonicalNamed()
	require.True(t, ok)
	assert.Equal(t, Red, canonical)
}

func TestColor_Hex(t *testing.T) {
	assert.Equal(t, "#55FF55", Named(Green).Hex())
	assert.Equal(t, "#abcdef", HexColor("#abcdef").Hex())
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "dark_aqua", Named(DarkAqua).String())
	assert.Equal(t, "#abcdef", HexColor("#abcdef").String())
}
