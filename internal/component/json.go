package component

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// JSON codec for the component tree. A node on the wire is a bare string,
// an array of nodes, or an object; object attributes are present-or-absent
// (never null), and unknown object attributes are rejected.

// Marshal encodes a component tree.
func Marshal(c Component) ([]byte, error) {
	return json.Marshal(c)
}

// MarshalIndent encodes a component tree with indentation.
func MarshalIndent(c Component, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(c, prefix, indent)
}

// Unmarshal decodes a component tree from its string, array, or object
// form.
func Unmarshal(data []byte) (Component, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty component document")
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, err
		}
		return Text(s), nil
	case '[':
		var raws []json.RawMessage
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, err
		}
		list := make(List, 0, len(raws))
		for _, raw := range raws {
			child, err := Unmarshal(raw)
			if err != nil {
				return nil, err
			}
			list = append(list, child)
		}
		return list, nil
	case '{':
		return unmarshalNode(trimmed)
	default:
		return nil, fmt.Errorf("component must be a string, array, or object")
	}
}

// MarshalJSON encodes the leaf as a bare JSON string.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// MarshalJSON encodes the list as a JSON array.
func (l List) MarshalJSON() ([]byte, error) {
	return json.Marshal([]Component(l))
}

// nodeJSON is the wire shape of a Node: discriminator, content payloads,
// children, then style.
type nodeJSON struct {
	Type          ContentType  `json:"type,omitempty"`
	Text          *string      `json:"text,omitempty"`
	Translate     *string      `json:"translate,omitempty"`
	Fallback      *string      `json:"fallback,omitempty"`
	With          []Component  `json:"with,omitempty"`
	Score         *Score       `json:"score,omitempty"`
	Selector      *string      `json:"selector,omitempty"`
	Separator     Component    `json:"separator,omitempty"`
	Keybind       *string      `json:"keybind,omitempty"`
	NBT           *string      `json:"nbt,omitempty"`
	Source        NBTSource    `json:"source,omitempty"`
	Interpret     *bool        `json:"interpret,omitempty"`
	Block         *string      `json:"block,omitempty"`
	Entity        *string      `json:"entity,omitempty"`
	Storage       *string      `json:"storage,omitempty"`
	Extra         []Component  `json:"extra,omitempty"`
	Color         *Color       `json:"color,omitempty"`
	Font          *string      `json:"font,omitempty"`
	Bold          *bool        `json:"bold,omitempty"`
	Italic        *bool        `json:"italic,omitempty"`
	Underlined    *bool        `json:"underlined,omitempty"`
	Strikethrough *bool        `json:"strikethrough,omitempty"`
	Obfuscated    *bool        `json:"obfuscated,omitempty"`
	Shadow        *ShadowColor `json:"shadow_color,omitempty"`
	Insertion     *string      `json:"insertion,omitempty"`
	Click         *ClickEvent  `json:"click_event,omitempty"`
	Hover         *HoverEvent  `json:"hover_event,omitempty"`
}

// MarshalJSON encodes the node as a JSON object, omitting absent fields.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeJSON{
		Type:          n.Type,
		Text:          n.Text,
		Translate:     n.Translate,
		Fallback:      n.Fallback,
		With:          n.With,
		Score:         n.Score,
		Selector:      n.Selector,
		Separator:     n.Separator,
		Keybind:       n.Keybind,
		NBT:           n.NBT,
		Source:        n.Source,
		Interpret:     n.Interpret,
		Block:         n.Block,
		Entity:        n.Entity,
		Storage:       n.Storage,
		Extra:         n.Extra,
		Color:         n.Style.Color,
		Font:          n.Style.Font,
		Bold:          n.Style.Bold,
		Italic:        n.Style.Italic,
		Underlined:    n.Style.Underlined,
		Strikethrough: n.Style.Strikethrough,
		Obfuscated:    n.Style.Obfuscated,
		Shadow:        n.Style.Shadow,
		Insertion:     n.Style.Insertion,
		Click:         n.Style.Click,
		Hover:         n.Style.Hover,
	})
}

// rawComponent defers nested component decoding to Unmarshal.
type rawComponent struct {
	c Component
}

func (r *rawComponent) UnmarshalJSON(data []byte) error {
	c, err := Unmarshal(data)
	if err != nil {
		return err
	}
	r.c = c
	return nil
}

// nodeDecode mirrors nodeJSON with deferred decoding for nested components.
type nodeDecode struct {
	Type          ContentType    `json:"type"`
	Text          *string        `json:"text"`
	Translate     *string        `json:"translate"`
	Fallback      *string        `json:"fallback"`
	With          []rawComponent `json:"with"`
	Score         *Score         `json:"score"`
	Selector      *string        `json:"selector"`
	Separator     *rawComponent  `json:"separator"`
	Keybind       *string        `json:"keybind"`
	NBT           *string        `json:"nbt"`
	Source        NBTSource      `json:"source"`
	Interpret     *bool          `json:"interpret"`
	Block         *string        `json:"block"`
	Entity        *string        `json:"entity"`
	Storage       *string        `json:"storage"`
	Extra         []rawComponent `json:"extra"`
	Color         *Color         `json:"color"`
	Font          *string        `json:"font"`
	Bold          *bool          `json:"bold"`
	Italic        *bool          `json:"italic"`
	Underlined    *bool          `json:"underlined"`
	Strikethrough *bool          `json:"strikethrough"`
	Obfuscated    *bool          `json:"obfuscated"`
	Shadow        *ShadowColor   `json:"shadow_color"`
	Insertion     *string        `json:"insertion"`
	Click         *ClickEvent    `json:"click_event"`
	Hover         *HoverEvent    `json:"hover_event"`
}

func unmarshalNode(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var raw nodeDecode
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding component object: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after component object")
	}

	n := &Node{
		Type:      raw.Type,
		Text:      raw.Text,
		Translate: raw.Translate,
		Fallback:  raw.Fallback,
		With:      unwrapComponents(raw.With),
		Score:     raw.Score,
		Selector:  raw.Selector,
		Keybind:   raw.Keybind,
		NBT:       raw.NBT,
		Source:    raw.Source,
		Interpret: raw.Interpret,
		Block:     raw.Block,
		Entity:    raw.Entity,
		Storage:   raw.Storage,
		Extra:     unwrapComponents(raw.Extra),
		Style: Style{
			Color:         raw.Color,
			Font:          raw.Font,
			Bold:          raw.Bold,
			Italic:        raw.Italic,
			Underlined:    raw.Underlined,
			Strikethrough: raw.Strikethrough,
			Obfuscated:    raw.Obfuscated,
			Shadow:        raw.Shadow,
			Insertion:     raw.Insertion,
			Click:         raw.Click,
			Hover:         raw.Hover,
		},
	}
	if raw.Separator != nil {
		n.Separator = raw.Separator.c
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

func unwrapComponents(raws []rawComponent) []Component {
	if raws == nil {
		return nil
	}
	out := make([]Component, len(raws))
	for i, r := range raws {
		out[i] = r.c
	}
	return out
}

// MarshalJSON encodes a color as its name, or its hex value for non-named
// colors.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a color string: a known name becomes the named
// color, anything else is kept as a hex value.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if n, ok := ParseNamedColor(s); ok {
		*c = Named(n)
	} else {
		*c = HexColor(s)
	}
	return nil
}

type clickEventJSON struct {
	Action  ClickAction `json:"action"`
	URL     *string     `json:"url,omitempty"`
	Path    *string     `json:"path,omitempty"`
	Command *string     `json:"command,omitempty"`
	Page    *int        `json:"page,omitempty"`
	Value   *string     `json:"value,omitempty"`
}

// MarshalJSON encodes the event tagged by its action, with the one payload
// field that action uses.
func (e ClickEvent) MarshalJSON() ([]byte, error) {
	out := clickEventJSON{Action: e.Action}
	v := e.Value
	switch e.Action {
	case ClickOpenURL:
		out.URL = &v
	case ClickOpenFile:
		out.Path = &v
	case ClickRunCommand, ClickSuggestCommand:
		out.Command = &v
	case ClickChangePage:
		p := e.Page
		out.Page = &p
	case ClickCopyToClipboard:
		out.Value = &v
	default:
		return nil, fmt.Errorf("unknown click action %q", e.Action)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes an action-tagged click event.
func (e *ClickEvent) UnmarshalJSON(data []byte) error {
	var raw clickEventJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ev := ClickEvent{Action: raw.Action}
	pick := func(field *string, name string) error {
		if field == nil {
			return fmt.Errorf("click action %q requires %q", raw.Action, name)
		}
		ev.Value = *field
		return nil
	}
	var err error
	switch raw.Action {
	case ClickOpenURL:
		err = pick(raw.URL, "url")
	case ClickOpenFile:
		err = pick(raw.Path, "path")
	case ClickRunCommand, ClickSuggestCommand:
		err = pick(raw.Command, "command")
	case ClickChangePage:
		if raw.Page == nil {
			err = fmt.Errorf("click action %q requires %q", raw.Action, "page")
		} else {
			ev.Page = *raw.Page
		}
	case ClickCopyToClipboard:
		err = pick(raw.Value, "value")
	default:
		err = fmt.Errorf("unknown click action %q", raw.Action)
	}
	if err != nil {
		return err
	}
	*e = ev
	return nil
}

type hoverEventJSON struct {
	Action     HoverAction     `json:"action"`
	Value      Component       `json:"value,omitempty"`
	ID         *string         `json:"id,omitempty"`
	Count      *int32          `json:"count,omitempty"`
	Components json.RawMessage `json:"components,omitempty"`
	Name       Component       `json:"name,omitempty"`
	UUID       *UUIDRepr       `json:"uuid,omitempty"`
}

// MarshalJSON encodes the event tagged by its action.
func (e HoverEvent) MarshalJSON() ([]byte, error) {
	out := hoverEventJSON{Action: e.Action}
	switch e.Action {
	case HoverShowText:
		out.Value = e.Text
	case HoverShowItem:
		if e.Item == nil {
			return nil, fmt.Errorf("show_item hover event has no item")
		}
		id := e.Item.ID
		out.ID = &id
		out.Count = e.Item.Count
		out.Components = e.Item.Components
	case HoverShowEntity:
		if e.Entity == nil {
			return nil, fmt.Errorf("show_entity hover event has no entity")
		}
		id := e.Entity.ID
		out.Name = e.Entity.Name
		out.ID = &id
		u := e.Entity.UUID
		out.UUID = &u
	default:
		return nil, fmt.Errorf("unknown hover action %q", e.Action)
	}
	return json.Marshal(out)
}

type hoverEventDecode struct {
	Action     HoverAction     `json:"action"`
	Value      json.RawMessage `json:"value"`
	ID         *string         `json:"id"`
	Count      *int32          `json:"count"`
	Components json.RawMessage `json:"components"`
	Name       json.RawMessage `json:"name"`
	UUID       *UUIDRepr       `json:"uuid"`
}

// UnmarshalJSON decodes an action-tagged hover event.
func (e *HoverEvent) UnmarshalJSON(data []byte) error {
	var raw hoverEventDecode
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ev := HoverEvent{Action: raw.Action}
	switch raw.Action {
	case HoverShowText:
		if raw.Value == nil {
			return fmt.Errorf("show_text hover event requires %q", "value")
		}
		value, err := Unmarshal(raw.Value)
		if err != nil {
			return err
		}
		ev.Text = value
	case HoverShowItem:
		if raw.ID == nil {
			return fmt.Errorf("show_item hover event requires %q", "id")
		}
		ev.Item = &ItemHover{ID: *raw.ID, Count: raw.Count, Components: raw.Components}
	case HoverShowEntity:
		if raw.ID == nil || raw.UUID == nil {
			return fmt.Errorf("show_entity hover event requires %q and %q", "id", "uuid")
		}
		ev.Entity = &EntityHover{ID: *raw.ID, UUID: *raw.UUID}
		if raw.Name != nil {
			name, err := Unmarshal(raw.Name)
			if err != nil {
				return err
			}
			ev.Entity.Name = name
		}
	default:
		return fmt.Errorf("unknown hover action %q", raw.Action)
	}
	*e = ev
	return nil
}

// MarshalJSON encodes the UUID in whichever shape it was stored.
func (r UUIDRepr) MarshalJSON() ([]byte, error) {
	if r.isInts {
		return json.Marshal(r.ints)
	}
	return json.Marshal(r.str)
}

// UnmarshalJSON decodes a UUID from its string or four-int form.
func (r *UUIDRepr) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var words [4]int32
		if err := json.Unmarshal(trimmed, &words); err != nil {
			return err
		}
		*r = UUIDInts(words)
		return nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return err
	}
	*r = UUIDString(s)
	return nil
}

// MarshalJSON encodes the shadow color in whichever shape it was stored.
func (s ShadowColor) MarshalJSON() ([]byte, error) {
	if s.isFloats {
		return json.Marshal(s.floats)
	}
	return json.Marshal(s.packed)
}

// UnmarshalJSON decodes a shadow color from its packed-int or float-array
// form.
func (s *ShadowColor) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var rgba [4]float32
		if err := json.Unmarshal(trimmed, &rgba); err != nil {
			return err
		}
		*s = ShadowFloats(rgba)
		return nil
	}
	var packed int32
	if err := json.Unmarshal(trimmed, &packed); err != nil {
		return err
	}
	*s = ShadowInt(packed)
	return nil
}
