package component

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ClickAction identifies what a click event does.
type ClickAction string

const (
	ClickOpenURL         ClickAction = "open_url"
	ClickOpenFile        ClickAction = "open_file"
	ClickRunCommand      ClickAction = "run_command"
	ClickSuggestCommand  ClickAction = "suggest_command"
	ClickChangePage      ClickAction = "change_page"
	ClickCopyToClipboard ClickAction = "copy_to_clipboard"
)

// ClickEvent describes what happens when styled text is clicked.
// Value carries the payload for every action except change_page, which
// uses Page.
type ClickEvent struct {
	Action ClickAction
	Value  string
	Page   int
}

// OpenURL builds an open_url click event.
func OpenURL(url string) ClickEvent {
	return ClickEvent{Action: ClickOpenURL, Value: url}
}

// OpenFile builds an open_file click event.
func OpenFile(path string) ClickEvent {
	return ClickEvent{Action: ClickOpenFile, Value: path}
}

// RunCommand builds a run_command click event.
func RunCommand(command string) ClickEvent {
	return ClickEvent{Action: ClickRunCommand, Value: command}
}

// SuggestCommand builds a suggest_command click event.
func SuggestCommand(command string) ClickEvent {
	return ClickEvent{Action: ClickSuggestCommand, Value: command}
}

// ChangePage builds a change_page click event.
func ChangePage(page int) ClickEvent {
	return ClickEvent{Action: ClickChangePage, Page: page}
}

// CopyToClipboard builds a copy_to_clipboard click event.
func CopyToClipboard(value string) ClickEvent {
	return ClickEvent{Action: ClickCopyToClipboard, Value: value}
}

// HoverAction identifies what a hover event shows.
type HoverAction string

const (
	HoverShowText   HoverAction = "show_text"
	HoverShowItem   HoverAction = "show_item"
	HoverShowEntity HoverAction = "show_entity"
)

// HoverEvent describes what is shown when styled text is hovered.
// Exactly one of Text, Item, Entity is set, matching Action.
type HoverEvent struct {
	Action HoverAction
	Text   Component
	Item   *ItemHover
	Entity *EntityHover
}

// ItemHover is the payload of a show_item hover event. Components carries
// extra item data and is passed through untouched.
type ItemHover struct {
	ID         string
	Count      *int32
	Components json.RawMessage
}

// EntityHover is the payload of a show_entity hover event. Name is optional.
type EntityHover struct {
	Name Component
	ID   string
	UUID UUIDRepr
}

// ShowText builds a show_text hover event wrapping a component sub-tree.
func ShowText(value Component) HoverEvent {
	return HoverEvent{Action: HoverShowText, Text: value}
}

// ShowItem builds a show_item hover event.
func ShowItem(id string, count *int32, components json.RawMessage) HoverEvent {
	return HoverEvent{Action: HoverShowItem, Item: &ItemHover{ID: id, Count: count, Components: components}}
}

// ShowEntity builds a show_entity hover event.
func ShowEntity(name Component, id string, u uuid.UUID) HoverEvent {
	return HoverEvent{Action: HoverShowEntity, Entity: &EntityHover{Name: name, ID: id, UUID: UUIDString(u.String())}}
}

// UUIDRepr holds an entity UUID in either of its wire shapes: the canonical
// hyphenated string or four big-endian int32 words.
type UUIDRepr struct {
	str    string
	ints   [4]int32
	isInts bool
}

// UUIDString wraps the string representation.
func UUIDString(s string) UUIDRepr {
	return UUIDRepr{str: s}
}

// UUIDInts wraps the int-array representation.
func UUIDInts(words [4]int32) UUIDRepr {
	return UUIDRepr{ints: words, isInts: true}
}

// Ints reports the int-array form, if that is what was stored.
func (r UUIDRepr) Ints() ([4]int32, bool) {
	return r.ints, r.isInts
}

// UUID resolves either representation to a uuid.UUID.
func (r UUIDRepr) UUID() (uuid.UUID, error) {
	if !r.isInts {
		u, err := uuid.Parse(r.str)
		if err != nil {
			return uuid.Nil, fmt.Errorf("parsing entity uuid: %w", err)
		}
		return u, nil
	}
	var b [16]byte
	for i, w := range r.ints {
		binary.BigEndian.PutUint32(b[i*4:], uint32(w))
	}
	return uuid.FromBytes(b[:])
}

// String returns the canonical string form when resolvable, the raw stored
// string otherwise.
func (r UUIDRepr) String() string {
	if u, err := r.UUID(); err == nil {
		return u.String()
	}
	return r.str
}

// ShadowColor is a text shadow color in either of its wire shapes: a packed
// ARGB integer or four RGBA floats.
type ShadowColor struct {
	packed   int32
	floats   [4]float32
	isFloats bool
}

// ShadowInt wraps a packed ARGB shadow color.
func ShadowInt(packed int32) ShadowColor {
	return ShadowColor{packed: packed}
}

// ShadowFloats wraps an RGBA float shadow color.
func ShadowFloats(rgba [4]float32) ShadowColor {
	return ShadowColor{floats: rgba, isFloats: true}
}

// Packed reports the packed form, if that is what was stored.
func (s ShadowColor) Packed() (int32, bool) {
	if s.isFloats {
		return 0, false
	}
	return s.packed, true
}

// Floats reports the RGBA float form, if that is what was stored.
func (s ShadowColor) Floats() ([4]float32, bool) {
	return s.floats, s.isFloats
}
