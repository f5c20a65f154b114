// Package component defines the immutable chat-component tree: string
// leaves, ordered sibling lists, and styled nodes with children, plus the
// style attributes and interaction events a node can carry.
//
// Trees are constructed once, by the minimsg parser, the JSON codec, or the
// builder API, and are read-only afterward.
package component

import "fmt"

// Component is a node of the chat-component tree. It is one of Text, List,
// or *Node.
type Component interface {
	component()
}

// Text is a plain string leaf.
type Text string

func (Text) component() {}

// List is an ordered run of sibling components. It only appears as a
// top-level parse result; node children live in Node.Extra.
type List []Component

func (List) component() {}

// ContentType is the optional content discriminator on a node.
type ContentType string

const (
	ContentText         ContentType = "text"
	ContentTranslatable ContentType = "translatable"
	ContentScore        ContentType = "score"
	ContentSelector     ContentType = "selector"
	ContentKeybind      ContentType = "keybind"
	ContentNBT          ContentType = "nbt"
)

// Score references a scoreboard entry.
type Score struct {
	Name      string `json:"name"`
	Objective string `json:"objective"`
}

// NBTSource says where an NBT query reads from.
type NBTSource string

const (
	NBTBlock   NBTSource = "block"
	NBTEntity  NBTSource = "entity"
	NBTStorage NBTSource = "storage"
)

// Node is a styled component with a mutually-exclusive content payload and
// ordered children. Unset fields are absent, not empty.
type Node struct {
	Type ContentType

	// Content payloads; at most one group is set.
	Text      *string
	Translate *string
	Fallback  *string
	With      []Component
	Score     *Score
	Selector  *string
	Separator Component
	Keybind   *string
	NBT       *string
	Source    NBTSource
	Interpret *bool
	Block     *string
	Entity    *string
	Storage   *string

	Style Style

	Extra []Component
}

func (*Node) component() {}

// Validate checks the at-most-one-content-payload invariant.
func (n *Node) Validate() error {
	var set []string
	if n.Text != nil {
		set = append(set, "text")
	}
	if n.Translate != nil {
		set = append(set, "translate")
	}
	if n.Score != nil {
		set = append(set, "score")
	}
	if n.Selector != nil {
		set = append(set, "selector")
	}
	if n.Keybind != nil {
		set = append(set, "keybind")
	}
	if n.NBT != nil {
		set = append(set, "nbt")
	}
	if len(set) > 1 {
		return fmt.Errorf("conflicting content payloads: %v", set)
	}
	return nil
}

// Leaf is one visible text run with its fully-resolved inherited style.
type Leaf struct {
	Text  string
	Style Style
}

// Flatten walks a tree and returns its visible text runs in order, each
// paired with the effective style inherited from its ancestors. Runs with
// no visible text are dropped.
func Flatten(c Component) []Leaf {
	var leaves []Leaf
	flattenInto(&leaves, c, Style{})
	return leaves
}

func flattenInto(leaves *[]Leaf, c Component, ambient Style) {
	switch v := c.(type) {
	case Text:
		if v != "" {
			*leaves = append(*leaves, Leaf{Text: string(v), Style: ambient.Clone()})
		}
	case List:
		for _, child := range v {
			flattenInto(leaves, child, ambient)
		}
	case *Node:
		eff := Inherit(ambient, v.Style)
		if text := v.VisibleText(); text != "" {
			*leaves = append(*leaves, Leaf{Text: text, Style: eff.Clone()})
		}
		for _, child := range v.Extra {
			flattenInto(leaves, child, eff)
		}
	}
}

// VisibleText returns the node's own displayable text: the text payload, or
// a best-effort placeholder for the other payload kinds (translation
// fallback or key, selector pattern, keybind name). Score and NBT payloads
// resolve server-side and contribute nothing here.
func (n *Node) VisibleText() string {
	switch {
	case n.Text != nil:
		return *n.Text
	case n.Translate != nil:
		if n.Fallback != nil {
			return *n.Fallback
		}
		return *n.Translate
	case n.Selector != nil:
		return *n.Selector
	case n.Keybind != nil:
		return *n.Keybind
	default:
		return ""
	}
}
