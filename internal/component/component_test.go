package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Validate(t *testing.T) {
	text := "x"
	key := "menu.quit"

	tests := []struct {
		name    string
		node    Node
		wantErr bool
	}{
		{"empty node", Node{}, false},
		{"single payload", Node{Text: &text}, false},
		{"text and translate", Node{Text: &text, Translate: &key}, true},
		{"text and keybind", Node{Text: &text, Keybind: &key}, true},
		{"translate with fallback is one payload", Node{Translate: &key, Fallback: &text}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNode_VisibleText(t *testing.T) {
	text := "hello"
	key := "menu.quit"
	fallback := "Quit"
	sel := "@a"
	bind := "key.jump"

	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{"text payload", Node{Text: &text}, "hello"},
		{"translate key", Node{Translate: &key}, "menu.quit"},
		{"translate prefers fallback", Node{Translate: &key, Fallback: &fallback}, "Quit"},
		{"selector", Node{Selector: &sel}, "@a"},
		{"keybind", Node{Keybind: &bind}, "key.jump"},
		{"no payload", Node{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.node.VisibleText())
		})
	}
}

func TestFlatten_TextLeaf(t *testing.T) {
	leaves := Flatten(Text("hi"))
	require.Len(t, leaves, 1)
	assert.Equal(t, "hi", leaves[0].Text)
	assert.True(t, leaves[0].Style.IsEmpty())
}

func TestFlatten_DropsEmptyRuns(t *testing.T) {
	leaves := Flatten(List{Text(""), NewText(""), Text("x")})
	require.Len(t, leaves, 1)
	assert.Equal(t, "x", leaves[0].Text)
}

func TestFlatten_InheritsStylesDownward(t *testing.T) {
	child := NewText("child").WithDecoration(Bold, true)
	root := NewText("root").WithColor(Named(Red)).Append(child)

	leaves := Flatten(root)
	require.Len(t, leaves, 2)

	assert.Equal(t, "root", leaves[0].Text)
	require.NotNil(t, leaves[0].Style.Color)
	assert.Nil(t, leaves[0].Style.Bold)

	assert.Equal(t, "child", leaves[1].Text)
	require.NotNil(t, leaves[1].Style.Color, "child inherits the parent color")
	assert.Equal(t, Named(Red), *leaves[1].Style.Color)
	require.NotNil(t, leaves[1].Style.Bold)
}

func TestFlatten_ChildOverridesColor(t *testing.T) {
	child := NewText("b").WithColor(Named(Blue))
	root := NewText("a").WithColor(Named(Red)).Append(child)

	leaves := Flatten(root)
	require.Len(t, leaves, 2)
	assert.Equal(t, Named(Red), *leaves[0].Style.Color)
	assert.Equal(t, Named(Blue), *leaves[1].Style.Color)
}

func TestFlatten_ListKeepsOrder(t *testing.T) {
	leaves := Flatten(List{Text("a"), NewText("b"), List{Text("c")}})
	texts := make([]string, len(leaves))
	for i, l := range leaves {
		texts[i] = l.Text
	}
	assert.Equal(t, []string{"a", "b", "c"}, texts)
}
