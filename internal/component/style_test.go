package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyle_Clone_FreshPointers(t *testing.T) {
	c := Named(Red)
	b := true
	ins := "hello"
	original := Style{Color: &c, Bold: &b, Insertion: &ins}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Mutating the clone must never write through to the original.
	*clone.Bold = false
	*clone.Insertion = "changed"
	assert.True(t, *original.Bold)
	assert.Equal(t, "hello", *original.Insertion)
}

func TestStyle_Clone_Empty(t *testing.T) {
	clone := Style{}.Clone()
	assert.True(t, clone.IsEmpty())
}

func TestStyle_Decoration(t *testing.T) {
	var s Style
	for _, d := range Decorations {
		assert.Nil(t, s.Decoration(d))
	}

	s.SetDecoration(Strikethrough, true)
	v := s.Decoration(Strikethrough)
	require.NotNil(t, v)
	assert.True(t, *v)
	assert.Nil(t, s.Decoration(Bold))

	s.SetDecoration(Strikethrough, false)
	v = s.Decoration(Strikethrough)
	require.NotNil(t, v)
	assert.False(t, *v, "an explicit false is distinct from unset")
}

func TestStyle_IsEmpty(t *testing.T) {
	assert.True(t, Style{}.IsEmpty())

	var s Style
	s.SetDecoration(Italic, false)
	assert.False(t, s.IsEmpty())
}

func TestInherit(t *testing.T) {
	red := Named(Red)
	blue := Named(Blue)
	b := true
	f := false

	tests := []struct {
		name     string
		parent   Style
		child    Style
		expected Style
	}{
		{
			name:     "empty child inherits everything",
			parent:   Style{Color: &red, Bold: &b},
			child:    Style{},
			expected: Style{Color: &red, Bold: &b},
		},
		{
			name:     "child color wins",
			parent:   Style{Color: &red},
			child:    Style{Color: &blue},
			expected: Style{Color: &blue},
		},
		{
			name:     "child explicit false overrides parent true",
			parent:   Style{Bold: &b},
			child:    Style{Bold: &f},
			expected: Style{Bold: &f},
		},
		{
			name:     "fields merge across both",
			parent:   Style{Color: &red},
			child:    Style{Italic: &b},
			expected: Style{Color: &red, Italic: &b},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Inherit(tt.parent, tt.child)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInherit_SharesNoPointers(t *testing.T) {
	c := Named(Red)
	parent := Style{Color: &c}
	child := Style{}

	got := Inherit(parent, child)
	require.NotNil(t, got.Color)
	assert.NotSame(t, parent.Color, got.Color)
}

func TestDecoration_String(t *testing.T) {
	assert.Equal(t, "bold", Bold.String())
	assert.Equal(t, "obfuscated", Obfuscated.String())
	assert.Equal(t, "unknown", Decoration(99).String())
}
