package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewText(t *testing.T) {
	n := NewText("hello")
	assert.Equal(t, ContentText, n.Type)
	require.NotNil(t, n.Text)
	assert.Equal(t, "hello", *n.Text)
	assert.True(t, n.Style.IsEmpty())
}

func TestNewTranslatable(t *testing.T) {
	n := NewTranslatable("chat.type.text", NewText("Steve"), NewText("hi"))
	assert.Equal(t, ContentTranslatable, n.Type)
	require.NotNil(t, n.Translate)
	assert.Equal(t, "chat.type.text", *n.Translate)
	assert.Len(t, n.With, 2)
}

func TestNewScore(t *testing.T) {
	n := NewScore("Steve", "kills")
	assert.Equal(t, ContentScore, n.Type)
	require.NotNil(t, n.Score)
	assert.Equal(t, Score{Name: "Steve", Objective: "kills"}, *n.Score)
}

func TestBuilder_ReceiverNeverMutated(t *testing.T) {
	base := NewText("base")

	styled := base.
		WithColor(Named(Red)).
		WithDecoration(Bold, true).
		WithInsertion("ins").
		Append(NewText("child"))

	assert.True(t, base.Style.IsEmpty(), "builder methods must not mutate the receiver")
	assert.Empty(t, base.Extra)

	require.NotNil(t, styled.Style.Color)
	assert.Equal(t, Named(Red), *styled.Style.Color)
	require.NotNil(t, styled.Style.Bold)
	assert.True(t, *styled.Style.Bold)
	assert.Len(t, styled.Extra, 1)
}

func TestBuilder_SharedIntermediateIsSafe(t *testing.T) {
	// Two chains forked from the same intermediate must not see each
	// other's changes.
	shared := NewText("x").WithColor(Named(Gold))

	a := shared.WithDecoration(Bold, true)
	b := shared.WithDecoration(Italic, true)

	assert.Nil(t, shared.Style.Bold)
	assert.Nil(t, shared.Style.Italic)
	assert.Nil(t, a.Style.Italic)
	assert.Nil(t, b.Style.Bold)
}

func TestBuilder_WithStyleReplacesWholeStyle(t *testing.T) {
	c := Named(Blue)
	b := true
	n := NewText("x").WithColor(Named(Red)).WithStyle(Style{Color: &c, Italic: &b})

	require.NotNil(t, n.Style.Color)
	assert.Equal(t, Named(Blue), *n.Style.Color)
	require.NotNil(t, n.Style.Italic)
	assert.Nil(t, n.Style.Bold)
}

func TestBuilder_MergeStyleIsFallbackOnly(t *testing.T) {
	b := true
	fallback := Style{Color: func() *Color { c := Named(Gray); return &c }(), Italic: &b}

	n := NewText("x").WithColor(Named(Red)).MergeStyle(fallback)

	require.NotNil(t, n.Style.Color)
	assert.Equal(t, Named(Red), *n.Style.Color, "set attributes win over the fallback")
	require.NotNil(t, n.Style.Italic)
	assert.True(t, *n.Style.Italic, "unset attributes are filled from the fallback")
}

func TestBuilder_AppendHelpers(t *testing.T) {
	n := NewText("a").AppendSpace().Append(NewText("b")).AppendNewline()
	require.Len(t, n.Extra, 3)

	space := n.Extra[0].(*Node)
	assert.Equal(t, " ", *space.Text)
	newline := n.Extra[2].(*Node)
	assert.Equal(t, "\n", *newline.Text)
}

func TestBuilder_WithExtraReplacesChildren(t *testing.T) {
	n := NewText("a").Append(NewText("old")).WithExtra(NewText("new"))
	require.Len(t, n.Extra, 1)
	assert.Equal(t, "new", *n.Extra[0].(*Node).Text)
}

func TestBuilder_Events(t *testing.T) {
	hover := ShowText(Text("tip"))
	n := NewText("x").
		WithClick(RunCommand("/home")).
		WithHover(hover).
		WithShadow(ShadowInt(0x40000000))

	require.NotNil(t, n.Style.Click)
	assert.Equal(t, ClickRunCommand, n.Style.Click.Action)
	require.NotNil(t, n.Style.Hover)
	assert.Equal(t, HoverShowText, n.Style.Hover.Action)
	require.NotNil(t, n.Style.Shadow)
}
