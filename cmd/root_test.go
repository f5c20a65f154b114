package cmd

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestReadInput_JoinsArguments(t *testing.T) {
	c := &cobra.Command{}
	got, err := readInput(c, []string{"<red>hi</red>", "there"})
	require.NoError(t, err)
	require.Equal(t, "<red>hi</red> there", got)
}

func TestReadInput_ReadsStdinWhenNoArgs(t *testing.T) {
	c := &cobra.Command{}
	c.SetIn(strings.NewReader("<bold>piped</bold>\n"))

	got, err := readInput(c, nil)
	require.NoError(t, err)
	require.Equal(t, "<bold>piped</bold>", got, "a single trailing newline is dropped")
}

func TestReadInput_KeepsInteriorNewlines(t *testing.T) {
	c := &cobra.Command{}
	c.SetIn(strings.NewReader("line one\nline two\n"))

	got, err := readInput(c, nil)
	require.NoError(t, err)
	require.Equal(t, "line one\nline two", got)
}

func TestProfileFor(t *testing.T) {
	require.Equal(t, termenv.TrueColor, profileFor("always"))
	require.Equal(t, termenv.Ascii, profileFor("never"))
}
