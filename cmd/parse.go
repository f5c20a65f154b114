package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/minemsg/internal/log"
	"github.com/zjrosen/minemsg/internal/minimsg"
	"github.com/zjrosen/minemsg/internal/presentation"
)

var parseCompact bool

var parseCmd = &cobra.Command{
	Use:   "parse [markup]",
	Short: "Parse markup into a component tree as JSON",
	Long: `Parse tag markup into a chat-component tree and print it as JSON.

Examples:
  # Parse an argument
  minemsg parse '<red>hello <bold>world</bold></red>'

  # Parse stdin, single-line output
  echo '<hover:show_text:"<gold>tip">label</hover>' | minemsg parse --compact

  # Pick fields with jq
  minemsg parse '<green>ok</green>' | jq '.color'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		opts := minimsg.Options{Strict: cfg.Strict, LegacyColors: cfg.LegacyColors}
		log.Debug(log.CatParse, "Parsing markup", "bytes", len(input), "legacy", opts.LegacyColors)

		comp, err := minimsg.ParseWithOptions(input, opts)
		if err != nil {
			log.ErrorErr(log.CatParse, "Parse failed", err)
			return fmt.Errorf("parsing markup: %w", err)
		}

		formatter := presentation.NewFormatter(cmd.OutOrStdout())
		if parseCompact {
			return formatter.FormatComponentCompact(comp)
		}
		return formatter.FormatComponent(comp)
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseCompact, "compact", false,
		"emit single-line JSON")
	rootCmd.AddCommand(parseCmd)
}
