package cmd

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/zjrosen/minemsg/internal/log"
	"github.com/zjrosen/minemsg/internal/minimsg"
	"github.com/zjrosen/minemsg/internal/presentation"
	"github.com/zjrosen/minemsg/internal/render"
)

var (
	renderWidth int
	renderColor string
)

var renderCmd = &cobra.Command{
	Use:   "render [markup]",
	Short: "Preview markup as ANSI-styled terminal text",
	Long: `Parse tag markup and print an ANSI-styled preview.

Examples:
  minemsg render '<red>error:</red> <bold>disk full</bold>'
  minemsg render --width 60 --color always "$(cat motd.txt)"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		opts := minimsg.Options{Strict: cfg.Strict, LegacyColors: cfg.LegacyColors}
		comp, err := minimsg.ParseWithOptions(input, opts)
		if err != nil {
			log.ErrorErr(log.CatRender, "Parse failed", err)
			return fmt.Errorf("parsing markup: %w", err)
		}

		width := cfg.Render.Width
		if cmd.Flags().Changed("width") {
			width = renderWidth
		}
		color := cfg.Render.Color
		if cmd.Flags().Changed("color") {
			color = renderColor
		}

		out := render.Render(comp, render.Options{
			Width:   width,
			Profile: profileFor(color),
		})
		log.Debug(log.CatRender, "Rendered markup", "width", width, "color", color)

		formatter := presentation.NewFormatter(cmd.OutOrStdout())
		return formatter.FormatText(out)
	},
}

// profileFor maps the color mode to a termenv profile. "auto" asks the
// terminal what it supports.
func profileFor(mode string) termenv.Profile {
	switch mode {
	case "always":
		return termenv.TrueColor
	case "never":
		return termenv.Ascii
	default:
		return termenv.ColorProfile()
	}
}

func init() {
	renderCmd.Flags().IntVar(&renderWidth, "width", 0,
		"wrap output at this column (0 = no wrapping)")
	renderCmd.Flags().StringVar(&renderColor, "color", "auto",
		"color mode: auto, always, or never")
	rootCmd.AddCommand(renderCmd)
}
