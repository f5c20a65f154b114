package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/minemsg/internal/component"
	"github.com/zjrosen/minemsg/internal/log"
	"github.com/zjrosen/minemsg/internal/minimsg"
	"github.com/zjrosen/minemsg/internal/presentation"
)

var serializeCmd = &cobra.Command{
	Use:   "serialize [json]",
	Short: "Serialize a JSON component tree back to markup",
	Long: `Serialize a chat-component JSON document back into tag markup.

Only color and the boolean decorations have a markup form; other
attributes are dropped from the output.

Examples:
  minemsg serialize '{"text":"hi","color":"red","bold":true}'
  minemsg parse '<red>hi</red>' | minemsg serialize`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		comp, err := component.Unmarshal([]byte(input))
		if err != nil {
			log.ErrorErr(log.CatSerialize, "Decode failed", err)
			return fmt.Errorf("decoding component: %w", err)
		}

		markup := minimsg.Serialize(comp)
		log.Debug(log.CatSerialize, "Serialized component", "bytes", len(markup))

		formatter := presentation.NewFormatter(cmd.OutOrStdout())
		return formatter.FormatText(markup)
	},
}

func init() {
	rootCmd.AddCommand(serializeCmd)
}
