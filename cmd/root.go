// Package cmd implements the minemsg command line interface.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/minemsg/internal/config"
	"github.com/zjrosen/minemsg/internal/log"
)

var (
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "minemsg",
	Short: "Convert between chat-component trees and tag markup",
	Long: `minemsg converts between the JSON chat-component format and the
tag-based markup format: "<red>hello <bold>world</bold></red>".

Input is taken from arguments or, when absent, from stdin.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	rootCmd.Version = v
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/minemsg/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write debug logs to minemsg-debug.log")
	rootCmd.PersistentFlags().Bool("legacy-colors", false,
		"recognize &x color codes while parsing")

	// Bind flags to viper
	_ = viper.BindPFlag("legacy_colors", rootCmd.PersistentFlags().Lookup("legacy-colors"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("strict", defaults.Strict)
	viper.SetDefault("legacy_colors", defaults.LegacyColors)
	viper.SetDefault("render.width", defaults.Render.Width)
	viper.SetDefault("render.color", defaults.Render.Color)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .minemsg/config.yaml (current directory)
		// 2. ~/.config/minemsg/config.yaml (user config)
		if _, err := os.Stat(".minemsg/config.yaml"); err == nil {
			viper.SetConfigFile(".minemsg/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "minemsg"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the user config with
		// defaults so options are discoverable.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			home, homeErr := os.UserHomeDir()
			if homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "minemsg", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)

	initDebugLog()
}

// initDebugLog enables file logging when requested via --debug or
// MINEMSG_DEBUG. The env value, when non-empty, is used as the log path.
func initDebugLog() {
	path := os.Getenv("MINEMSG_DEBUG")
	if path == "" && !debug {
		return
	}
	if path == "" {
		path = "minemsg-debug.log"
	}
	if _, err := log.Init(path); err != nil {
		fmt.Fprintf(os.Stderr, "minemsg: opening debug log: %v\n", err)
	}
}

// readInput joins arguments, or reads stdin when no arguments were given.
// A single trailing newline from piped input is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
