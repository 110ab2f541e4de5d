// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the uxf-mermaid CLI, which converts
// UMLet .uxf diagrams into Markdown files holding Mermaid diagrams.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured in PersistentPreRun from --verbose.
var logger = newLogger(os.Stderr, log.InfoLevel)

// rootCmd is the base command for the uxf-mermaid CLI.
var rootCmd = &cobra.Command{
	Use:   "uxf-mermaid",
	Short: "Convert UMLet diagrams to Mermaid Markdown",
	Long: `uxf-mermaid reads UMLet .uxf diagrams and writes a Markdown file next to
each one containing a fenced Mermaid block.

Diagrams with at least one class box become class diagrams; all others are
read as sequence diagrams whose lifelines are the generic boxes, ordered
left to right.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.InfoLevel
		if viper.GetBool("verbose") {
			level = log.DebugLevel
		}
		logger.SetLevel(level)
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", "path", used)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./uxf-mermaid.yaml or ~/.config/uxf-mermaid/uxf-mermaid.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("uxf-mermaid")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "uxf-mermaid"))
		}
	}

	viper.SetEnvPrefix("UXF_MERMAID")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "reading config:", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
