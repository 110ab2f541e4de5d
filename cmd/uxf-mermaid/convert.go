// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/uxf-mermaid/internal/convert"
	"github.com/pdiddy/uxf-mermaid/internal/mermaid"
	"github.com/pdiddy/uxf-mermaid/pkg/types"
)

// envKeyReplacer maps flag-style keys to env names (input-dir -> UXF_MERMAID_INPUT_DIR).
var envKeyReplacer = strings.NewReplacer("-", "_")

var convertCmd = &cobra.Command{
	Use:   "convert [dirs...]",
	Short: "Convert every .uxf diagram in a directory to Markdown",
	Long: `Convert lists the diagrams in each directory (not recursively), renders
each as Mermaid and writes <name>.md next to <name>.uxf, replacing any
existing file. Without arguments the configured input-dir is used.

The first diagram that fails to parse stops the run unless --keep-going
is set.`,
	RunE: runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.String("input-dir", convert.DefaultInputDir, "directory holding .uxf diagrams")
	f.String("pattern", convert.DefaultPattern, "file name glob for diagrams")
	f.Bool("skip-existing", false, "leave existing .md files untouched")
	f.Bool("frontmatter", false, "prepend YAML front matter naming the source diagram")
	f.Bool("keep-going", false, "continue after a diagram fails to convert")
	f.Bool("require-class-labels", true, "drop unlabeled relations in class diagrams")
	f.Bool("dry-run", false, "print documents to stdout instead of writing files")
	f.String("report", "", "write a YAML summary of the run to this path")

	for _, key := range []string{
		"input-dir", "pattern", "skip-existing", "frontmatter",
		"keep-going", "require-class-labels", "dry-run", "report",
	} {
		_ = viper.BindPFlag(key, f.Lookup(key))
	}

	rootCmd.AddCommand(convertCmd)
}

// conversionConfig assembles settings from flags, environment and config
// file, in that order of precedence.
func conversionConfig() types.ConversionConfig {
	return types.ConversionConfig{
		InputDir:           viper.GetString("input-dir"),
		Pattern:            viper.GetString("pattern"),
		SkipExisting:       viper.GetBool("skip-existing"),
		Frontmatter:        viper.GetBool("frontmatter"),
		KeepGoing:          viper.GetBool("keep-going"),
		RequireClassLabels: viper.GetBool("require-class-labels"),
		DryRun:             viper.GetBool("dry-run"),
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := conversionConfig()
	dirs := args
	if len(dirs) == 0 {
		dirs = []string{cfg.InputDir}
	}

	conv := convert.NewMermaidConverter(mermaid.Options{RequireClassLabels: cfg.RequireClassLabels})
	runner := convert.NewRunner(conv, cfg, logger, cmd.OutOrStdout())

	var total convert.BatchResult
	var runErr error
	for _, dir := range dirs {
		logger.Debug("scanning", "dir", dir, "pattern", cfg.Pattern)
		result, err := runner.ConvertDir(dir)
		total.Converted += result.Converted
		total.Skipped += result.Skipped
		total.Failed += result.Failed
		total.Files = append(total.Files, result.Files...)
		if err != nil {
			runErr = err
			break
		}
	}

	if path := viper.GetString("report"); path != "" {
		if err := convert.WriteReport(path, dirs, total); err != nil {
			return err
		}
		logger.Info("wrote report", "path", path)
	}

	if runErr != nil {
		return runErr
	}
	if total.HasFailures() {
		return fmt.Errorf("%d diagram(s) failed conversion", total.Failed)
	}
	return nil
}
