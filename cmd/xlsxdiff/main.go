// Package main provides the CLI entry point for xlsxdiff.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hsawada/xlsxdiff/pkg/xlsxdiff"
	"github.com/hsawada/xlsxdiff/pkg/xlsxdiff/report"
)

var (
	outputPath string
	keyColumn  string
	ignoreCols []string
	refCols    []string
	configPath string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlsxdiff [old.xlsx] [new.xlsx]",
		Short: "Compare two versions of an xlsx workbook",
		Long: `xlsxdiff compares two versions of an xlsx workbook sheet by sheet and
writes a report workbook with changed, added, and deleted rows per sheet.
Rows are aligned by a key column, or by position when no key is given.`,
		Args: cobra.ExactArgs(2),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report file path (default: comparison.xlsx next to the new file)")
	rootCmd.Flags().StringVarP(&keyColumn, "key", "k", "", "Column to align rows on (default: row position)")
	rootCmd.Flags().StringSliceVar(&ignoreCols, "ignore", nil, "Column names excluded from comparison")
	rootCmd.Flags().StringSliceVar(&refCols, "ref", nil, "Old-table columns carried into the changed block as context")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file (key_column, ignored_columns, reference_columns, output)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	if configPath != "" {
		if err := loadConfig(cmd); err != nil {
			return err
		}
	}

	oldPath, newPath := args[0], args[1]
	for _, path := range []string{oldPath, newPath} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
	}

	opts := xlsxdiff.Options{
		KeyColumn:        keyColumn,
		IgnoredColumns:   ignoreCols,
		ReferenceColumns: refCols,
	}

	diffs, err := xlsxdiff.Compare(oldPath, newPath, opts)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	changed := 0
	for _, d := range diffs {
		if !d.Empty() {
			changed++
		}
	}

	if outputPath == "" {
		outputPath = filepath.Join(filepath.Dir(newPath), report.DefaultFileName)
	}
	log.Info("writing diff report ...")
	if err := report.Write(outputPath, diffs); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.Infof("wrote %s (%d of %d sheet(s) with differences)", outputPath, changed, len(diffs))

	return nil
}

// loadConfig fills option values from the config file. Flags set on the
// command line take precedence.
func loadConfig(cmd *cobra.Command) error {
	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if !cmd.Flags().Changed("key") && v.IsSet("key_column") {
		keyColumn = v.GetString("key_column")
	}
	if !cmd.Flags().Changed("ignore") && v.IsSet("ignored_columns") {
		ignoreCols = v.GetStringSlice("ignored_columns")
	}
	if !cmd.Flags().Changed("ref") && v.IsSet("reference_columns") {
		refCols = v.GetStringSlice("reference_columns")
	}
	if !cmd.Flags().Changed("output") && v.IsSet("output") {
		outputPath = v.GetString("output")
	}
	return nil
}
