package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"leoc/internal/diag"
	"leoc/internal/diagfmt"
	"leoc/internal/driver"
	"leoc/internal/parser"
	"leoc/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.leo|directory>",
	Short: "Parse a Leo source file or directory",
	Long:  `Parse reads a Leo source file, or all *.leo files in a directory, and reports syntax diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	color, err := useColor(cmd, os.Stderr)
	if err != nil {
		return err
	}
	prettyOpts := diagfmt.PrettyOpts{Color: color, ShowNotes: true}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if st.IsDir() {
		results, err := driver.ParseDir(cmd.Context(), path, jobs, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		failed := false
		for _, r := range results {
			if r.Bag.Len() > 0 {
				r.Bag.Sort()
				diagfmt.Pretty(os.Stderr, r.Bag, r.Files, prettyOpts)
			}
			if r.Bag.HasErrors() {
				failed = true
			}
		}
		fmt.Fprintf(os.Stdout, "parsed %d files\n", len(results))
		if failed {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return fmt.Errorf("parse found errors")
		}
		return nil
	}

	files := source.NewFileSet()
	bag := diag.NewBag(maxDiagnostics)
	fileID, err := files.Load(path)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	program, parseErr := parser.Parse(files.Get(fileID), diag.BagReporter{Bag: bag})
	if bag.Len() > 0 {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, files, prettyOpts)
	}
	if parseErr != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("parse found errors")
	}
	fmt.Fprintf(os.Stdout, "program %s: %d circuits, %d functions, %d imports\n",
		program.Name, len(program.Circuits), len(program.Functions), len(program.Imports))
	return nil
}
