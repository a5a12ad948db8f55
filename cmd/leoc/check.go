package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"leoc/internal/diagfmt"
	"leoc/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.leo>",
	Short: "Type-check a Leo source file",
	Long: `Check parses the file, resolves its imports from the package's src/
directory, and runs the type checker. Diagnostics go to stderr; the exit
code is nonzero when any error is found.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "diagnostic format (pretty|json)")
	checkCmd.Flags().String("work-dir", "", "override the import search root")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	workDir, err := cmd.Flags().GetString("work-dir")
	if err != nil {
		return fmt.Errorf("failed to get work-dir flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	res, err := driver.CheckFile(args[0], driver.Options{
		MaxDiagnostics: maxDiagnostics,
		WorkDir:        workDir,
	})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if res.Bag.Len() > 0 {
		switch format {
		case "pretty":
			color, err := useColor(cmd, os.Stderr)
			if err != nil {
				return err
			}
			diagfmt.Pretty(os.Stderr, res.Bag, res.Files, diagfmt.PrettyOpts{
				Color:     color,
				ShowNotes: true,
			})
		case "json":
			if err := diagfmt.JSON(os.Stderr, res.Bag, res.Files, diagfmt.JSONOpts{IncludeNotes: true}); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	// Import resolution is fail-fast; a single failure aborts the check.
	if res.ImportErr != nil {
		return fmt.Errorf("import resolution failed: %w", res.ImportErr)
	}
	if res.ParseErr != nil || res.Bag.HasErrors() {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("check found errors")
	}
	return nil
}
