package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"leoc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "leoc",
	Short: "Leo language compiler frontend",
	Long:  `leoc parses, resolves imports for, and type-checks Leo source files`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag against the stream it
// will write to.
func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f)), nil
}
