package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"leoc/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new Leo package",
	Long: `Initialize a new Leo package by creating a manifest (leo.toml) and a
hello-world entry point (src/main.leo). If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if filepath.IsAbs(arg) {
			target = arg
		} else {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		}
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "leo-package"
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("package already initialized: %s exists", manifestPath)
	}
	if err := os.WriteFile(manifestPath, []byte(buildDefaultManifest(name)), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	srcDir := filepath.Join(target, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return fmt.Errorf("failed to create src directory: %w", err)
	}

	mainPath := filepath.Join(srcDir, "main.leo")
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainLeo()), 0o600); err != nil {
			return fmt.Errorf("failed to write main.leo: %w", err)
		}
		createdMain = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized Leo package in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", project.ManifestName)
	if createdMain {
		fmt.Fprintf(os.Stdout, "  - src/main.leo\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - src/main.leo (existing)\n")
	}
	return nil
}

// buildDefaultManifest returns a minimal TOML manifest used as the
// package marker.
func buildDefaultManifest(name string) string {
	return fmt.Sprintf(`[package]
name = "%s"
version = "0.1.0"
`, name)
}

func defaultMainLeo() string {
	return `// Leo hello world.
function main(a: u32) -> u32 {
    return a;
}
`
}
