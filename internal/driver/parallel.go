package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"leoc/internal/ast"
	"leoc/internal/diag"
	"leoc/internal/parser"
	"leoc/internal/source"
)

// ParseDirResult holds the parse outcome for one file. Each result owns
// its FileSet so workers never share mutable state.
type ParseDirResult struct {
	Path    string
	Files   *source.FileSet
	FileID  source.FileID
	Program *ast.Program
	Bag     *diag.Bag
}

// listSourceFiles returns the sorted list of all *.leo files under dir.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".leo") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseDir parses every .leo file under dir concurrently. jobs bounds the
// worker count; 0 picks the CPU count. Results come back in sorted path
// order. Each file's parse is still a single-threaded walk; only distinct
// files run in parallel.
func ParseDir(ctx context.Context, dir string, jobs, maxDiagnostics int) ([]ParseDirResult, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}

	paths, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}

	results := make([]ParseDirResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			files := source.NewFileSet()
			bag := diag.NewBag(maxDiagnostics)

			fileID, err := files.Load(path)
			if err != nil {
				return err
			}
			// Parse failures stay in the bag; they are per-file
			// diagnostics, not reasons to stop the other workers.
			program, _ := parser.Parse(files.Get(fileID), diag.BagReporter{Bag: bag})
			results[i] = ParseDirResult{
				Path:    path,
				Files:   files,
				FileID:  fileID,
				Program: program,
				Bag:     bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
