package driver

import (
	"path/filepath"
	"strings"

	"leoc/internal/ast"
	"leoc/internal/diag"
	"leoc/internal/imports"
	"leoc/internal/parser"
	"leoc/internal/project"
	"leoc/internal/sema"
	"leoc/internal/source"
)

// DefaultMaxDiagnostics bounds the bag when callers pass no limit.
const DefaultMaxDiagnostics = 100

// Options configure a full check of one entry file.
type Options struct {
	// MaxDiagnostics caps the diagnostic bag; 0 means DefaultMaxDiagnostics.
	MaxDiagnostics int
	// WorkDir overrides the import search root. When empty the project
	// root containing the entry file is used, falling back to the file's
	// directory.
	WorkDir string
}

// Result carries everything a full check produced. The two error regimes
// stay separate: Bag accumulates type-checking and syntax diagnostics,
// ImportErr holds the fail-fast import resolution failure, if any.
type Result struct {
	Files     *source.FileSet
	FileID    source.FileID
	Program   *ast.Program
	Store     *imports.Store
	Bag       *diag.Bag
	ParseErr  error
	ImportErr error
}

// CheckFile loads, parses, import-resolves, and type-checks one file.
// The returned error covers only I/O-level failures; everything the
// analysis itself finds lands in the result.
func CheckFile(path string, opts Options) (*Result, error) {
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = DefaultMaxDiagnostics
	}

	files := source.NewFileSet()
	res := &Result{
		Files: files,
		Store: imports.NewStore(),
		Bag:   diag.NewBag(maxDiag),
	}
	reporter := diag.BagReporter{Bag: res.Bag}

	fileID, err := files.Load(path)
	if err != nil {
		return nil, err
	}
	res.FileID = fileID
	files.SetBaseDir(filepath.Dir(path))

	program, parseErr := parser.Parse(files.Get(fileID), reporter)
	res.Program = program
	if parseErr != nil {
		res.ParseErr = parseErr
		return res, nil
	}
	program.Rename(programName(path))

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = searchRoot(path)
	}

	loader := imports.NewLoader(files, imports.ParserFunc(parser.Parse), reporter)
	resolver := imports.NewResolver(res.Store, loader)
	resolver.WorkDir = workDir

	for _, imp := range program.Imports {
		if err := resolver.EnforceImport(program.Name, imp); err != nil {
			res.ImportErr = err
			return res, nil
		}
	}

	sema.Check(program, sema.Options{Reporter: reporter})
	res.Bag.Sort()
	return res, nil
}

// programName derives the program name from the entry file name, the same
// way imported programs are named after their files.
func programName(path string) string {
	return filepath.Base(path)
}

// searchRoot picks the import search root for an entry file: the project
// root containing it when a manifest exists, otherwise the package layout
// root above its src/ directory, otherwise the file's own directory.
func searchRoot(path string) string {
	dir := filepath.Dir(path)
	if root, ok, err := project.FindProjectRoot(dir); err == nil && ok {
		return root
	}
	if strings.EqualFold(filepath.Base(dir), imports.SourceDirectoryName) {
		return filepath.Dir(dir)
	}
	return dir
}
