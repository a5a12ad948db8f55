package imports

import (
	"io/fs"
	"path/filepath"
	"unicode/utf8"

	"leoc/internal/ast"
	"leoc/internal/diag"
	"leoc/internal/source"
)

// Parser is the external parsing collaborator: it turns a loaded source
// file into a program, reporting syntax diagnostics along the way.
type Parser interface {
	Parse(file *source.File, reporter diag.Reporter) (*ast.Program, error)
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(file *source.File, reporter diag.Reporter) (*ast.Program, error)

func (f ParserFunc) Parse(file *source.File, reporter diag.Reporter) (*ast.Program, error) {
	return f(file, reporter)
}

// Loader locates and parses import candidate files into programs.
type Loader struct {
	Files    *source.FileSet
	Parser   Parser
	Reporter diag.Reporter
}

// NewLoader creates a loader over the given file set and parser.
func NewLoader(files *source.FileSet, parser Parser, reporter diag.Reporter) *Loader {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Loader{Files: files, Parser: parser, Reporter: reporter}
}

// ParseImportFile turns one directory entry into a program named after its
// file name. span locates the import driving the load, for diagnostics.
func (l *Loader) ParseImportFile(dir string, entry fs.DirEntry, span source.Span) (*ast.Program, error) {
	// The entry must be a file whose type and name we can work with.
	info, err := entry.Info()
	if err != nil {
		return nil, directoryError(err, span, dir)
	}
	name := entry.Name()
	if !utf8.ValidString(name) {
		return nil, convertOsString(span, dir)
	}
	if info.IsDir() {
		return nil, expectedFile(name, span)
	}

	path := filepath.Join(dir, name)
	fileID, err := l.Files.Load(path)
	if err != nil {
		return nil, directoryError(err, span, path)
	}

	program, err := l.Parser.Parse(l.Files.Get(fileID), l.Reporter)
	if err != nil {
		return nil, parseError(err, span, path)
	}
	return program.Rename(name), nil
}
