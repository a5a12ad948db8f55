package imports

import (
	"fmt"

	"leoc/internal/source"
)

// ErrorKind classifies import resolution failures.
type ErrorKind uint8

const (
	// ErrDirectory is a filesystem failure (listing, stat, read).
	ErrDirectory ErrorKind = iota
	// ErrConvertOsString is a file name that is not valid UTF-8.
	ErrConvertOsString
	// ErrExpectedFile is a directory entry where a file was required.
	ErrExpectedFile
	// ErrUnknownSymbol is an import of a name the loaded program does not define.
	ErrUnknownSymbol
	// ErrUnknownPackage is a package with no matching source file.
	ErrUnknownPackage
	// ErrCyclicImport is a file re-entered on the active resolution path.
	ErrCyclicImport
	// ErrParse wraps a parser failure inside an imported file.
	ErrParse
)

func (k ErrorKind) String() string {
	switch k {
	case ErrDirectory:
		return "directory error"
	case ErrConvertOsString:
		return "convert os string"
	case ErrExpectedFile:
		return "expected file"
	case ErrUnknownSymbol:
		return "unknown symbol"
	case ErrUnknownPackage:
		return "unknown package"
	case ErrCyclicImport:
		return "cyclic import"
	case ErrParse:
		return "parse error"
	default:
		return "unknown"
	}
}

// Error is a typed import resolution failure carrying span and path
// context for user-facing reporting. Import resolution is fail-fast: the
// first Error anywhere in a chain aborts the whole import.
type Error struct {
	Kind    ErrorKind
	Span    source.Span
	Path    string // file or directory involved, when known
	Symbol  string // requested symbol, for ErrUnknownSymbol
	Program string // loaded program searched, for ErrUnknownSymbol
	Err     error  // wrapped cause, when one exists
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrDirectory:
		return fmt.Sprintf("import directory error: %v", e.Err)
	case ErrConvertOsString:
		return fmt.Sprintf("cannot convert file name to string at %q", e.Path)
	case ErrExpectedFile:
		return fmt.Sprintf("expected file, found directory %q", e.Path)
	case ErrUnknownSymbol:
		return fmt.Sprintf("cannot find imported symbol %q in program %q (searched %q)",
			e.Symbol, e.Program, e.Path)
	case ErrUnknownPackage:
		return fmt.Sprintf("cannot find imported package %q", e.Symbol)
	case ErrCyclicImport:
		return fmt.Sprintf("cyclic import detected at %q", e.Path)
	case ErrParse:
		return fmt.Sprintf("failed to parse imported file %q: %v", e.Path, e.Err)
	default:
		return "import error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func directoryError(err error, span source.Span, path string) *Error {
	return &Error{Kind: ErrDirectory, Span: span, Path: path, Err: err}
}

func convertOsString(span source.Span, path string) *Error {
	return &Error{Kind: ErrConvertOsString, Span: span, Path: path}
}

func expectedFile(name string, span source.Span) *Error {
	return &Error{Kind: ErrExpectedFile, Span: span, Path: name}
}

func unknownSymbol(symbol, program, path string, span source.Span) *Error {
	return &Error{Kind: ErrUnknownSymbol, Span: span, Symbol: symbol, Program: program, Path: path}
}

func unknownPackage(name string, span source.Span) *Error {
	return &Error{Kind: ErrUnknownPackage, Span: span, Symbol: name}
}

func cyclicImport(path string, span source.Span) *Error {
	return &Error{Kind: ErrCyclicImport, Span: span, Path: path}
}

func parseError(err error, span source.Span, path string) *Error {
	return &Error{Kind: ErrParse, Span: span, Path: path, Err: err}
}
