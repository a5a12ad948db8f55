package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"leoc/internal/diag"
	"leoc/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	noteColor    = color.New(color.FgBlue)
)

// Pretty renders diagnostics in a human-readable form. Callers are
// expected to bag.Sort() first. Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline, then notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyDiagnostic(w, d, fs, opts)
	}
}

func prettyDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	header := fmt.Sprintf("%s %s", d.Severity, d.Code)
	if opts.Color {
		header = severityColor(d.Severity).Sprint(header)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
		formatPath(file, fs, opts.PathMode), start.Line, start.Col, header, d.Message)

	printContext(w, file, fs, d.Primary, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			noteFile := fs.Get(note.Span.File)
			noteStart, _ := fs.Resolve(note.Span)
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s:%d:%d: %s: %s\n",
				formatPath(noteFile, fs, opts.PathMode), noteStart.Line, noteStart.Col, label, note.Msg)
		}
	}
}

// printContext prints the diagnostic's source line and a caret underline
// aligned with the span.
func printContext(w io.Writer, file *source.File, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	start, end := fs.Resolve(span)
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "    %s\n", line)

	prefixEnd := int(start.Col) - 1
	if prefixEnd > len(line) {
		prefixEnd = len(line)
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(line[:prefixEnd]))

	// Underline covers the span on its first line only.
	underlineEnd := len(line)
	if end.Line == start.Line {
		underlineEnd = int(end.Col) - 1
		if underlineEnd > len(line) {
			underlineEnd = len(line)
		}
	}
	width := runewidth.StringWidth(line[prefixEnd:underlineEnd])
	if width < 1 {
		width = 1
	}
	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = errorColor.Sprint(underline)
	}
	fmt.Fprintf(w, "    %s%s\n", pad, underline)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func formatPath(file *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(file.Path); err == nil {
			return abs
		}
		return file.Path
	case PathModeBasename:
		return filepath.Base(file.Path)
	case PathModeRelative, PathModeAuto:
		return file.RelPath(fs.BaseDir())
	default:
		return file.Path
	}
}
