package diagfmt

import (
	"encoding/json"
	"io"

	"leoc/internal/diag"
	"leoc/internal/source"
)

// DiagnosticOutput is the JSON shape of one diagnostic.
type DiagnosticOutput struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	File     string       `json:"file"`
	Line     uint32       `json:"line"`
	Col      uint32       `json:"col"`
	Notes    []NoteOutput `json:"notes,omitempty"`
}

// NoteOutput is the JSON shape of one diagnostic note.
type NoteOutput struct {
	Message string `json:"message"`
	File    string `json:"file"`
	Line    uint32 `json:"line"`
	Col     uint32 `json:"col"`
}

// JSON writes the bag as an indented JSON array.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	out := make([]DiagnosticOutput, 0, bag.Len())
	for _, d := range bag.Items() {
		file := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		entry := DiagnosticOutput{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
			File:     formatPath(file, fs, opts.PathMode),
			Line:     start.Line,
			Col:      start.Col,
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				noteFile := fs.Get(note.Span.File)
				noteStart, _ := fs.Resolve(note.Span)
				entry.Notes = append(entry.Notes, NoteOutput{
					Message: note.Msg,
					File:    formatPath(noteFile, fs, opts.PathMode),
					Line:    noteStart.Line,
					Col:     noteStart.Col,
				})
			}
		}
		out = append(out, entry)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
