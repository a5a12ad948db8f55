package imports

// Filesystem layout convention: a package root contains a src/ directory,
// and a package named P lives at src/P.leo directly under it.
const (
	// SourceDirectoryName is the subdirectory searched for package sources.
	SourceDirectoryName = "src"
	// SourceFileExtension is the fixed suffix of source files.
	SourceFileExtension = ".leo"
)

// NewScope joins an owning scope name with a local symbol name into the
// qualified name an imported symbol is installed under. The join rule is
// fixed; both sides must already be valid scope names.
func NewScope(outer, inner string) string {
	return outer + "_" + inner
}
