package imports

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"leoc/internal/ast"
	"leoc/internal/diag"
	"leoc/internal/parser"
	"leoc/internal/source"
)

// writeTree lays out files under root, creating parent directories.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

func newTestResolver(t *testing.T, root string) *Resolver {
	t.Helper()
	files := source.NewFileSet()
	loader := NewLoader(files, ParserFunc(parser.Parse), nil)
	resolver := NewResolver(NewStore(), loader)
	resolver.WorkDir = root
	return resolver
}

// importDecl builds the AST for a single import declaration from source.
func importDecl(t *testing.T, src string) *ast.ImportDecl {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("import.leo", []byte(src))
	program, err := parser.Parse(fs.Get(id), diag.NopReporter{})
	if err != nil {
		t.Fatalf("parse import %q: %v", src, err)
	}
	if len(program.Imports) != 1 {
		t.Fatalf("expected 1 import in %q, got %d", src, len(program.Imports))
	}
	return program.Imports[0]
}

func kindOf(t *testing.T, err error) ErrorKind {
	t.Helper()
	var impErr *Error
	if !errors.As(err, &impErr) {
		t.Fatalf("expected *imports.Error, got %T: %v", err, err)
	}
	return impErr.Kind
}

func TestUnknownPackage(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/other.leo": `circuit A { x: u32 }`,
	})
	r := newTestResolver(t, root)

	err := r.EnforceImport("main", importDecl(t, `import foo.*;`))
	if kindOf(t, err) != ErrUnknownPackage {
		t.Fatalf("expected ErrUnknownPackage, got %v", err)
	}
	var impErr *Error
	errors.As(err, &impErr)
	if impErr.Symbol != "foo" {
		t.Fatalf("error must name the package, got %q", impErr.Symbol)
	}
}

func TestUnknownSymbol(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/foo.leo": `circuit A { x: u32 }`,
	})
	r := newTestResolver(t, root)

	err := r.EnforceImport("main", importDecl(t, `import foo.bar;`))
	if kindOf(t, err) != ErrUnknownSymbol {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
	var impErr *Error
	errors.As(err, &impErr)
	if impErr.Symbol != "bar" {
		t.Fatalf("error must name the symbol, got %q", impErr.Symbol)
	}
	if !strings.Contains(impErr.Path, "foo.leo") {
		t.Fatalf("error must carry the searched path, got %q", impErr.Path)
	}
}

func TestSymbolImportInstallsQualifiedName(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/foo.leo": `circuit bar { x: u32 }`,
	})
	r := newTestResolver(t, root)

	if err := r.EnforceImport("main", importDecl(t, `import foo.bar;`)); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	value, ok := r.Store.Get(NewScope("main", "bar"))
	if !ok {
		t.Fatalf("expected %q in store, have %v", NewScope("main", "bar"), r.Store.Names())
	}
	circuit, ok := value.(*CircuitDefinition)
	if !ok || circuit.Circuit.Name != "bar" {
		t.Fatalf("unexpected value %+v", value)
	}
}

func TestSymbolImportAlias(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/foo.leo": `circuit bar { x: u32 }`,
	})
	r := newTestResolver(t, root)

	if err := r.EnforceImport("main", importDecl(t, `import foo.bar as baz;`)); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if _, ok := r.Store.Get(NewScope("main", "baz")); !ok {
		t.Fatalf("aliased import must install under the alias, have %v", r.Store.Names())
	}
	if _, ok := r.Store.Get(NewScope("main", "bar")); ok {
		t.Fatalf("aliased import must not install under the original name")
	}
}

func TestFunctionImportHasNoCallContext(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/foo.leo": `
function helper(a: u32) -> u32 {
    return a;
}
`,
	})
	r := newTestResolver(t, root)

	if err := r.EnforceImport("main", importDecl(t, `import foo.helper;`)); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	value, _ := r.Store.Get(NewScope("main", "helper"))
	fn, ok := value.(*FunctionDefinition)
	if !ok {
		t.Fatalf("expected function definition, got %T", value)
	}
	if fn.Owner != nil {
		t.Fatalf("imported function must carry no pre-bound call-site context")
	}
	if fn.Function.Name != "helper" {
		t.Fatalf("unexpected function %q", fn.Function.Name)
	}
}

func TestStarImportInstallsEverything(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/foo.leo": `
circuit A { x: u32 }

function f(a: u32) -> u32 {
    return a;
}
`,
	})
	r := newTestResolver(t, root)

	if err := r.EnforceImport("main", importDecl(t, `import foo.*;`)); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if _, ok := r.Store.Get(NewScope("main", "A")); !ok {
		t.Fatalf("star import missing circuit A, have %v", r.Store.Names())
	}
	if _, ok := r.Store.Get(NewScope("main", "f")); !ok {
		t.Fatalf("star import missing function f, have %v", r.Store.Names())
	}
}

func TestMultipleImportFailFastKeepsEarlierEffects(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/foo.leo": `circuit bar { x: u32 }`,
	})
	r := newTestResolver(t, root)

	err := r.EnforceImport("main", importDecl(t, `import foo.(bar, missing);`))
	if kindOf(t, err) != ErrUnknownSymbol {
		t.Fatalf("expected ErrUnknownSymbol for second entry, got %v", err)
	}
	// The first entry's install is not rolled back.
	if _, ok := r.Store.Get(NewScope("main", "bar")); !ok {
		t.Fatalf("earlier successful entries must keep their effects")
	}
}

func TestSubPackageImport(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/foo/src/bar.leo": `circuit baz { x: u32 }`,
	})
	r := newTestResolver(t, root)

	if err := r.EnforceImport("main", importDecl(t, `import foo.bar.baz;`)); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, ok := r.Store.Get(NewScope("main", "baz")); !ok {
		t.Fatalf("sub-package symbol not installed, have %v", r.Store.Names())
	}
}

func TestTransitiveImports(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/foo.leo": `
import qux.quux;

circuit bar { x: u32 }
`,
		"src/qux.leo": `circuit quux { y: u64 }`,
	})
	r := newTestResolver(t, root)

	if err := r.EnforceImport("main", importDecl(t, `import foo.bar;`)); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, ok := r.Store.Get(NewScope("main", "bar")); !ok {
		t.Fatalf("direct symbol missing, have %v", r.Store.Names())
	}
	if _, ok := r.Store.Get(NewScope("main", "quux")); !ok {
		t.Fatalf("transitive symbol missing, have %v", r.Store.Names())
	}
}

func TestCyclicImport(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/a.leo": `
import b.second;

circuit first { x: u32 }
`,
		"src/b.leo": `
import a.first;

circuit second { x: u32 }
`,
	})
	r := newTestResolver(t, root)

	err := r.EnforceImport("main", importDecl(t, `import a.first;`))
	if kindOf(t, err) != ErrCyclicImport {
		t.Fatalf("expected ErrCyclicImport, got %v", err)
	}
	var impErr *Error
	errors.As(err, &impErr)
	if !strings.Contains(impErr.Path, "a.leo") {
		t.Fatalf("cycle error must name the re-entered file, got %q", impErr.Path)
	}
}

func TestSelfImportIsACycle(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/a.leo": `
import a.self_ref;

circuit self_ref { x: u32 }
`,
	})
	r := newTestResolver(t, root)

	err := r.EnforceImport("main", importDecl(t, `import a.self_ref;`))
	if kindOf(t, err) != ErrCyclicImport {
		t.Fatalf("expected ErrCyclicImport, got %v", err)
	}
}

func TestMissingSourceDirectory(t *testing.T) {
	root := t.TempDir()
	r := newTestResolver(t, root)

	err := r.EnforceImport("main", importDecl(t, `import foo.*;`))
	if kindOf(t, err) != ErrDirectory {
		t.Fatalf("expected ErrDirectory for missing src/, got %v", err)
	}
}

func TestExpectedFile(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src", "foo.leo"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	r := newTestResolver(t, root)

	err := r.EnforceImport("main", importDecl(t, `import foo.*;`))
	if kindOf(t, err) != ErrExpectedFile {
		t.Fatalf("expected ErrExpectedFile, got %v", err)
	}
}

func TestParseFailureInImportedFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/foo.leo": `circuit { broken`,
	})
	r := newTestResolver(t, root)

	err := r.EnforceImport("main", importDecl(t, `import foo.*;`))
	if kindOf(t, err) != ErrParse {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestStarImportResolvesNestedImports(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/foo.leo": `
import qux.quux;

circuit bar { x: u32 }
`,
		"src/qux.leo": `circuit quux { y: u64 }`,
	})
	r := newTestResolver(t, root)

	if err := r.EnforceImport("main", importDecl(t, `import foo.*;`)); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, ok := r.Store.Get(NewScope("main", "quux")); !ok {
		t.Fatalf("star import must resolve nested imports, have %v", r.Store.Names())
	}
}

type failingMerger struct{ err error }

func (m failingMerger) ResolveDefinitions(*ast.Program) error { return m.err }

func TestStarImportPropagatesMergerFailure(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/foo.leo": `circuit bar { x: u32 }`,
	})
	r := newTestResolver(t, root)
	want := errors.New("merge conflict")
	r.Merger = failingMerger{err: want}

	err := r.EnforceImport("main", importDecl(t, `import foo.*;`))
	if !errors.Is(err, want) {
		t.Fatalf("star import must fail with the merger's error, got %v", err)
	}
}

func TestNewScope(t *testing.T) {
	if got := NewScope("main", "bar"); got != "main_bar" {
		t.Fatalf("unexpected scope join %q", got)
	}
}
