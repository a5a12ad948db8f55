package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"leoc/internal/diag"
	"leoc/internal/imports"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return root
}

func TestCheckFileCleanProgram(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/main.leo": `
function main(a: u32) -> u32 {
    return a;
}
`,
	})

	res, err := CheckFile(filepath.Join(root, "src", "main.leo"), Options{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.ParseErr != nil || res.ImportErr != nil {
		t.Fatalf("unexpected failures: parse=%v import=%v", res.ParseErr, res.ImportErr)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("expected no diagnostics, got %v", res.Bag.Items())
	}
	if res.Program.Name != "main.leo" {
		t.Fatalf("program named %q", res.Program.Name)
	}
}

func TestCheckFileReportsTypeDiagnostics(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/main.leo": `
record Token {
    owner: address,
}
`,
	})

	res, err := CheckFile(filepath.Join(root, "src", "main.leo"), Options{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	found := false
	for _, d := range res.Bag.Items() {
		if d.Code == diag.TypeRequiredRecordVar {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected missing balance diagnostic, got %v", res.Bag.Items())
	}
}

func TestCheckFileResolvesImports(t *testing.T) {
	root := writeProject(t, map[string]string{
		"leo.toml": "[package]\nname = \"demo\"\n",
		"src/main.leo": `
import lib.Point;

function main(a: u32) -> u32 {
    return a;
}
`,
		"src/lib.leo": `circuit Point { x: u32 }`,
	})

	res, err := CheckFile(filepath.Join(root, "src", "main.leo"), Options{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.ImportErr != nil {
		t.Fatalf("import: %v", res.ImportErr)
	}
	key := imports.NewScope("main.leo", "Point")
	if _, ok := res.Store.Get(key); !ok {
		t.Fatalf("expected %q in store, have %v", key, res.Store.Names())
	}
}

func TestCheckFileImportFailureIsFailFast(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/main.leo": `
import missing.*;

function main(a: u32) -> u32 {
    return a;
}
`,
	})

	res, err := CheckFile(filepath.Join(root, "src", "main.leo"), Options{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	var impErr *imports.Error
	if !errors.As(res.ImportErr, &impErr) || impErr.Kind != imports.ErrUnknownPackage {
		t.Fatalf("expected unknown package import error, got %v", res.ImportErr)
	}
}

func TestParseDir(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/a.leo": `circuit A { x: u32 }`,
		"src/b.leo": `circuit B { y: u32 }`,
		"src/bad.leo": `circuit {`,
		"src/skip.txt": `not a source file`,
	})

	results, err := ParseDir(context.Background(), root, 2, 16)
	if err != nil {
		t.Fatalf("parse dir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	// Results come back in sorted path order.
	if filepath.Base(results[0].Path) != "a.leo" {
		t.Fatalf("unexpected order: %v", results)
	}
	var badBag *diag.Bag
	for _, res := range results {
		if filepath.Base(res.Path) == "bad.leo" {
			badBag = res.Bag
		}
	}
	if badBag == nil || !badBag.HasErrors() {
		t.Fatalf("expected syntax diagnostics for bad.leo")
	}
}
