package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "token"
version = "0.1.0"
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Name != "token" || m.Version != "0.1.0" {
		t.Fatalf("unexpected manifest %+v", m)
	}
}

func TestLoadManifestMissingPackage(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `[other]`)
	if _, err := LoadManifest(path); !errors.Is(err, ErrPackageSectionMissing) {
		t.Fatalf("expected ErrPackageSectionMissing, got %v", err)
	}
}

func TestLoadManifestMissingName(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
version = "0.1.0"
`)
	if _, err := LoadManifest(path); !errors.Is(err, ErrPackageNameMissing) {
		t.Fatalf("expected ErrPackageNameMissing, got %v", err)
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("find: ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Fatalf("expected manifest in %s, got %s", root, path)
	}

	projectRoot, ok, err := FindProjectRoot(nested)
	if err != nil || !ok || projectRoot != root {
		t.Fatalf("unexpected project root %q ok=%v err=%v", projectRoot, ok, err)
	}
}

func TestFindManifestAbsent(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := FindManifest(dir)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if ok {
		t.Fatalf("expected no manifest")
	}
}
