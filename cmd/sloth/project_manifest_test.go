package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, "sloth.toml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write sloth.toml: %v", err)
	}
	return path
}

func TestLoadProjectManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `# test manifest
[package]
name = "demo"

[tokenize]
format = "json"
`)

	manifest, ok, err := loadProjectManifest(root)
	if err != nil {
		t.Fatalf("loadProjectManifest: %v", err)
	}
	if !ok {
		t.Fatal("expected manifest to be found")
	}
	if manifest.Config.Package.Name != "demo" {
		t.Fatalf("package name = %q, want demo", manifest.Config.Package.Name)
	}
	if manifest.Config.Tokenize.Format != "json" {
		t.Fatalf("tokenize format = %q, want json", manifest.Config.Tokenize.Format)
	}
	if manifest.Root != root {
		t.Fatalf("root = %q, want %q", manifest.Root, root)
	}
}

func TestLoadProjectManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	manifest, ok, err := loadProjectManifest(nested)
	if err != nil || !ok {
		t.Fatalf("expected discovery from nested dir, ok=%v err=%v", ok, err)
	}
	if manifest.Root != root {
		t.Fatalf("root = %q, want %q", manifest.Root, root)
	}
}

func TestLoadProjectManifestMissingPackage(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[tokenize]\nformat = \"json\"\n")

	_, ok, err := loadProjectManifest(root)
	if !ok {
		t.Fatal("manifest file exists, ok should be true")
	}
	if err == nil {
		t.Fatal("expected an error for a manifest without [package]")
	}
}

func TestLoadProjectManifestBadFormat(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n[tokenize]\nformat = \"xml\"\n")

	if _, _, err := loadProjectManifest(root); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestResolveFormatPrecedence(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n[tokenize]\nformat = \"json\"\n")
	target := filepath.Join(root, "prog.sloth")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := resolveFormat("pretty", target); got != "pretty" {
		t.Fatalf("explicit flag must win, got %q", got)
	}
	if got := resolveFormat("", target); got != "json" {
		t.Fatalf("manifest default should apply, got %q", got)
	}
	if got := resolveFormat("", filepath.Join(t.TempDir(), "no-manifest.sloth")); got != "pretty" {
		t.Fatalf("fallback should be pretty, got %q", got)
	}
}
