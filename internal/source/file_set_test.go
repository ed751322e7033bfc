package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.sloth", []byte("if x"))

	file := fs.Get(id)
	if file.Path != "test.sloth" {
		t.Errorf("expected path test.sloth, got %q", file.Path)
	}
	if string(file.Content) != "if x" {
		t.Errorf("unexpected content %q", file.Content)
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("virtual file must carry FileVirtual")
	}
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("a.sloth", []byte("a"))
	b := fs.AddVirtual("b.sloth", []byte("b"))
	if a == b {
		t.Fatal("distinct files must get distinct IDs")
	}
	if fs.Len() != 2 {
		t.Fatalf("expected 2 files, got %d", fs.Len())
	}
}

func TestGetLatestTracksNewestVersion(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("x.sloth", []byte("old"))
	newer := fs.AddVirtual("x.sloth", []byte("new"))

	id, ok := fs.GetLatest("x.sloth")
	if !ok || id != newer {
		t.Fatalf("GetLatest = (%v, %v), want (%v, true)", id, ok, newer)
	}
}

func TestLoadMissingFileWrapsErrSourceUnavailable(t *testing.T) {
	fs := NewFileSet()
	_, err := fs.Load(filepath.Join(t.TempDir(), "nope.sloth"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("the underlying cause must stay inspectable, got %v", err)
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.sloth")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("int x\r\nx = 1\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "int x\nx = 1\n" {
		t.Errorf("unexpected normalized content %q", file.Content)
	}
	if file.Flags&FileHadBOM == 0 || file.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("normalization flags not recorded: %b", file.Flags)
	}
}

func TestResolveSpan(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.sloth", []byte("x\nyz"))

	// span of "yz"
	start, end := fs.Resolve(Span{File: id, Start: 2, End: 4})
	if start != (LineCol{Line: 2, Col: 0}) {
		t.Errorf("start = %v, want 2:0", start)
	}
	if end != (LineCol{Line: 2, Col: 2}) {
		t.Errorf("end = %v, want 2:2", end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sloth", []byte("first\nsecond\nthird")))

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := file.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestContentHashDiffers(t *testing.T) {
	fs := NewFileSet()
	a := fs.Get(fs.AddVirtual("a.sloth", []byte("x = 1")))
	b := fs.Get(fs.AddVirtual("b.sloth", []byte("x = 2")))
	if a.Hash == b.Hash {
		t.Fatal("different contents must hash differently")
	}
}
