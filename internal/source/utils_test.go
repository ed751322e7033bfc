package source

import (
	"bytes"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		changed bool
	}{
		{"no carriage returns", "a\nb", "a\nb", false},
		{"crlf pair", "a\r\nb", "a\nb", true},
		{"multiple pairs", "a\r\nb\r\n", "a\nb\n", true},
		{"lone cr kept", "a\rb", "a\rb", false},
		{"cr at end kept", "ab\r", "ab\r", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("normalizeCRLF(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if changed != tt.changed {
				t.Errorf("normalizeCRLF(%q) changed = %v, want %v", tt.in, changed, tt.changed)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	got, had := removeBOM(withBOM)
	if !had || !bytes.Equal(got, []byte("hi")) {
		t.Errorf("removeBOM failed: got %q, had=%v", got, had)
	}

	plain := []byte("hi")
	got, had = removeBOM(plain)
	if had || !bytes.Equal(got, plain) {
		t.Errorf("removeBOM false positive: got %q, had=%v", got, had)
	}

	short := []byte{0xEF}
	if _, had := removeBOM(short); had {
		t.Error("removeBOM must not fire on short input")
	}
}

func TestToLineCol(t *testing.T) {
	// content: "ab\ncd\ne"
	lineIdx := buildLineIndex([]byte("ab\ncd\ne"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 0}}, // 'a'
		{1, LineCol{Line: 1, Col: 1}}, // 'b'
		{2, LineCol{Line: 1, Col: 2}}, // '\n' terminates line 1
		{3, LineCol{Line: 2, Col: 0}}, // 'c'
		{5, LineCol{Line: 2, Col: 2}}, // second '\n'
		{6, LineCol{Line: 3, Col: 0}}, // 'e'
	}
	for _, tt := range tests {
		if got := toLineCol(lineIdx, tt.off); got != tt.want {
			t.Errorf("toLineCol(off=%d) = %v, want %v", tt.off, got, tt.want)
		}
	}
}

func TestToLineColSingleLine(t *testing.T) {
	lineIdx := buildLineIndex([]byte("abc"))
	if len(lineIdx) != 0 {
		t.Fatalf("expected empty line index, got %v", lineIdx)
	}
	if got := toLineCol(lineIdx, 2); got != (LineCol{Line: 1, Col: 2}) {
		t.Errorf("toLineCol(2) = %v, want 1:2", got)
	}
}
