package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.st", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	// Добавляем тот же файл с новым содержимым
	id2 := fs.Add("test.st", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.GetLatest("test.st")
	if !exists || latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d (exists=%v)", id2, latestID, exists)
	}

	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("Expected first file content to be 'hello world', got %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Expected 2 files, got %d", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.st", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("lines.st", []byte("first\nsecond\nthird")))

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

func TestLoadNormalizesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boot.st")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("nop\r\nret\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)

	if got := file.Text(); got != "nop\nret\n" {
		t.Errorf("content = %q, want %q", got, "nop\nret\n")
	}
	if file.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM")
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF")
	}
	if file.Name() != "boot" {
		t.Errorf("Name() = %q, want boot", file.Name())
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "missing.st")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestStem(t *testing.T) {
	tests := map[string]string{
		"dir/boot.st":   "boot",
		"a.b.asm":       "a.b",
		"noext":         "noext",
		".hidden":       ".hidden",
		"/abs/path/x.s": "x",
	}
	for in, want := range tests {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRelativePath(t *testing.T) {
	tmp := t.TempDir()
	base := filepath.Join(tmp, "base")
	inside := filepath.Join(base, "src", "x.st")
	outside := filepath.Join(tmp, "other", "y.st")

	got, err := RelativePath(inside, base)
	if err != nil {
		t.Fatalf("RelativePath: %v", err)
	}
	if got != "src/x.st" {
		t.Errorf("inside: got %q", got)
	}

	got, err = RelativePath(outside, base)
	if err != nil {
		t.Fatalf("RelativePath: %v", err)
	}
	if got != normalizePath(outside) {
		t.Errorf("outside: expected absolute fallback, got %q", got)
	}
}
