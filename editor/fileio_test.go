package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	content := "one\ntwo\nthree\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	e := newTestEditor()
	if err := e.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if e.totalRows != 3 {
		t.Fatalf("totalRows = %d, want 3", e.totalRows)
	}
	if e.dirty != 0 {
		t.Errorf("dirty = %d after load, want 0", e.dirty)
	}

	buf, length := e.RowsToString()
	if string(buf) != content {
		t.Errorf("round trip = %q, want %q", buf, content)
	}
	if length != len(content) {
		t.Errorf("length = %d, want %d", length, len(content))
	}
}

func TestOpenStripsCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crlf.txt")
	if err := os.WriteFile(path, []byte("a\r\nb\r\n"), 0644); err != nil {
		t.Fatal(err)
	}

	e := newTestEditor()
	if err := e.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if string(e.row[0].chars) != "a" || string(e.row[1].chars) != "b" {
		t.Errorf("rows = %v, want [a b]", rowsOf(e))
	}

	// Only LF is re-emitted on save
	buf, _ := e.RowsToString()
	if string(buf) != "a\nb\n" {
		t.Errorf("serialized = %q, want %q", buf, "a\nb\n")
	}
}

func TestOpenMissingFile(t *testing.T) {
	e := newTestEditor()
	if err := e.Open(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error opening missing file")
	}
}

func TestRowsToStringOneTerminatorPerRow(t *testing.T) {
	e := newTestEditor("a", "", "c")

	buf, _ := e.RowsToString()
	if string(buf) != "a\n\nc\n" {
		t.Errorf("serialized = %q, want %q", buf, "a\n\nc\n")
	}
}

func TestSaveWritesFileAndClearsDirty(t *testing.T) {
	e := newTestEditor("hello", "world")
	e.dirty = 2
	e.filename = filepath.Join(t.TempDir(), "out.txt")

	if err := e.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(e.filename)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello\nworld\n" {
		t.Errorf("file = %q, want %q", data, "hello\nworld\n")
	}
	if e.dirty != 0 {
		t.Errorf("dirty = %d after save, want 0", e.dirty)
	}
	if !strings.Contains(e.statusMessage, "bytes written") {
		t.Errorf("status = %q, want bytes-written report", e.statusMessage)
	}
}

func TestSaveTruncatesShrunkFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("a much longer original file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	e := newTestEditor("tiny")
	e.filename = path

	if err := e.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "tiny\n" {
		t.Errorf("file = %q, want %q", data, "tiny\n")
	}
}

func TestSavePromptsForMissingFilename(t *testing.T) {
	path := filepath.Join(t.TempDir(), "named.txt")

	e := newTestEditor("content")
	e.dirty = 1
	e.input = &scriptSource{data: []byte(path + "\r")}

	if err := e.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if e.filename != path {
		t.Errorf("filename = %q, want %q", e.filename, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	if string(data) != "content\n" {
		t.Errorf("file = %q, want %q", data, "content\n")
	}
	if e.dirty != 0 {
		t.Errorf("dirty = %d after save, want 0", e.dirty)
	}
}

func TestSaveAbortedByEscape(t *testing.T) {
	e := newTestEditor("content")
	e.dirty = 1
	e.input = &scriptSource{data: []byte("\x1b")}

	if err := e.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if e.filename != "" {
		t.Errorf("filename = %q after abort, want empty", e.filename)
	}
	if e.dirty != 1 {
		t.Errorf("dirty = %d after abort, want 1", e.dirty)
	}
	if e.statusMessage != "Save aborted" {
		t.Errorf("status = %q, want %q", e.statusMessage, "Save aborted")
	}
}

func TestSaveErrorLeavesStateIntact(t *testing.T) {
	e := newTestEditor("content")
	e.dirty = 1
	// A directory path cannot be opened for writing
	e.filename = t.TempDir()

	if err := e.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if e.dirty != 1 {
		t.Errorf("dirty = %d after failed save, want 1", e.dirty)
	}
	if !strings.Contains(e.statusMessage, "Can't save!") {
		t.Errorf("status = %q, want I/O error report", e.statusMessage)
	}
}
