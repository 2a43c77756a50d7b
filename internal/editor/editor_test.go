package editor

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCreateThenView(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	e := New()

	if err := e.Create(path, "one\ntwo\nthree\n"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := e.View(path, nil)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	want := Snippet{Start: 1, Lines: []string{"one", "two", "three", ""}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("View = %+v, want %+v", got, want)
	}
}

func TestReplaceThenUndo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	e := New()
	original := "one\ntwo\nthree\n"
	if err := e.Create(path, original); err != nil {
		t.Fatalf("Create: %v", err)
	}

	replaced, err := e.StringReplace(path, "two", "TWO")
	if err != nil {
		t.Fatalf("StringReplace: %v", err)
	}
	if !containsLine(replaced.Lines, "TWO") {
		t.Fatalf("expected replaced snippet to contain TWO, got %+v", replaced)
	}

	undone, err := e.UndoEdit(path)
	if err != nil {
		t.Fatalf("UndoEdit: %v", err)
	}
	if !containsLine(undone.Lines, "two") {
		t.Fatalf("expected undone snippet to contain two, got %+v", undone)
	}

	disk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(disk) != original {
		t.Fatalf("disk contents = %q, want %q", disk, original)
	}
}

func TestReplaceAmbiguity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")
	e := New()
	if err := e.Create(path, "x\nx\n"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := e.StringReplace(path, "x", "y")
	var editorErr *Error
	if err == nil {
		t.Fatal("expected InvalidArgument error, got nil")
	}
	if ok := asEditorError(err, &editorErr); !ok || editorErr.Kind != InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}

	disk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(disk) != "x\nx\n" {
		t.Fatalf("file was modified: %q", disk)
	}
}

func TestInsertPastEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b.txt")
	e := New()
	if err := e.Create(path, "a\nb\nc\n"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := e.Insert(path, 99, "zz")
	var editorErr *Error
	if ok := asEditorError(err, &editorErr); !ok || editorErr.Kind != InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestRelativePathRejected(t *testing.T) {
	e := New()
	_, err := e.View("relative/path.txt", nil)
	var editorErr *Error
	if ok := asEditorError(err, &editorErr); !ok || editorErr.Kind != InvalidArgument {
		t.Fatalf("expected InvalidArgument for relative path, got %v", err)
	}
}

func TestUndoPastOldestExhausted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.txt")
	e := New()
	if err := e.Create(path, "only\n"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Create alone leaves no history to pop.
	_, err := e.UndoEdit(path)
	var editorErr *Error
	if ok := asEditorError(err, &editorErr); !ok || editorErr.Kind != ResourceExhausted {
		t.Fatalf("expected ResourceExhausted, got %v", err)
	}
}

func containsLine(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}

func asEditorError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
