package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// contextLines is the leading/trailing padding spec 4.4.2 requires around
// an edit or an explicit view range.
const contextLines = 4

// FileHistoryEntry is the per-path undo stack: Latest is what the editor
// believes is on disk, History is older contents, most recent last.
type FileHistoryEntry struct {
	Latest  string
	History []string
}

// Snippet is a contiguous, 1-based range of a file's lines, for client
// display.
type Snippet struct {
	Start uint32
	Lines []string
}

// ViewRange is the optional (start, end) argument to View. End nil means
// "through the last line".
type ViewRange struct {
	Start uint32
	End   *uint32
}

// Editor holds the process-wide path -> history mapping, per spec 9
// ("File-history ownership"): a single owned structure guarded by a mutex,
// injected into the server rather than kept as package-global state.
type Editor struct {
	mu      sync.Mutex
	history map[string]*FileHistoryEntry
}

// New constructs an empty Editor.
func New() *Editor {
	return &Editor{history: make(map[string]*FileHistoryEntry)}
}

func validatePath(path string) error {
	if !filepath.IsAbs(path) {
		return &Error{Kind: InvalidArgument, Message: fmt.Sprintf("path %q must be absolute", path)}
	}
	return nil
}

func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// padded returns the leading/trailing-context-expanded range [start-4, end+4]
// clamped to [1, numLines], per spec 4.4.2.
func padded(start, end, numLines uint32) (uint32, uint32) {
	leadStart := uint32(1)
	if start > contextLines {
		leadStart = start - contextLines
	}
	trailEnd := end + contextLines
	if trailEnd > numLines {
		trailEnd = numLines
	}
	if leadStart > trailEnd {
		leadStart = trailEnd
	}
	return leadStart, trailEnd
}

func sliceLines(lines []string, start, end uint32) []string {
	numLines := uint32(len(lines))
	if start < 1 {
		start = 1
	}
	if end > numLines {
		end = numLines
	}
	if start > end {
		return nil
	}
	return append([]string{}, lines[start-1:end]...)
}

// View implements spec 4.4.2's View operation.
func (e *Editor) View(path string, r *ViewRange) (Snippet, error) {
	if err := validatePath(path); err != nil {
		return Snippet{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Snippet{}, &Error{Kind: Internal, Message: err.Error()}
	}
	lines := splitLines(string(data))
	numLines := uint32(len(lines))

	if r == nil {
		return Snippet{Start: 1, Lines: lines}, nil
	}

	start := r.Start
	if start == 0 {
		start = 1 // saturating_sub(1): start=0 and start=1 behave identically
	}
	end := numLines
	if r.End != nil {
		end = *r.End
	}

	padStart, padEnd := padded(start, end, numLines)
	return Snippet{Start: padStart, Lines: sliceLines(lines, padStart, padEnd)}, nil
}

// Create implements spec 4.4.2's Create operation.
func (e *Editor) Create(path, text string) error {
	if err := validatePath(path); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := os.Stat(path); err == nil {
		return &Error{Kind: AlreadyExists, Message: fmt.Sprintf("%s already exists", path)}
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return &Error{Kind: Internal, Message: err.Error()}
	}

	e.history[path] = &FileHistoryEntry{Latest: text}
	return nil
}

func lineOfOffset(content string, offset int) uint32 {
	return uint32(strings.Count(content[:offset], "\n")) + 1
}

// StringReplace implements spec 4.4.2's StringReplace operation: old must
// occur exactly once.
func (e *Editor) StringReplace(path, old, newStr string) (Snippet, error) {
	if err := validatePath(path); err != nil {
		return Snippet{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return Snippet{}, &Error{Kind: Internal, Message: err.Error()}
	}
	content := string(data)

	count := strings.Count(content, old)
	if count == 0 {
		return Snippet{}, &Error{Kind: NotFound, Message: fmt.Sprintf("%q not found in %s", old, path)}
	}
	if count > 1 {
		return Snippet{}, &Error{Kind: InvalidArgument, Message: fmt.Sprintf("%q occurs %d times in %s, must be unique", old, count, path)}
	}

	idx := strings.Index(content, old)
	updated := content[:idx] + newStr + content[idx+len(old):]

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return Snippet{}, &Error{Kind: Internal, Message: err.Error()}
	}
	e.pushHistory(path, content, updated)

	startLine := lineOfOffset(updated, idx)
	endLine := lineOfOffset(updated, idx+len(newStr))
	lines := splitLines(updated)
	padStart, padEnd := padded(startLine, endLine, uint32(len(lines)))
	return Snippet{Start: padStart, Lines: sliceLines(lines, padStart, padEnd)}, nil
}

// Insert implements spec 4.4.2's Insert operation. lineNumber=0 inserts
// before the first line.
func (e *Editor) Insert(path string, lineNumber uint32, text string) (Snippet, error) {
	if err := validatePath(path); err != nil {
		return Snippet{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return Snippet{}, &Error{Kind: Internal, Message: err.Error()}
	}
	content := string(data)
	newlineCount := uint32(strings.Count(content, "\n"))
	if lineNumber > newlineCount {
		return Snippet{}, &Error{Kind: InvalidArgument, Message: fmt.Sprintf("line %d exceeds file length", lineNumber)}
	}

	lines := splitLines(content)
	insertAt := int(lineNumber) // insert after this many lines, i.e. before lines[insertAt]
	updatedLines := make([]string, 0, len(lines)+1)
	updatedLines = append(updatedLines, lines[:insertAt]...)
	updatedLines = append(updatedLines, text)
	updatedLines = append(updatedLines, lines[insertAt:]...)
	updated := strings.Join(updatedLines, "\n")

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return Snippet{}, &Error{Kind: Internal, Message: err.Error()}
	}
	e.pushHistory(path, content, updated)

	editedLine := uint32(insertAt + 1)
	padStart, padEnd := padded(editedLine, editedLine, uint32(len(updatedLines)))
	return Snippet{Start: padStart, Lines: sliceLines(updatedLines, padStart, padEnd)}, nil
}

// UndoEdit implements spec 4.4.2's UndoEdit operation.
func (e *Editor) UndoEdit(path string) (Snippet, error) {
	if err := validatePath(path); err != nil {
		return Snippet{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	entry, ok := e.history[path]
	if !ok {
		return Snippet{}, &Error{Kind: NotFound, Message: fmt.Sprintf("no edit history for %s", path)}
	}
	if len(entry.History) == 0 {
		return Snippet{}, &Error{Kind: ResourceExhausted, Message: fmt.Sprintf("no more history for %s", path)}
	}

	restored := entry.History[len(entry.History)-1]
	if err := os.WriteFile(path, []byte(restored), 0o644); err != nil {
		// write failed: the entry is only popped after a successful write, so
		// history is not lost.
		return Snippet{}, &Error{Kind: Internal, Message: err.Error()}
	}
	entry.History = entry.History[:len(entry.History)-1]
	entry.Latest = restored

	lines := splitLines(restored)
	return Snippet{Start: 1, Lines: lines}, nil
}

// pushHistory records content as the prior state for path before replacing
// it with updated, creating the history entry if this is the first write
// the editor has ever made to path.
func (e *Editor) pushHistory(path, content, updated string) {
	entry, ok := e.history[path]
	if !ok {
		entry = &FileHistoryEntry{}
		e.history[path] = entry
	}
	entry.History = append(entry.History, content)
	entry.Latest = updated
}
