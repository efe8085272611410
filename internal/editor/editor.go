// Package editor replaces a selected range of text with a chosen word.
package editor

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNoSelection is returned by Replace when the selection was already consumed.
var ErrNoSelection = errors.New("no text selected to replace")

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int
	End   int
}

// ParseRange parses "START:END".
func ParseRange(s string) (Range, error) {
	start, end, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Range{}, fmt.Errorf("invalid range %q: expected START:END", s)
	}
	a, err := strconv.Atoi(start)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range start %q: %w", start, err)
	}
	b, err := strconv.Atoi(end)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range end %q: %w", end, err)
	}
	if a < 0 || b < a {
		return Range{}, fmt.Errorf("invalid range %q: start must be non-negative and not after end", s)
	}
	return Range{Start: a, End: b}, nil
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d", r.Start, r.End)
}

// Surface is text with a selection that can be replaced once.
type Surface interface {
	Selection() string
	Replace(text string) error
}

// TextBuffer is an in-memory Surface.
type TextBuffer struct {
	data     []byte
	sel      Range
	selected bool
}

// NewTextBuffer validates sel against data. The range must lie inside data
// and must not split a UTF-8 sequence.
func NewTextBuffer(data []byte, sel Range) (*TextBuffer, error) {
	if sel.Start < 0 || sel.End < sel.Start || sel.End > len(data) {
		return nil, fmt.Errorf("range %s is outside the text (%d bytes)", sel, len(data))
	}
	if !onRuneBoundary(data, sel.Start) || !onRuneBoundary(data, sel.End) {
		return nil, fmt.Errorf("range %s splits a multi-byte character", sel)
	}
	return &TextBuffer{data: data, sel: sel, selected: sel.End > sel.Start}, nil
}

func onRuneBoundary(data []byte, i int) bool {
	return i == len(data) || utf8.RuneStart(data[i])
}

// Selection returns the selected text, or "" once it has been replaced.
func (b *TextBuffer) Selection() string {
	if !b.selected {
		return ""
	}
	return string(b.data[b.sel.Start:b.sel.End])
}

// Replace removes the selected text, inserts text at its start and clears the selection.
func (b *TextBuffer) Replace(text string) error {
	out, err := b.replaced(text)
	if err != nil {
		return err
	}
	b.commit(out)
	return nil
}

// replaced returns the contents with the selection replaced, leaving b unchanged.
func (b *TextBuffer) replaced(text string) ([]byte, error) {
	if !b.selected {
		return nil, ErrNoSelection
	}
	out := make([]byte, 0, len(b.data)-(b.sel.End-b.sel.Start)+len(text))
	out = append(out, b.data[:b.sel.Start]...)
	out = append(out, text...)
	out = append(out, b.data[b.sel.End:]...)
	return out, nil
}

func (b *TextBuffer) commit(out []byte) {
	b.data = out
	b.selected = false
}

// Bytes returns the current contents.
func (b *TextBuffer) Bytes() []byte {
	return b.data
}

// FileSurface is a TextBuffer backed by a file. Replace writes the file.
type FileSurface struct {
	*TextBuffer
	path string
	mode os.FileMode
}

// OpenFile reads path and selects sel within it.
func OpenFile(path string, sel Range) (*FileSurface, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	buf, err := NewTextBuffer(data, sel)
	if err != nil {
		return nil, err
	}
	return &FileSurface{TextBuffer: buf, path: path, mode: info.Mode().Perm()}, nil
}

// Replace replaces the selection and writes the file back with its original
// permissions. The buffer and selection change only once the write succeeds.
func (f *FileSurface) Replace(text string) error {
	out, err := f.replaced(text)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.path, out, f.mode); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	f.commit(out)
	return nil
}

// IsSingleWord reports whether s, once trimmed, is one run of non-space
// characters. Unicode spaces such as U+00A0 count as spaces.
func IsSingleWord(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && strings.IndexFunc(s, unicode.IsSpace) < 0
}
