package tfmt

import (
	"bufio"
	"errors"
	"fmt"
)

// ErrClosed is returned when writing to a file that is not open.
var ErrClosed = errors.New("file not open")

type openMode int

const (
	createAlways openMode = iota
	openExisting
	openAppend
)

func (m openMode) String() string {
	switch m {
	case createAlways:
		return "create"
	case openExisting:
		return "open"
	default:
		return "append"
	}
}

// TextFile writes straight to an OS file handle. Every Write and Print is one
// system write. The zero value is closed; open it with one of the open
// methods. Opening an already open TextFile closes the previous handle first.
//
// A TextFile is not safe for concurrent use.
type TextFile struct {
	h    handle
	path string
	buf  Text
}

// CreateAlways creates path, truncating an existing file.
func (f *TextFile) CreateAlways(path string) error { return f.open(path, createAlways) }

// OpenExisting opens path for writing; it fails when path does not exist.
func (f *TextFile) OpenExisting(path string) error { return f.open(path, openExisting) }

// OpenAlwaysToAppend opens path for appending, creating it when missing.
func (f *TextFile) OpenAlwaysToAppend(path string) error { return f.open(path, openAppend) }

func (f *TextFile) open(path string, mode openMode) error {
	if f.h.valid() {
		if err := f.Close(); err != nil {
			return err
		}
	}
	h, err := openHandle(path, mode)
	if err != nil {
		return fmt.Errorf("%s %s: %w", mode, path, err)
	}
	f.h = h
	f.path = path
	return nil
}

// Path returns the name the file was opened with.
func (f *TextFile) Path() string { return f.path }

// IsOpen reports whether the file holds an open handle.
func (f *TextFile) IsOpen() bool { return f.h.valid() }

// Write writes p in full.
func (f *TextFile) Write(p []byte) (int, error) {
	if !f.h.valid() {
		return 0, ErrClosed
	}
	n, err := f.h.write(p)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", f.path, err)
	}
	return n, nil
}

// Print formats args and a newline, then writes the line with one call.
func (f *TextFile) Print(args ...any) error {
	f.buf.Clear()
	f.buf.Format(args...)
	f.buf.AppendByte('\n')
	_, err := f.Write(f.buf.Bytes())
	return err
}

// Close releases the handle. Closing a closed file is a no-op.
func (f *TextFile) Close() error {
	if !f.h.valid() {
		return nil
	}
	err := f.h.close()
	f.h = handle{}
	if err != nil {
		return fmt.Errorf("close %s: %w", f.path, err)
	}
	return nil
}

// BufferedFile is a TextFile behind a write buffer. Data reaches the OS on
// Flush, Close, or when the buffer fills.
//
// A BufferedFile is not safe for concurrent use.
type BufferedFile struct {
	file TextFile
	w    *bufio.Writer
	size int
}

// NewBufferedFile returns a closed BufferedFile whose buffer holds size
// bytes. A size of zero or less uses the bufio default.
func NewBufferedFile(size int) *BufferedFile {
	return &BufferedFile{size: size}
}

func (b *BufferedFile) CreateAlways(path string) error { return b.open(path, createAlways) }

func (b *BufferedFile) OpenExisting(path string) error { return b.open(path, openExisting) }

func (b *BufferedFile) OpenAlwaysToAppend(path string) error { return b.open(path, openAppend) }

func (b *BufferedFile) open(path string, mode openMode) error {
	if b.file.IsOpen() {
		if err := b.Close(); err != nil {
			return err
		}
	}
	if err := b.file.open(path, mode); err != nil {
		return err
	}
	switch {
	case b.w == nil && b.size > 0:
		b.w = bufio.NewWriterSize(&b.file, b.size)
	case b.w == nil:
		b.w = bufio.NewWriter(&b.file)
	default:
		b.w.Reset(&b.file)
	}
	return nil
}

func (b *BufferedFile) Path() string { return b.file.Path() }

func (b *BufferedFile) IsOpen() bool { return b.file.IsOpen() }

// Write buffers p.
func (b *BufferedFile) Write(p []byte) (int, error) {
	if !b.file.IsOpen() {
		return 0, ErrClosed
	}
	return b.w.Write(p)
}

// Print formats args and a newline into the buffer.
func (b *BufferedFile) Print(args ...any) error {
	t := &b.file.buf
	t.Clear()
	t.Format(args...)
	t.AppendByte('\n')
	_, err := b.Write(t.Bytes())
	return err
}

// Flush writes buffered data to the file.
func (b *BufferedFile) Flush() error {
	if !b.file.IsOpen() {
		return ErrClosed
	}
	return b.w.Flush()
}

// Close flushes and releases the handle. Closing a closed file is a no-op.
func (b *BufferedFile) Close() error {
	if !b.file.IsOpen() {
		return nil
	}
	flushErr := b.w.Flush()
	closeErr := b.file.Close()
	return errors.Join(flushErr, closeErr)
}
