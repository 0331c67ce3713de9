// Package bytesink provides the Assembler's byte-sink contract: a seekable
// cursor over a writable medium that supports little-endian sequential
// append plus absolute-offset overwrite, and a couple of ready-made
// implementations (an in-memory buffer and a file-backed sink) in the spirit
// of the teacher's house style of small, single-purpose internal packages.
package bytesink

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Sink is the external collaborator the spec's §6 describes: sequential
// little-endian append for 1/2/4/8-byte values, absolute overwrite of an
// 8-byte value that restores the cursor afterward, and the cursor's current
// absolute position. No buffering semantics are assumed — partial writes
// must surface as errors.
type Sink interface {
	io.Writer
	// WriteQwordAt overwrites 8 little-endian bytes at the given absolute
	// offset, then restores the cursor to wherever writes were landing
	// before the call.
	WriteQwordAt(offset uint64, value uint64) error
	// Offset returns the cursor's current absolute position.
	Offset() uint64
}

// Buffer is an in-memory Sink backed by a growable byte slice. It is the
// default choice for tests and for CLI demos that want the assembled bytes
// back as a []byte rather than a file.
type Buffer struct {
	data  []byte
	start uint64
}

// NewBuffer returns an empty in-memory Sink whose starting offset is 0.
func NewBuffer() *Buffer { return &Buffer{} }

func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *Buffer) WriteQwordAt(offset uint64, value uint64) error {
	if offset+8 > uint64(len(b.data)) {
		return fmt.Errorf("bytesink: offset %d out of range (len=%d)", offset, len(b.data))
	}
	binary.LittleEndian.PutUint64(b.data[offset:offset+8], value)
	return nil
}

func (b *Buffer) Offset() uint64 { return b.start + uint64(len(b.data)) }

// Bytes returns the accumulated byte slice. The slice aliases the Buffer's
// internal storage; callers that intend to keep it past further writes
// should copy it.
func (b *Buffer) Bytes() []byte { return b.data }

// File adapts an io.WriteSeeker (typically an *os.File) into a Sink,
// snapshotting its starting offset once at construction per §4.1.
type File struct {
	w     io.WriteSeeker
	start uint64
	pos   uint64
}

// NewFile wraps w as a Sink. It seeks to the current position to read the
// starting offset, then treats that as the base for Offset().
func NewFile(w io.WriteSeeker) (*File, error) {
	cur, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("bytesink: reading initial offset: %w", err)
	}
	return &File{w: w, start: uint64(cur), pos: uint64(cur)}, nil
}

func (f *File) Write(p []byte) (int, error) {
	n, err := f.w.Write(p)
	f.pos += uint64(n)
	if err != nil {
		return n, fmt.Errorf("bytesink: write: %w", err)
	}
	return n, nil
}

func (f *File) WriteQwordAt(offset uint64, value uint64) error {
	if _, err := f.w.Seek(int64(offset), io.SeekStart); err != nil {
		return fmt.Errorf("bytesink: seek to patch offset: %w", err)
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	if _, err := f.w.Write(buf[:]); err != nil {
		return fmt.Errorf("bytesink: patch write: %w", err)
	}
	if _, err := f.w.Seek(int64(f.pos), io.SeekStart); err != nil {
		return fmt.Errorf("bytesink: restoring cursor: %w", err)
	}
	return nil
}

func (f *File) Offset() uint64 { return f.pos }

// writeByte/word/dword/qword are the shared little-endian append helpers the
// Assembler façade and family encoders use via the Sink interface above;
// they are free functions instead of Sink methods so Sink stays a minimal,
// mockable interface.

// WriteByte appends a single byte.
func WriteByte(s Sink, v byte) error {
	_, err := s.Write([]byte{v})
	return err
}

// WriteWord appends a little-endian uint16.
func WriteWord(s Sink, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	_, err := s.Write(buf[:])
	return err
}

// WriteDword appends a little-endian uint32.
func WriteDword(s Sink, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := s.Write(buf[:])
	return err
}

// WriteQword appends a little-endian uint64.
func WriteQword(s Sink, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := s.Write(buf[:])
	return err
}
