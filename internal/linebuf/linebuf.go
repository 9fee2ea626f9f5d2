// Package linebuf provides the fixed capacity staging buffer the dump
// engines assemble output lines in.
package linebuf

import "io"

// Buffer is a reusable byte arena with a logical length.
//
// Appends do not check the remaining capacity. The owner sizes the buffer
// for the worst case line up front; writing past the end panics.
type Buffer struct {
	data []byte
	pos  int
}

// New allocates a buffer that can hold capacity bytes
func New(capacity int) *Buffer {
	return &Buffer{data: make([]byte, capacity)}
}

// Push appends a single byte
func (b *Buffer) Push(c byte) {
	b.data[b.pos] = c
	b.pos++
}

// Extend appends p
func (b *Buffer) Extend(p []byte) {
	b.pos += copy(b.data[b.pos:b.pos+len(p)], p)
}

// Bytes returns the staged bytes. The slice is only valid until the next
// append or Reset.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.pos]
}

// Len returns the number of staged bytes
func (b *Buffer) Len() int {
	return b.pos
}

// Cap returns the fixed capacity
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Reset marks the buffer empty without clearing memory
func (b *Buffer) Reset() {
	b.pos = 0
}

// WriteTo writes the staged bytes to w and resets the buffer.
// The buffer is reset even if the write fails.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data[:b.pos])
	if err == nil && n < b.pos {
		err = io.ErrShortWrite
	}
	b.pos = 0
	return int64(n), err
}

var _ io.WriterTo = (*Buffer)(nil)
