// Package input acquires the bytes to dump, either by memory mapping a
// regular file or by streaming it through a fixed read buffer.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// MmapThreshold is the minimum size of a regular file to be memory mapped.
	// Smaller files are cheaper to read.
	MmapThreshold = 64 * 1024

	// ReadBufferSize is the size of the buffer used by streaming sources
	ReadBufferSize = 256 * 1024
)

// Kind identifies the acquisition strategy of a Source
type Kind int

const (
	KindStream Kind = iota
	KindMapped
)

func (k Kind) String() string {
	switch k {
	case KindStream:
		return "stream"
	case KindMapped:
		return "mmap"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Source produces the input as successive chunks.
type Source interface {
	// Next returns the next chunk. At the end of the input it returns
	// io.EOF. A chunk is only valid until the next call to Next.
	Next() ([]byte, error)

	// Close releases the underlying file or mapping
	Close() error

	// Kind reports which strategy is used
	Kind() Kind

	// Size returns the total input size, or -1 if it is not known up front
	Size() int64
}

// Open opens path and picks the strategy: regular files of at least
// MmapThreshold bytes are memory mapped, everything else is streamed.
// A failing mmap is reported, there is no fallback to streaming.
func Open(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return newStream(f, f, -1), nil
	}
	if !mmapSupported || info.Size() < MmapThreshold {
		return newStream(f, f, info.Size()), nil
	}

	m, err := mapFile(f, info.Size())
	// The mapping stays valid after the descriptor is closed.
	closeErr := f.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to mmap %s: %w", path, err)
	}
	if closeErr != nil {
		_ = m.Close()
		return nil, fmt.Errorf("failed to close %s: %w", path, closeErr)
	}
	return m, nil
}

// Stdin returns a streaming source over the standard input r.
// Closing the source does not close r.
func Stdin(r io.Reader) *Stream {
	return newStream(r, nil, -1)
}

// maxEmptyReads bounds how often a reader may return 0, nil before giving up
const maxEmptyReads = 100

// Stream reads its input through a fixed ReadBufferSize buffer
type Stream struct {
	r      io.Reader
	closer io.Closer
	buf    []byte
	size   int64
	err    error
}

var _ Source = &Stream{}

// NewStream creates a streaming source reading from r. If r is an io.Closer
// it is closed by Close.
func NewStream(r io.Reader) *Stream {
	c, _ := r.(io.Closer)
	return newStream(r, c, -1)
}

func newStream(r io.Reader, c io.Closer, size int64) *Stream {
	return &Stream{
		r:      r,
		closer: c,
		buf:    make([]byte, ReadBufferSize),
		size:   size,
	}
}

// Next reads the next chunk into the internal buffer
func (s *Stream) Next() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := 0; i < maxEmptyReads; i++ {
		n, err := s.r.Read(s.buf)
		if err != nil {
			// Data read together with an error is delivered first, the
			// error is returned by the following call.
			s.err = err
			if n > 0 {
				return s.buf[:n], nil
			}
			return nil, err
		}
		if n > 0 {
			return s.buf[:n], nil
		}
	}
	s.err = io.ErrNoProgress
	return nil, s.err
}

// Close closes the underlying reader if it is owned by the stream
func (s *Stream) Close() error {
	if s.closer == nil {
		return nil
	}
	c := s.closer
	s.closer = nil
	if err := c.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}

// Kind returns KindStream
func (s *Stream) Kind() Kind {
	return KindStream
}

// Size returns the file size for regular files and -1 otherwise
func (s *Stream) Size() int64 {
	return s.size
}
