//go:build linux || darwin || freebsd || netbsd || openbsd

package input

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

const mmapSupported = true

// Mapped exposes a read-only memory mapping of a whole file as a single chunk
type Mapped struct {
	data []byte
	read bool
}

var _ Source = &Mapped{}

func mapFile(f *os.File, size int64) (*Mapped, error) {
	if int64(int(size)) != size {
		return nil, fmt.Errorf("file too large to map: %d bytes", size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}

	// Only a hint for read-ahead, a failure does not matter.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return &Mapped{data: data}, nil
}

// Next returns the whole mapped region on the first call and io.EOF after that
func (m *Mapped) Next() ([]byte, error) {
	if m.read || m.data == nil {
		return nil, io.EOF
	}
	m.read = true
	return m.data, nil
}

// Close unmaps the file. Chunks returned by Next must not be used afterwards.
func (m *Mapped) Close() error {
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("failed to unmap: %w", err)
	}
	return nil
}

// Kind returns KindMapped
func (m *Mapped) Kind() Kind {
	return KindMapped
}

// Size returns the length of the mapping
func (m *Mapped) Size() int64 {
	return int64(len(m.data))
}
