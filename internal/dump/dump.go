// Package dump implements the hex, binary and text dumpers.
//
// A dumper consumes input in chunks of any size through Process and writes
// every line as soon as it is complete. Finish writes the last, possibly
// partial, line and the trailing newline. Each line starts with the offset
// of its first byte as seven gray hex digits followed by "| ".
package dump

import (
	"errors"
	"fmt"
	"io"
)

// Mode selects the representation of the dumped bytes
type Mode int

const (
	ModeText Mode = iota
	ModeHex
	ModeBinary
)

const (
	DefaultHexLength    = 16
	DefaultBinaryLength = 64
	DefaultTextLength   = 64

	// MaxLength bounds the line length so the line buffer stays small
	MaxLength = 1 << 20
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeHex:
		return "hex"
	case ModeBinary:
		return "binary"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// DefaultLength returns the line length used when none is configured.
// It counts bytes for hex, bits for binary and rendered characters for text.
func (m Mode) DefaultLength() int {
	switch m {
	case ModeHex:
		return DefaultHexLength
	case ModeBinary:
		return DefaultBinaryLength
	}
	return DefaultTextLength
}

// ErrInvalidLength is returned for a line length that is not positive
var ErrInvalidLength = errors.New("invalid length")

// Config is fixed for the lifetime of a dumper
type Config struct {
	// BytesPerLine is the line width: bytes in hex mode, bits in binary
	// mode and rendered characters in text mode.
	BytesPerLine int

	// Color enables ANSI colors by byte class
	Color bool

	// SpaceHighlight renders 0x20 in green even without Color
	SpaceHighlight bool
}

// Validate checks the invariants of c
func (c Config) Validate() error {
	if c.BytesPerLine <= 0 || c.BytesPerLine > MaxLength {
		return fmt.Errorf("%w: %d", ErrInvalidLength, c.BytesPerLine)
	}
	return nil
}

// Engine is implemented by all dumpers
type Engine interface {
	// Process formats chunk. Chunk boundaries need not match line
	// boundaries, an incomplete line is kept until more input arrives.
	Process(chunk []byte) error

	// Finish writes the pending line and the trailing newline. The engine
	// must not be used afterwards.
	Finish() error

	// Offset returns the number of input bytes on completed lines
	Offset() uint64
}

// New creates the dumper for mode writing to w
func New(mode Mode, cfg Config, w io.Writer) (Engine, error) {
	var (
		e   Engine
		err error
	)
	switch mode {
	case ModeHex:
		e, err = NewHex(cfg, w)
	case ModeBinary:
		e, err = NewBinary(cfg, w)
	case ModeText:
		e, err = NewText(cfg, w)
	default:
		return nil, fmt.Errorf("unknown mode: %s", mode)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}
