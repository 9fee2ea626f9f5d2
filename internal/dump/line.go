package dump

import (
	"fmt"
	"io"

	"bred/internal/linebuf"
	"bred/pkg/bytetable"
)

const (
	offsetDigits = 7
	offsetMask   = 1<<(4*offsetDigits) - 1

	// gray + digits + reset + "| "
	labelLen = bytetable.MaxColorLen + offsetDigits + bytetable.ResetLen + 2

	// worst case overhead of coloring one unit
	colorLen = bytetable.MaxColorLen + bytetable.ResetLen
)

var labelSep = []byte("| ")

// line holds the state shared by all dumpers: the output, the staged line
// and the offset of its first byte.
//
// Once started, buf always begins with the label of the current line, so
// a completed line is written with a single Write.
type line struct {
	cfg     Config
	w       io.Writer
	buf     *linebuf.Buffer
	offset  uint64
	started bool
}

func newLine(cfg Config, w io.Writer, capacity int) (line, error) {
	if err := cfg.Validate(); err != nil {
		return line{}, err
	}
	return line{
		cfg: cfg,
		w:   w,
		buf: linebuf.New(capacity),
	}, nil
}

// Offset returns the number of input bytes on completed lines
func (l *line) Offset() uint64 {
	return l.offset
}

func (l *line) start() {
	if !l.started {
		l.started = true
		l.label()
	}
}

func (l *line) label() {
	l.buf.Extend(bytetable.Gray)
	off := l.offset & offsetMask
	for shift := 4 * (offsetDigits - 1); shift >= 0; shift -= 4 {
		l.buf.Push("0123456789abcdef"[(off>>shift)&0x0f])
	}
	l.buf.Extend(bytetable.Reset)
	l.buf.Extend(labelSep)
}

func (l *line) flush() error {
	if _, err := l.buf.WriteTo(l.w); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// endLine terminates the staged line, writes it and stages the label of
// the next line, which starts advance bytes later.
func (l *line) endLine(terminator []byte, advance uint64) error {
	l.buf.Extend(terminator)
	if err := l.flush(); err != nil {
		return err
	}
	l.offset += advance
	l.label()
	return nil
}

// finish writes what is staged and the final newline. A partial line gets
// the terminator without its newline, a line holding only the label is
// written as is.
func (l *line) finish(partial bool, terminator []byte) error {
	if partial {
		l.buf.Extend(terminator[:len(terminator)-1])
	}
	l.buf.Push('\n')
	return l.flush()
}

// unitColor returns the color for b, or nil if b is written plain
func (l *line) unitColor(b byte) []byte {
	if l.cfg.SpaceHighlight && b == ' ' {
		return bytetable.Green
	}
	if l.cfg.Color {
		return bytetable.ClassColor(bytetable.ClassOf(b))
	}
	return nil
}

func (l *line) extendColored(color, p []byte) {
	if color == nil {
		l.buf.Extend(p)
		return
	}
	l.buf.Extend(color)
	l.buf.Extend(p)
	l.buf.Extend(bytetable.Reset)
}
