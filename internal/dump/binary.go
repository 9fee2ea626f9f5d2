package dump

import (
	"io"

	"bred/pkg/bytetable"
)

var spacedTerminator = []byte(" |\n")

// BinaryDumper renders every byte as eight bits. BytesPerLine counts bits.
//
// Without color a line may end in the middle of a byte. With color the bits
// of a byte are written as one colored group, so a line only ends on byte
// boundaries and can run up to seven bits past BytesPerLine.
type BinaryDumper struct {
	line
	bitPos int
	// bits on completed lines; offset is derived from it so that lines
	// splitting a byte do not lose the remainder
	bits   uint64
}

var _ Engine = &BinaryDumper{}

// NewBinary creates a binary dumper writing to w
func NewBinary(cfg Config, w io.Writer) (*BinaryDumper, error) {
	perLine := cfg.BytesPerLine
	if cfg.Color {
		groups := (cfg.BytesPerLine + 7) / 8
		perLine = groups * (colorLen + 8)
	}
	l, err := newLine(cfg, w, labelLen+perLine+len(spacedTerminator))
	if err != nil {
		return nil, err
	}
	return &BinaryDumper{line: l}, nil
}

// Process formats chunk
func (d *BinaryDumper) Process(chunk []byte) error {
	d.start()
	if d.cfg.Color {
		return d.processColored(chunk)
	}

	for _, b := range chunk {
		for _, bit := range bytetable.Binary(b) {
			d.buf.Push(bit)
			d.bitPos++

			if d.bitPos >= d.cfg.BytesPerLine {
				if err := d.endLine(); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (d *BinaryDumper) processColored(chunk []byte) error {
	for _, b := range chunk {
		d.extendColored(d.unitColor(b), bytetable.Binary(b))
		d.bitPos += 8

		if d.bitPos >= d.cfg.BytesPerLine {
			if err := d.endLine(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *BinaryDumper) endLine() error {
	before := d.bits / 8
	d.bits += uint64(d.bitPos)
	d.bitPos = 0
	return d.line.endLine(spacedTerminator, d.bits/8-before)
}

// Finish writes the last line
func (d *BinaryDumper) Finish() error {
	return d.finish(d.bitPos > 0, spacedTerminator)
}
