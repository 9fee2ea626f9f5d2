package dump

import (
	"io"

	"bred/pkg/bytetable"
)

var hexTerminator = []byte("|\n")

// HexDumper renders every byte as two hex digits and a space.
// BytesPerLine counts bytes.
type HexDumper struct {
	line
	linePos int
}

var _ Engine = &HexDumper{}

// NewHex creates a hex dumper writing to w
func NewHex(cfg Config, w io.Writer) (*HexDumper, error) {
	l, err := newLine(cfg, w, labelLen+cfg.BytesPerLine*(colorLen+3)+len(hexTerminator))
	if err != nil {
		return nil, err
	}
	return &HexDumper{line: l}, nil
}

// Process formats chunk
func (d *HexDumper) Process(chunk []byte) error {
	d.start()
	for _, b := range chunk {
		d.extendColored(d.unitColor(b), bytetable.Hex(b))
		d.linePos++

		if d.linePos >= d.cfg.BytesPerLine {
			if err := d.endLine(hexTerminator, uint64(d.linePos)); err != nil {
				return err
			}
			d.linePos = 0
		}
	}
	return nil
}

// Finish writes the last line
func (d *HexDumper) Finish() error {
	return d.finish(d.linePos > 0, hexTerminator)
}
