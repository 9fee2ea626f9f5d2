package dump

import (
	"io"

	"bred/pkg/bytetable"
)

var spaceMark = []byte("_")

// TextDumper renders printable ASCII as is and escapes everything else
// (\n, \r, \t, \0 or \xHH). BytesPerLine counts rendered characters; an
// escape is never split across lines.
type TextDumper struct {
	line
	charPos   int
	// input bytes on the current line, which is what the offset counts
	lineBytes int
}

var _ Engine = &TextDumper{}

// NewText creates a text dumper writing to w
func NewText(cfg Config, w io.Writer) (*TextDumper, error) {
	// A line holds at most max(BytesPerLine, MaxEscapeLen) characters and
	// every byte renders as at least one character.
	chars := max(cfg.BytesPerLine, bytetable.MaxEscapeLen)
	l, err := newLine(cfg, w, labelLen+chars*(colorLen+bytetable.MaxEscapeLen)+len(spacedTerminator))
	if err != nil {
		return nil, err
	}
	return &TextDumper{line: l}, nil
}

// Process formats chunk
func (d *TextDumper) Process(chunk []byte) error {
	d.start()
	for _, b := range chunk {
		width := bytetable.EscapeLen(b)

		// Wrap before an escape that would not fit. An empty line takes
		// it anyway, BytesPerLine may be smaller than the widest escape.
		if d.charPos > 0 && d.charPos+width > d.cfg.BytesPerLine {
			if err := d.endLine(); err != nil {
				return err
			}
		}

		if d.cfg.SpaceHighlight && b == ' ' {
			d.extendColored(bytetable.Green, spaceMark)
		} else {
			d.extendColored(d.unitColor(b), bytetable.Escape(b))
		}
		d.charPos += width
		d.lineBytes++

		if d.charPos >= d.cfg.BytesPerLine {
			if err := d.endLine(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *TextDumper) endLine() error {
	advance := uint64(d.lineBytes)
	d.charPos = 0
	d.lineBytes = 0
	return d.line.endLine(spacedTerminator, advance)
}

// Finish writes the last line
func (d *TextDumper) Finish() error {
	return d.finish(d.charPos > 0, spacedTerminator)
}
