// Package bytetable holds the per-byte lookup tables used by the dump engines.
//
// All tables have 256 entries and are indexed by the byte value. They are
// filled once in init and never modified afterwards, so they can be read
// from anywhere without synchronization.
package bytetable

// Class represents the classification of a byte used to select a color
type Class uint8

const (
	ClassNull      Class = iota // 0x00
	ClassControl                // 0x01-0x1f and 0x7f
	ClassPrintable              // 0x20-0x7e
	ClassExtended               // 0x80-0xff
)

func (c Class) String() string {
	switch c {
	case ClassNull:
		return "null"
	case ClassControl:
		return "control"
	case ClassPrintable:
		return "printable"
	case ClassExtended:
		return "extended"
	}
	return "unknown"
}

const digits = "0123456789abcdef"

// MaxEscapeLen is the longest escaped form of a single byte ("\xHH")
const MaxEscapeLen = 4

type escape struct {
	text [MaxEscapeLen]byte
	n    uint8
}

var (
	hexTable    [256][3]byte
	binaryTable [256][8]byte
	classTable  [256]Class
	escapeTable [256]escape
)

func init() {
	for i := 0; i < 256; i++ {
		b := byte(i)

		hexTable[i] = [3]byte{digits[b>>4], digits[b&0x0f], ' '}

		for j := 0; j < 8; j++ {
			binaryTable[i][7-j] = '0' + (b>>j)&1
		}

		classTable[i] = classify(b)
		escapeTable[i] = escapeOf(b)
	}
}

func classify(b byte) Class {
	switch {
	case b == 0x00:
		return ClassNull
	case b < 0x20 || b == 0x7f:
		return ClassControl
	case b < 0x80:
		return ClassPrintable
	default:
		return ClassExtended
	}
}

func escapeOf(b byte) escape {
	switch {
	case b >= 0x20 && b <= 0x7e:
		return escape{text: [4]byte{b}, n: 1}
	case b == '\n':
		return escape{text: [4]byte{'\\', 'n'}, n: 2}
	case b == '\r':
		return escape{text: [4]byte{'\\', 'r'}, n: 2}
	case b == '\t':
		return escape{text: [4]byte{'\\', 't'}, n: 2}
	case b == 0x00:
		return escape{text: [4]byte{'\\', '0'}, n: 2}
	}
	return escape{text: [4]byte{'\\', 'x', digits[b>>4], digits[b&0x0f]}, n: 4}
}

// Hex returns the two lowercase hex digits of b followed by a space.
// The returned slice aliases the table and must not be modified.
func Hex(b byte) []byte {
	return hexTable[b][:]
}

// Binary returns the eight '0'/'1' characters of b, most significant bit first.
// The returned slice aliases the table and must not be modified.
func Binary(b byte) []byte {
	return binaryTable[b][:]
}

// ClassOf returns the class of b
func ClassOf(b byte) Class {
	return classTable[b]
}

// Escape returns the text-mode form of b: the byte itself when printable,
// a two character escape for \n \r \t and NUL, and \xHH otherwise.
// The returned slice aliases the table and must not be modified.
func Escape(b byte) []byte {
	e := &escapeTable[b]
	return e.text[:e.n]
}

// EscapeLen returns len(Escape(b)) without slicing
func EscapeLen(b byte) int {
	return int(escapeTable[b].n)
}
