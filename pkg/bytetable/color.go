package bytetable

// ANSI escape sequences used by the dumpers
var (
	Reset  = []byte("\x1b[0m")
	Gray   = []byte("\x1b[90m")
	Red    = []byte("\x1b[91m")
	Green  = []byte("\x1b[32m")
	Orange = []byte("\x1b[38;5;130m")
)

// MaxColorLen is the length of the longest color sequence (Orange).
// Together with len(Reset) it bounds the overhead of coloring one unit.
const MaxColorLen = len("\x1b[38;5;130m")

// ResetLen is len(Reset)
const ResetLen = len("\x1b[0m")

// ClassColor returns the color for a byte class. Printable bytes are not
// colored and get nil.
func ClassColor(c Class) []byte {
	switch c {
	case ClassNull:
		return Gray
	case ClassControl:
		return Red
	case ClassExtended:
		return Orange
	}
	return nil
}
