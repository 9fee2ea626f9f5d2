//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package input

import (
	"errors"
	"os"
)

// Memory mapping is not wired up on this platform, Open always streams.
const mmapSupported = false

func mapFile(*os.File, int64) (Source, error) {
	return nil, errors.ErrUnsupported
}
