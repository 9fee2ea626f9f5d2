//go:build linux || darwin || freebsd || netbsd || openbsd

package input

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_LargeFileMaps(t *testing.T) {
	path, content := writeFile(t, 100*1024)

	src, err := Open(path)
	require.NoError(t, err)

	require.Equal(t, KindMapped, src.Kind())
	require.Equal(t, int64(len(content)), src.Size())

	chunk, err := src.Next()
	require.NoError(t, err)
	require.Equal(t, content, chunk)

	_, err = src.Next()
	require.ErrorIs(t, err, io.EOF)

	require.NoError(t, src.Close())
	require.NoError(t, src.Close())
}

func TestOpen_ThresholdIsInclusive(t *testing.T) {
	path, _ := writeFile(t, MmapThreshold)

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	require.Equal(t, KindMapped, src.Kind())
}
