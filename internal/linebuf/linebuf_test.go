package linebuf

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer_PushExtend(t *testing.T) {
	b := New(16)
	require.Equal(t, 16, b.Cap())
	require.Equal(t, 0, b.Len())

	b.Push('a')
	b.Extend([]byte("bcd"))
	b.Extend(nil)
	require.Equal(t, "abcd", string(b.Bytes()))
	require.Equal(t, 4, b.Len())
}

func TestBuffer_Reset(t *testing.T) {
	b := New(4)
	b.Extend([]byte("abcd"))
	b.Reset()
	require.Equal(t, 0, b.Len())
	require.Empty(t, b.Bytes())

	// capacity is reusable after a reset
	b.Extend([]byte("wxyz"))
	require.Equal(t, "wxyz", string(b.Bytes()))
}

func TestBuffer_Overflow(t *testing.T) {
	b := New(2)
	b.Extend([]byte("ab"))
	require.Panics(t, func() { b.Push('c') })
	require.Panics(t, func() { b.Extend([]byte("c")) })
}

func TestBuffer_WriteTo(t *testing.T) {
	var out bytes.Buffer
	b := New(8)
	b.Extend([]byte("line\n"))

	n, err := b.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(5), n)
	require.Equal(t, "line\n", out.String())
	require.Equal(t, 0, b.Len())
}

type failWriter struct{ n int }

func (f failWriter) Write(p []byte) (int, error) {
	if f.n < 0 {
		return 0, errors.New("disk full")
	}
	return f.n, nil
}

func TestBuffer_WriteTo_Errors(t *testing.T) {
	b := New(8)
	b.Extend([]byte("abc"))
	_, err := b.WriteTo(failWriter{n: -1})
	require.EqualError(t, err, "disk full")
	require.Equal(t, 0, b.Len())

	b.Extend([]byte("abc"))
	_, err = b.WriteTo(failWriter{n: 1})
	require.ErrorIs(t, err, io.ErrShortWrite)
}
