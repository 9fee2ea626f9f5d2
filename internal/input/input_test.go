package input

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

// drain collects all chunks of src into one slice
func drain(t *testing.T, src Source) ([]byte, int) {
	t.Helper()
	var all []byte
	chunks := 0
	for {
		chunk, err := src.Next()
		if errors.Is(err, io.EOF) {
			return all, chunks
		}
		require.NoError(t, err)
		require.NotEmpty(t, chunk)
		all = append(all, chunk...)
		chunks++
	}
}

func writeFile(t *testing.T, size int) (string, []byte) {
	t.Helper()
	content := make([]byte, size)
	for i := range content {
		content[i] = byte(i * 7)
	}
	path := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path, content
}

func TestOpen_SmallFileStreams(t *testing.T) {
	path, content := writeFile(t, MmapThreshold-1)

	src, err := Open(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, src.Close()) }()

	require.Equal(t, KindStream, src.Kind())
	require.Equal(t, int64(len(content)), src.Size())

	got, _ := drain(t, src)
	require.Equal(t, content, got)
}

func TestOpen_EmptyFile(t *testing.T) {
	path, _ := writeFile(t, 0)

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	require.Equal(t, KindStream, src.Kind())
	got, chunks := drain(t, src)
	require.Empty(t, got)
	require.Equal(t, 0, chunks)
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOpen_Directory(t *testing.T) {
	src, err := Open(t.TempDir())
	if err != nil {
		// Some platforms refuse to open directories at all.
		return
	}
	defer src.Close()

	require.Equal(t, KindStream, src.Kind())
	_, err = src.Next()
	require.Error(t, err)
	require.NotErrorIs(t, err, io.EOF)
}

func TestStream_Chunks(t *testing.T) {
	content := bytes.Repeat([]byte("0123456789"), ReadBufferSize/5)
	src := NewStream(bytes.NewReader(content))

	got, chunks := drain(t, src)
	require.Equal(t, content, got)
	require.Equal(t, 2, chunks)
	require.Equal(t, int64(-1), src.Size())
	require.NoError(t, src.Close())
}

func TestStream_DataWithError(t *testing.T) {
	src := NewStream(iotest.DataErrReader(bytes.NewReader([]byte("abc"))))

	chunk, err := src.Next()
	require.NoError(t, err)
	require.Equal(t, "abc", string(chunk))

	_, err = src.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestStream_ReadError(t *testing.T) {
	boom := errors.New("boom")
	src := NewStream(iotest.ErrReader(boom))

	_, err := src.Next()
	require.ErrorIs(t, err, boom)
	_, err = src.Next()
	require.ErrorIs(t, err, boom)
}

type emptyReader struct{}

func (emptyReader) Read([]byte) (int, error) { return 0, nil }

func TestStream_NoProgress(t *testing.T) {
	src := NewStream(emptyReader{})
	_, err := src.Next()
	require.ErrorIs(t, err, io.ErrNoProgress)
}

type trackingCloser struct {
	io.Reader
	closed int
}

func (c *trackingCloser) Close() error {
	c.closed++
	return nil
}

func TestStdin_NotClosed(t *testing.T) {
	rc := &trackingCloser{Reader: bytes.NewReader([]byte("x"))}
	src := Stdin(rc)
	got, _ := drain(t, src)
	require.Equal(t, "x", string(got))
	require.NoError(t, src.Close())
	require.Equal(t, 0, rc.closed)
}

func TestStream_CloseOnce(t *testing.T) {
	rc := &trackingCloser{Reader: bytes.NewReader(nil)}
	src := NewStream(rc)
	require.NoError(t, src.Close())
	require.NoError(t, src.Close())
	require.Equal(t, 1, rc.closed)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "stream", KindStream.String())
	require.Equal(t, "mmap", KindMapped.String())
	require.Equal(t, "Kind(7)", Kind(7).String())
}
