package stream

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("first"),
		{},
		[]byte("a longer third payload with some binary \x00\xff content"),
	}

	var buf bytes.Buffer
	w := NewFrameWriter(&buf)

	var offsets []int64
	for _, p := range payloads {
		off, err := w.Append(p)
		require.NoError(t, err)
		offsets = append(offsets, off)
	}
	require.NoError(t, w.Flush())

	// Offsets are monotonic and account for headers.
	assert.Equal(t, int64(0), offsets[0])
	assert.Equal(t, int64(headerSize+len(payloads[0])), offsets[1])
	assert.Equal(t, w.Offset(), int64(buf.Len()))

	r := NewFrameReader(bytes.NewReader(buf.Bytes()))
	for i, want := range payloads {
		got, err := r.ReadNext()
		require.NoError(t, err, "frame %d", i)
		assert.Equal(t, want, got, "frame %d", i)
	}

	_, err := r.ReadNext()
	assert.Equal(t, io.EOF, err)
}

func TestFrameReader_CorruptCRC(t *testing.T) {
	var buf bytes.Buffer
	w := NewFrameWriter(&buf)
	_, err := w.Append([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	data := buf.Bytes()
	data[headerSize] ^= 0xFF // flip a payload byte

	r := NewFrameReader(bytes.NewReader(data))
	_, err = r.ReadNext()
	assert.ErrorIs(t, err, ErrCorruptFrame)
}

func TestFrameReader_TruncatedStream(t *testing.T) {
	var buf bytes.Buffer
	w := NewFrameWriter(&buf)
	_, err := w.Append([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	full := buf.Bytes()

	t.Run("short header", func(t *testing.T) {
		r := NewFrameReader(bytes.NewReader(full[:headerSize-2]))
		_, err := r.ReadNext()
		assert.ErrorIs(t, err, ErrCorruptFrame)
	})

	t.Run("short payload", func(t *testing.T) {
		r := NewFrameReader(bytes.NewReader(full[:len(full)-3]))
		_, err := r.ReadNext()
		assert.ErrorIs(t, err, ErrCorruptFrame)
	})

	t.Run("second frame torn", func(t *testing.T) {
		var b bytes.Buffer
		w := NewFrameWriter(&b)
		_, err := w.Append([]byte("intact"))
		require.NoError(t, err)
		_, err = w.Append([]byte("torn"))
		require.NoError(t, err)
		require.NoError(t, w.Flush())

		r := NewFrameReader(bytes.NewReader(b.Bytes()[:b.Len()-2]))
		first, err := r.ReadNext()
		require.NoError(t, err)
		assert.Equal(t, []byte("intact"), first)

		_, err = r.ReadNext()
		assert.ErrorIs(t, err, ErrCorruptFrame)
	})
}

func TestFrameReader_OversizedFrame(t *testing.T) {
	data := make([]byte, headerSize)
	data[crcSize] = 0xFF
	data[crcSize+1] = 0xFF
	data[crcSize+2] = 0xFF
	data[crcSize+3] = 0x7F

	r := NewFrameReaderWithLimit(bytes.NewReader(data), 1024)

	_, err := r.ReadNext()
	assert.ErrorIs(t, err, ErrFrameTooLarge)
}

func TestNewFrameReaderWithLimit(t *testing.T) {
	var buf bytes.Buffer
	w := NewFrameWriter(&buf)
	_, err := w.Append([]byte("a payload over sixteen bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	t.Run("frame beyond limit rejected", func(t *testing.T) {
		r := NewFrameReaderWithLimit(bytes.NewReader(buf.Bytes()), 16)
		_, err := r.ReadNext()
		assert.ErrorIs(t, err, ErrFrameTooLarge)
	})

	t.Run("frame within limit accepted", func(t *testing.T) {
		r := NewFrameReaderWithLimit(bytes.NewReader(buf.Bytes()), 1024)
		got, err := r.ReadNext()
		require.NoError(t, err)
		assert.Equal(t, []byte("a payload over sixteen bytes"), got)
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		r := NewFrameReaderWithLimit(bytes.NewReader(buf.Bytes()), 0)
		assert.Equal(t, DefaultMaxFrame, r.maxFrame)
	})
}

func TestFrameIterator(t *testing.T) {
	var buf bytes.Buffer
	w := NewFrameWriter(&buf)
	for _, p := range []string{"one", "two", "three"} {
		_, err := w.Append([]byte(p))
		require.NoError(t, err)
	}
	require.NoError(t, w.Flush())

	var got []string
	it := NewFrameReader(bytes.NewReader(buf.Bytes())).Iterator()
	for it.Next() {
		got = append(got, string(it.Frame()))
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []string{"one", "two", "three"}, got)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")

	require.NoError(t, WriteFileAtomic(path, []byte("hello"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	// Overwrite goes through the same temp+rename path.
	require.NoError(t, WriteFileAtomic(path, []byte("replaced"), 0o644))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("replaced"), data)

	// No stray temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
