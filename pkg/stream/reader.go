package stream

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
)

// FrameReader sequentially reads checksummed frames from an underlying
// reader. A clean end at a frame boundary is io.EOF; anything else is
// ErrCorruptFrame.
type FrameReader struct {
	reader   *bufio.Reader
	offset   int64
	maxFrame int
}

// NewFrameReader creates a frame reader on top of r with the default
// per-frame size bound.
func NewFrameReader(r io.Reader) *FrameReader {
	return NewFrameReaderWithLimit(r, DefaultMaxFrame)
}

// NewFrameReaderWithLimit creates a frame reader with an explicit per-frame
// payload bound. A limit of zero or less falls back to DefaultMaxFrame.
func NewFrameReaderWithLimit(r io.Reader, maxFrame int) *FrameReader {
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrame
	}
	return &FrameReader{
		reader:   bufio.NewReaderSize(r, defaultBufferSize),
		maxFrame: maxFrame,
	}
}

// ReadNext reads the next frame and returns its payload. The returned
// slice is freshly allocated and owned by the caller.
func (r *FrameReader) ReadNext() ([]byte, error) {
	var header [headerSize]byte
	n, err := io.ReadFull(r.reader, header[:])
	if err == io.EOF {
		return nil, io.EOF
	}
	if err == io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("offset %d: short frame header: %w", r.offset, ErrCorruptFrame)
	}
	if err != nil {
		return nil, err
	}
	r.offset += int64(n)

	wantCRC := binary.LittleEndian.Uint32(header[:crcSize])
	payloadLen := int(binary.LittleEndian.Uint32(header[crcSize:]))
	if payloadLen > r.maxFrame {
		return nil, fmt.Errorf("offset %d: frame declares %d bytes, limit %d: %w",
			r.offset-headerSize, payloadLen, r.maxFrame, ErrFrameTooLarge)
	}

	payload := make([]byte, payloadLen)
	n, err = io.ReadFull(r.reader, payload)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("offset %d: frame payload cut short: %w", r.offset, ErrCorruptFrame)
	}
	if err != nil {
		return nil, err
	}
	r.offset += int64(n)

	crc := crc32.ChecksumIEEE(header[crcSize:])
	crc = crc32.Update(crc, crc32.IEEETable, payload)
	if crc != wantCRC {
		return nil, fmt.Errorf("offset %d: frame checksum mismatch: %w",
			r.offset-int64(headerSize+payloadLen), ErrCorruptFrame)
	}

	return payload, nil
}

// Offset returns the current read offset.
func (r *FrameReader) Offset() int64 {
	return r.offset
}

// Iterator returns a streaming iterator over the remaining frames.
func (r *FrameReader) Iterator() *FrameIterator {
	return &FrameIterator{reader: r}
}

// FrameIterator walks frames until end of stream or the first error.
type FrameIterator struct {
	reader  *FrameReader
	payload []byte
	err     error
}

// Next advances to the next frame, returning false at end of stream or on
// error. Check Err afterwards.
func (it *FrameIterator) Next() bool {
	it.payload, it.err = it.reader.ReadNext()
	return it.err == nil
}

// Frame returns the payload read by the last successful Next.
func (it *FrameIterator) Frame() []byte {
	return it.payload
}

// Err returns the terminal error, or nil if the stream ended cleanly.
func (it *FrameIterator) Err() error {
	if it.err == io.EOF {
		return nil
	}
	return it.err
}
