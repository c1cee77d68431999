package stream

import (
	"bufio"
	"encoding/binary"
	"hash/crc32"
	"io"
	"sync"
)

// FrameWriter appends checksummed frames to an underlying writer. Writes
// are buffered; call Flush (or Sync for file sinks) before handing the
// output to a reader.
type FrameWriter struct {
	dst    io.Writer
	writer *bufio.Writer
	mutex  sync.Mutex
	offset int64
}

// NewFrameWriter creates a frame writer on top of w.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{
		dst:    w,
		writer: bufio.NewWriterSize(w, defaultBufferSize),
	}
}

// Append writes one frame containing payload and returns the offset at
// which the frame starts.
func (w *FrameWriter) Append(payload []byte) (int64, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	var header [headerSize]byte
	binary.LittleEndian.PutUint32(header[crcSize:], uint32(len(payload)))

	crc := crc32.ChecksumIEEE(header[crcSize:])
	crc = crc32.Update(crc, crc32.IEEETable, payload)
	binary.LittleEndian.PutUint32(header[:crcSize], crc)

	frameOffset := w.offset

	if _, err := w.writer.Write(header[:]); err != nil {
		return 0, err
	}
	if _, err := w.writer.Write(payload); err != nil {
		return 0, err
	}
	w.offset += int64(headerSize + len(payload))

	return frameOffset, nil
}

// Flush pushes buffered frames to the underlying writer.
func (w *FrameWriter) Flush() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.writer.Flush()
}

// Sync flushes and, if the underlying writer supports it (files do),
// forces the data to stable storage.
func (w *FrameWriter) Sync() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if err := w.writer.Flush(); err != nil {
		return err
	}
	if syncer, ok := w.dst.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

// Offset returns the number of bytes appended so far, flushed or not.
func (w *FrameWriter) Offset() int64 {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.offset
}
