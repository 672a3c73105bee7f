// Package buffer implements a fixed-capacity byte buffer used to render
// result lines without growing past a known bound.
package buffer

import (
	"fmt"
)

// Buffer is a simple []byte-based buffer. This type assumes that its
// backing slice has a fixed size and won't attempt to extend
// it. Instead, writes beyond capacity will result in an error.
type Buffer struct {
	buf []byte
	n   int
}

// NewBuffer creates a new Buffer struct with buff as a backing
// []byte. The write offset is initialized at buff[0].
// Hence, writing new data will overwrite the content of buff.
func NewBuffer(buff []byte) *Buffer {
	b := new(Buffer)
	b.buf = buff
	return b
}

// NewBufferSize creates a new Buffer with size capacity.
func NewBufferSize(size int) *Buffer {
	b := new(Buffer)
	b.buf = make([]byte, size)
	return b
}

// Write writes p into b. It returns the number of bytes written
// and an error if attempting to write passed the initial capacity
// of the buffer. A failed write leaves b unchanged.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p)+b.n > len(b.buf) {
		return 0, fmt.Errorf("buffer too small: %d bytes available but %d requested", b.Available(), len(p))
	}
	inc := copy(b.buf[b.n:], p)
	b.n += inc
	return inc, nil
}

// Available returns the number of bytes available for writes on the buffer.
func (b *Buffer) Available() int {
	return len(b.buf) - b.n
}

// Len returns the number of bytes written since the last Reset.
func (b *Buffer) Len() int {
	return b.n
}

// Bytes returns the written part of the backing slice. The returned slice
// is only valid until the next write operation on b.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.n]
}

// String returns the written bytes as a string.
func (b *Buffer) String() string {
	return string(b.buf[:b.n])
}

// Reset re-initializes the write offset of b.
func (b *Buffer) Reset() {
	b.n = 0
}
