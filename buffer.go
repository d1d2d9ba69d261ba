// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package arrayvec

import "io"

// Buffer is a fixed-capacity byte buffer backed by a Vec[byte].
// Writes never grow it: a write that does not fit writes nothing.
// The zero value is a Buffer with capacity 0.
type Buffer struct {
	vec Vec[byte]
}

var (
	_ io.Writer     = (*Buffer)(nil)
	_ io.ByteWriter = (*Buffer)(nil)
)

// NewBuffer returns an empty Buffer holding at most capacity bytes.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{vec: *New[byte](capacity)}
}

// WrapBuffer returns an empty Buffer using buf[:cap(buf)] as storage.
func WrapBuffer(buf []byte) *Buffer {
	return &Buffer{vec: *Wrap(buf)}
}

// Write appends p in full, or returns 0 and an error matching ErrCapacity
// if p exceeds the remaining capacity.
func (buffer *Buffer) Write(p []byte) (n int, err error) {
	if err = buffer.vec.ExtendFromSlice(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (buffer *Buffer) WriteByte(c byte) error {
	return buffer.vec.Push(c)
}

// Bytes returns the written bytes. The slice aliases the buffer until the
// next Reset.
func (buffer *Buffer) Bytes() []byte {
	return buffer.vec.Slice()
}

func (buffer *Buffer) Len() int { return buffer.vec.Len() }

func (buffer *Buffer) Cap() int { return buffer.vec.Cap() }

// Available returns how many more bytes can be written.
func (buffer *Buffer) Available() int { return buffer.vec.Remaining() }

// Reset empties the buffer, keeping its storage.
func (buffer *Buffer) Reset() {
	buffer.vec.Clear()
}
