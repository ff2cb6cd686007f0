// Package stream provides the byte-source collaborator consumed by the
// arithmetic core: a stream with single-byte lookahead over an
// in-memory buffer or an io.Reader.
package stream

import (
	"bufio"
	"bytes"
	"io"
)

// Stream is a byte source with single-byte lookahead. Callers peek one
// byte at a time and advance only after accepting it.
type Stream struct {
	r   *bufio.Reader
	pos int
}

// NewFromBuffer constructs a stream over an in-memory byte range.
func NewFromBuffer(buf []byte) *Stream {
	return &Stream{r: bufio.NewReader(bytes.NewReader(buf))}
}

// NewFromReader constructs a stream over r.
func NewFromReader(r io.Reader) *Stream {
	return &Stream{r: bufio.NewReader(r)}
}

// Lookahead returns the next byte without consuming it. At end of input
// it returns eof = true and ch = 0.
func (s *Stream) Lookahead() (ch byte, eof bool, err error) {
	b, err := s.r.Peek(1)
	if err == io.EOF {
		return 0, true, nil
	}
	if err != nil {
		return 0, false, err
	}
	return b[0], false, nil
}

// SkipChar consumes one byte, then peeks the byte after it.
func (s *Stream) SkipChar() (ch byte, eof bool, err error) {
	if _, err := s.r.Discard(1); err != nil {
		if err == io.EOF {
			return 0, true, nil
		}
		return 0, false, err
	}
	s.pos++
	return s.Lookahead()
}

// Pos returns the number of bytes consumed so far.
func (s *Stream) Pos() int {
	return s.pos
}
