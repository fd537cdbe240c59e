package wire

import (
	"fmt"
	"io"
)

// WriteFrame writes v prefixed by its total encoded byte length as an
// int32. Because Size reports exactly the bytes Encode produces, the
// declared length needs no patch-up after the payload is written.
func WriteFrame(w io.Writer, v Field) error {
	length := Int32(v.Size())
	if err := length.Encode(w); err != nil {
		return err
	}
	return v.Encode(w)
}

// ReadFrame reads an int32 length prefix, decodes v from a reader
// bounded to exactly that many bytes, and requires the bound to be
// fully consumed. Leftover bytes indicate a corrupt frame or a schema
// mismatch between sender and receiver and fail with ErrMalformed;
// a payload shorter than declared fails with ErrTruncated.
func ReadFrame(r io.Reader, v Field) error {
	return ReadFrameLimit(r, v, 0)
}

// ReadFrameLimit is ReadFrame with an upper bound on the declared frame
// length. A limit of 0 or less disables the bound. Frames declaring more
// than limit bytes fail with ErrMalformed before any payload is read.
func ReadFrameLimit(r io.Reader, v Field, limit int32) error {
	var length Int32
	if err := length.Decode(r); err != nil {
		return err
	}
	if length < 0 {
		return fmt.Errorf("%w: negative frame length %d", ErrMalformed, length)
	}
	if limit > 0 && int32(length) > limit {
		return fmt.Errorf("%w: frame length %d exceeds limit %d", ErrMalformed, length, limit)
	}
	br := &boundedReader{r: r, remaining: int64(length)}
	if err := v.Decode(br); err != nil {
		return err
	}
	if br.remaining != 0 {
		return fmt.Errorf("%w: frame left %d of %d bytes undecoded", ErrMalformed, br.remaining, length)
	}
	return nil
}

// FrameSize returns the on-wire size of v once framed: the int32 length
// prefix plus the payload itself.
func FrameSize(v Field) int32 {
	return 4 + v.Size()
}

// Sized wraps a payload in a length frame. It is used both for inner
// framing (a message set embedded in a partition entry) and, through
// the envelope layer, for the outermost frame of every transmitted unit.
type Sized[T any, P Ptr[T]] struct {
	Value T
}

func (s *Sized[T, P]) Encode(w io.Writer) error {
	return WriteFrame(w, P(&s.Value))
}

func (s *Sized[T, P]) Decode(r io.Reader) error {
	return ReadFrame(r, P(&s.Value))
}

func (s *Sized[T, P]) Size() int32 {
	return FrameSize(P(&s.Value))
}

// boundedReader restricts reads to a fixed byte quota. Reads at an
// exhausted quota return io.EOF without touching the underlying reader,
// so a decode that needs more bytes than the frame declared surfaces as
// truncation instead of consuming the next frame's bytes.
type boundedReader struct {
	r         io.Reader
	remaining int64
}

func (b *boundedReader) Read(p []byte) (int, error) {
	if b.remaining <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > b.remaining {
		p = p[:b.remaining]
	}
	n, err := b.r.Read(p)
	b.remaining -= int64(n)
	return n, err
}
