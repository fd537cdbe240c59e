package wire

import (
	"fmt"
	"io"
)

// Bytes is a raw byte array prefixed by its length as an int32. The
// payload carries no encoding constraints.
type Bytes []byte

func (b *Bytes) Encode(w io.Writer) error {
	length := Int32(len(*b))
	if err := length.Encode(w); err != nil {
		return err
	}
	_, err := w.Write(*b)
	return err
}

func (b *Bytes) Decode(r io.Reader) error {
	var length Int32
	if err := length.Decode(r); err != nil {
		return err
	}
	if length < 0 {
		return fmt.Errorf("%w: negative byte array length %d", ErrMalformed, length)
	}
	buf := make([]byte, length)
	if err := readFull(r, buf, "byte array payload"); err != nil {
		return err
	}
	*b = buf
	return nil
}

func (b *Bytes) Size() int32 { return 4 + int32(len(*b)) }

// NullableBytes is a Bytes whose absence is encoded as length -1 with no
// payload bytes. A decoded length below -1 is a protocol violation.
type NullableBytes struct {
	Data  []byte
	Valid bool
}

func (b *NullableBytes) Encode(w io.Writer) error {
	if !b.Valid {
		null := Int32(-1)
		return null.Encode(w)
	}
	data := Bytes(b.Data)
	return data.Encode(w)
}

func (b *NullableBytes) Decode(r io.Reader) error {
	var length Int32
	if err := length.Decode(r); err != nil {
		return err
	}
	switch {
	case length == -1:
		*b = NullableBytes{}
		return nil
	case length < -1:
		return fmt.Errorf("%w: byte array length %d below null sentinel", ErrMalformed, length)
	}
	buf := make([]byte, length)
	if err := readFull(r, buf, "byte array payload"); err != nil {
		return err
	}
	*b = NullableBytes{Data: buf, Valid: true}
	return nil
}

func (b *NullableBytes) Size() int32 {
	if !b.Valid {
		return 4
	}
	return 4 + int32(len(b.Data))
}
