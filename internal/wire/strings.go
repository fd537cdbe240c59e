package wire

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// String is a UTF-8 string prefixed by its byte length as an int16.
// Strings longer than 32767 bytes are a caller contract violation; the
// length silently wraps rather than being validated on encode.
type String string

func (s *String) Encode(w io.Writer) error {
	length := Int16(len(*s))
	if err := length.Encode(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, string(*s))
	return err
}

func (s *String) Decode(r io.Reader) error {
	var length Int16
	if err := length.Decode(r); err != nil {
		return err
	}
	if length < 0 {
		return fmt.Errorf("%w: negative string length %d", ErrMalformed, length)
	}
	buf := make([]byte, length)
	if err := readFull(r, buf, "string payload"); err != nil {
		return err
	}
	if !utf8.Valid(buf) {
		return fmt.Errorf("%w: string payload is not valid UTF-8", ErrMalformed)
	}
	*s = String(buf)
	return nil
}

func (s *String) Size() int32 { return 2 + int32(len(*s)) }

// NullableString is a String whose absence is encoded as length -1 with
// no payload bytes. A decoded length below -1 is a protocol violation.
type NullableString struct {
	Str   string
	Valid bool
}

func (s *NullableString) Encode(w io.Writer) error {
	if !s.Valid {
		null := Int16(-1)
		return null.Encode(w)
	}
	str := String(s.Str)
	return str.Encode(w)
}

func (s *NullableString) Decode(r io.Reader) error {
	var length Int16
	if err := length.Decode(r); err != nil {
		return err
	}
	switch {
	case length == -1:
		*s = NullableString{}
		return nil
	case length < -1:
		return fmt.Errorf("%w: string length %d below null sentinel", ErrMalformed, length)
	}
	buf := make([]byte, length)
	if err := readFull(r, buf, "string payload"); err != nil {
		return err
	}
	if !utf8.Valid(buf) {
		return fmt.Errorf("%w: string payload is not valid UTF-8", ErrMalformed)
	}
	*s = NullableString{Str: string(buf), Valid: true}
	return nil
}

func (s *NullableString) Size() int32 {
	if !s.Valid {
		return 2
	}
	return 2 + int32(len(s.Str))
}
