package wire

import (
	"encoding/binary"
	"io"
)

// Int8 is a signed 8-bit integer.
type Int8 int8

func (v *Int8) Encode(w io.Writer) error {
	_, err := w.Write([]byte{byte(*v)})
	return err
}

func (v *Int8) Decode(r io.Reader) error {
	var buf [1]byte
	if err := readFull(r, buf[:], "int8"); err != nil {
		return err
	}
	*v = Int8(buf[0])
	return nil
}

func (v *Int8) Size() int32 { return 1 }

// Int16 is a signed 16-bit big-endian integer.
type Int16 int16

func (v *Int16) Encode(w io.Writer) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(*v))
	_, err := w.Write(buf[:])
	return err
}

func (v *Int16) Decode(r io.Reader) error {
	var buf [2]byte
	if err := readFull(r, buf[:], "int16"); err != nil {
		return err
	}
	*v = Int16(binary.BigEndian.Uint16(buf[:]))
	return nil
}

func (v *Int16) Size() int32 { return 2 }

// Int32 is a signed 32-bit big-endian integer.
type Int32 int32

func (v *Int32) Encode(w io.Writer) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(*v))
	_, err := w.Write(buf[:])
	return err
}

func (v *Int32) Decode(r io.Reader) error {
	var buf [4]byte
	if err := readFull(r, buf[:], "int32"); err != nil {
		return err
	}
	*v = Int32(binary.BigEndian.Uint32(buf[:]))
	return nil
}

func (v *Int32) Size() int32 { return 4 }

// Int64 is a signed 64-bit big-endian integer.
type Int64 int64

func (v *Int64) Encode(w io.Writer) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(*v))
	_, err := w.Write(buf[:])
	return err
}

func (v *Int64) Decode(r io.Reader) error {
	var buf [8]byte
	if err := readFull(r, buf[:], "int64"); err != nil {
		return err
	}
	*v = Int64(binary.BigEndian.Uint64(buf[:]))
	return nil
}

func (v *Int64) Size() int32 { return 8 }
