package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringRejectsNegativeLength(t *testing.T) {
	// length -1 is only meaningful for the nullable variant
	data := []byte{0xff, 0xff}
	var s String
	err := s.Decode(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestStringRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0x00, 0x02, 0xff, 0xfe}
	var s String
	err := s.Decode(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestStringTruncatedPayload(t *testing.T) {
	// declares 5 bytes, supplies 2
	data := []byte{0x00, 0x05, 'a', 'b'}
	var s String
	err := s.Decode(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrTruncated)
}

func TestNullableStringSentinels(t *testing.T) {
	// -1 decodes to absent with no payload bytes
	var s NullableString
	require.NoError(t, s.Decode(bytes.NewReader([]byte{0xff, 0xff})))
	require.False(t, s.Valid)

	// 0 decodes to present and empty
	require.NoError(t, s.Decode(bytes.NewReader([]byte{0x00, 0x00})))
	require.True(t, s.Valid)
	require.Equal(t, "", s.Str)

	// -2 is below the sentinel and must fail
	err := s.Decode(bytes.NewReader([]byte{0xff, 0xfe}))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestNullableStringRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0x00, 0x01, 0xc0}
	var s NullableString
	err := s.Decode(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestBytesRejectsNegativeLength(t *testing.T) {
	data := []byte{0xff, 0xff, 0xff, 0xff}
	var b Bytes
	err := b.Decode(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestNullableBytesSentinels(t *testing.T) {
	// -1 decodes to absent
	var b NullableBytes
	require.NoError(t, b.Decode(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff})))
	require.False(t, b.Valid)

	// 0 decodes to present and empty
	require.NoError(t, b.Decode(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x00})))
	require.True(t, b.Valid)
	require.Empty(t, b.Data)

	// -2 is below the sentinel and must fail
	err := b.Decode(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xfe}))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestNullableBytesTruncatedPayload(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x04, 1, 2}
	var b NullableBytes
	err := b.Decode(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrTruncated)
}

func TestArrayRejectsNegativeCount(t *testing.T) {
	data := []byte{0xff, 0xff, 0xff, 0xff}
	var a Array[Int16, *Int16]
	err := a.Decode(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestArrayTruncatedElements(t *testing.T) {
	// claims two int16 elements, supplies one
	data := []byte{0x00, 0x00, 0x00, 0x02, 0x00, 0x07}
	var a Array[Int16, *Int16]
	err := a.Decode(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrTruncated)
}

func TestArrayHostileCountDoesNotPreallocate(t *testing.T) {
	// a count in the billions must fail on the first missing element
	// instead of allocating the declared capacity up front
	data := []byte{0x40, 0x00, 0x00, 0x00}
	var a Array[Int64, *Int64]
	err := a.Decode(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrTruncated)
}
