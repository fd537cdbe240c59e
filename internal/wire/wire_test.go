package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeFieldsPreservesOrder(t *testing.T) {
	a := Int16(0x0102)
	b := Int8(0x03)
	var buf bytes.Buffer
	err := EncodeFields(&buf,
		F("a", &a),
		F("b", &b),
	)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, buf.Bytes())
}

func TestDecodeFieldsNamesFailingField(t *testing.T) {
	// enough bytes for the first field, none for the second
	data := []byte{0x00, 0x01}
	var a Int16
	var b Int32
	err := DecodeFields(bytes.NewReader(data),
		F("first", &a),
		F("second", &b),
	)
	require.ErrorIs(t, err, ErrTruncated)
	require.ErrorContains(t, err, "second")
}

func TestSizeFieldsSums(t *testing.T) {
	a := Int64(0)
	s := String("abc")
	got := SizeFields(F("a", &a), F("s", &s))
	require.Equal(t, int32(8+2+3), got)
}
