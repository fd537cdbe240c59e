package wire

import (
	"bytes"
	"math"
	"reflect"
	"testing"
)

// roundTrip encodes in, checks the size/encode duality, decodes into
// out, checks full consumption, and compares the two values.
func roundTrip(t *testing.T, in, out Field) {
	t.Helper()

	var buf bytes.Buffer
	if err := in.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if got, want := int32(buf.Len()), in.Size(); got != want {
		t.Fatalf("encoded %d bytes, Size() = %d", got, want)
	}

	r := bytes.NewReader(buf.Bytes())
	if err := out.Decode(r); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if r.Len() != 0 {
		t.Fatalf("decode left %d bytes unconsumed", r.Len())
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip mismatch:\n got %#v\nwant %#v", out, in)
	}
}

func TestInt8RoundTrip(t *testing.T) {
	for i := math.MinInt8; i <= math.MaxInt8; i++ {
		in := Int8(i)
		var out Int8
		roundTrip(t, &in, &out)
	}
}

func TestInt16RoundTrip(t *testing.T) {
	for _, i := range []int16{math.MinInt16, -1, 0, 1, 257, math.MaxInt16} {
		in := Int16(i)
		var out Int16
		roundTrip(t, &in, &out)
	}
}

func TestInt32RoundTrip(t *testing.T) {
	for _, i := range []int32{math.MinInt32, -1, 0, 1, 1 << 20, math.MaxInt32} {
		in := Int32(i)
		var out Int32
		roundTrip(t, &in, &out)
	}
}

func TestInt64RoundTrip(t *testing.T) {
	for _, i := range []int64{math.MinInt64, -1, 0, 1, 1 << 40, math.MaxInt64} {
		in := Int64(i)
		var out Int64
		roundTrip(t, &in, &out)
	}
}

func TestBigEndianLayout(t *testing.T) {
	in := Int32(0x01020304)
	var buf bytes.Buffer
	if err := in.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{0x01, 0x02, 0x03, 0x04}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Int32 layout = %x, want %x", buf.Bytes(), want)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "Interesting", "héllo, 世界"} {
		in := String(s)
		var out String
		roundTrip(t, &in, &out)
	}
}

func TestNullableStringRoundTrip(t *testing.T) {
	cases := []NullableString{
		{},
		{Str: "", Valid: true},
		{Str: "Interesting", Valid: true},
	}
	for _, in := range cases {
		in := in
		var out NullableString
		roundTrip(t, &in, &out)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	for _, b := range [][]byte{{}, {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}} {
		in := Bytes(b)
		var out Bytes
		roundTrip(t, &in, &out)
	}
}

func TestNullableBytesRoundTrip(t *testing.T) {
	cases := []NullableBytes{
		{},
		{Data: []byte{}, Valid: true},
		{Data: []byte{0, 1, 2, 3, 4, 5}, Valid: true},
	}
	for _, in := range cases {
		in := in
		var out NullableBytes
		roundTrip(t, &in, &out)
	}
}

func TestArrayRoundTrip(t *testing.T) {
	empty := Array[Int16, *Int16]{}
	var outEmpty Array[Int16, *Int16]
	roundTrip(t, &empty, &outEmpty)

	single := Array[Int16, *Int16]{42}
	var outSingle Array[Int16, *Int16]
	roundTrip(t, &single, &outSingle)

	multi := Array[Int16, *Int16]{-1, 0, 1, 2, 3, 4, 5}
	var outMulti Array[Int16, *Int16]
	roundTrip(t, &multi, &outMulti)

	strs := Array[String, *String]{"a", "", "longer value"}
	var outStrs Array[String, *String]
	roundTrip(t, &strs, &outStrs)
}

func TestSizedRoundTrip(t *testing.T) {
	in := Sized[Bytes, *Bytes]{Value: Bytes{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}}
	var out Sized[Bytes, *Bytes]
	roundTrip(t, &in, &out)
}

type sizedBytes = Sized[Bytes, *Bytes]

func TestNestedSizedRoundTrip(t *testing.T) {
	in := Sized[sizedBytes, *sizedBytes]{Value: sizedBytes{Value: Bytes{1, 2, 3}}}
	var out Sized[sizedBytes, *sizedBytes]
	roundTrip(t, &in, &out)
}

func TestArrayOfSizedRoundTrip(t *testing.T) {
	in := Array[sizedBytes, *sizedBytes]{
		{Value: Bytes{}},
		{Value: Bytes{9, 8, 7}},
	}
	var out Array[sizedBytes, *sizedBytes]
	roundTrip(t, &in, &out)
}
