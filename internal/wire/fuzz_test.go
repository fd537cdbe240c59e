package wire

import (
	"bytes"
	"testing"
)

// FuzzReadFrame feeds arbitrary bytes through the framed decode path.
// Malformed input must always surface as an error, never a panic, and
// never a read past the declared frame boundary.
func FuzzReadFrame(f *testing.F) {
	var valid bytes.Buffer
	arr := Array[String, *String]{"test", "more"}
	_ = WriteFrame(&valid, &arr)
	f.Add(valid.Bytes())

	f.Add([]byte{0, 0, 0, 0})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff})
	f.Add([]byte{0, 0, 0, 4, 0, 0, 0, 0})
	f.Add([]byte{0x7f, 0xff, 0xff, 0xff, 1, 2, 3})

	f.Fuzz(func(t *testing.T, data []byte) {
		r := bytes.NewReader(data)
		var out Array[String, *String]
		if err := ReadFrame(r, &out); err != nil {
			return
		}
		// a successful decode must have consumed the declared frame
		// and nothing beyond it
		if consumed := len(data) - r.Len(); consumed != int(4+out.Size()) {
			t.Errorf("consumed %d bytes, frame size %d", consumed, 4+out.Size())
		}
	})
}

// FuzzNullableDecode exercises the sentinel handling of the nullable
// variants with arbitrary input.
func FuzzNullableDecode(f *testing.F) {
	f.Add([]byte{0xff, 0xff})
	f.Add([]byte{0x00, 0x00})
	f.Add([]byte{0xff, 0xfe})
	f.Add([]byte{0x00, 0x04, 't', 'e', 's', 't'})

	f.Fuzz(func(t *testing.T, data []byte) {
		var s NullableString
		_ = s.Decode(bytes.NewReader(data))

		var b NullableBytes
		_ = b.Decode(bytes.NewReader(data))
	})
}
