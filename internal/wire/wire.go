package wire

import (
	"fmt"
	"io"
)

// Field is implemented by every value with a defined wire representation.
// Decode populates the receiver in place; implementations use pointer
// receivers throughout.
//
// Invariant: Encode writes exactly Size() bytes. Everything built on top
// of this package (frames, envelopes) relies on that equality.
type Field interface {
	Encode(w io.Writer) error
	Decode(r io.Reader) error
	Size() int32
}

// Ptr constrains P to a pointer to T that implements Field. It lets
// generic containers call Field methods on addressable elements.
type Ptr[T any] interface {
	*T
	Field
}

// FieldDef pairs a wire field with its schema name. The name never
// appears on the wire; it is used to annotate decode errors.
type FieldDef struct {
	Name  string
	Value Field
}

// F builds a FieldDef. Composite messages declare their layout as an
// ordered F(...) list and derive Encode, Decode and Size from it.
func F(name string, v Field) FieldDef {
	return FieldDef{Name: name, Value: v}
}

// EncodeFields encodes each field in declared order. Field order is part
// of the wire contract and must never be changed for a given message.
func EncodeFields(w io.Writer, fields ...FieldDef) error {
	for _, f := range fields {
		if err := f.Value.Encode(w); err != nil {
			return fmt.Errorf("encoding %s: %w", f.Name, err)
		}
	}
	return nil
}

// DecodeFields decodes each field in declared order. The first failure
// aborts the whole decode; callers must not treat a partially populated
// value as valid.
func DecodeFields(r io.Reader, fields ...FieldDef) error {
	for _, f := range fields {
		if err := f.Value.Decode(r); err != nil {
			return fmt.Errorf("decoding %s: %w", f.Name, err)
		}
	}
	return nil
}

// SizeFields sums the encoded size of each field.
func SizeFields(fields ...FieldDef) int32 {
	var size int32
	for _, f := range fields {
		size += f.Value.Size()
	}
	return size
}
