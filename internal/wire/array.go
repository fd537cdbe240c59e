package wire

import (
	"fmt"
	"io"
)

// maxArrayPrealloc caps the capacity allocated up front when decoding an
// array, so a corrupt count cannot force a huge allocation before the
// element decodes start failing.
const maxArrayPrealloc = 1 << 16

// Array is an ordered sequence of wire values of a single element type,
// prefixed by its element count as an int32. Order is significant and
// preserved. An empty array encodes as count 0 with no element bytes.
type Array[T any, P Ptr[T]] []T

func (a *Array[T, P]) Encode(w io.Writer) error {
	count := Int32(len(*a))
	if err := count.Encode(w); err != nil {
		return err
	}
	for i := range *a {
		if err := P(&(*a)[i]).Encode(w); err != nil {
			return fmt.Errorf("encoding element %d: %w", i, err)
		}
	}
	return nil
}

func (a *Array[T, P]) Decode(r io.Reader) error {
	var count Int32
	if err := count.Decode(r); err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("%w: negative array count %d", ErrMalformed, count)
	}
	out := make([]T, 0, min(int(count), maxArrayPrealloc))
	for i := 0; i < int(count); i++ {
		var elem T
		if err := P(&elem).Decode(r); err != nil {
			return fmt.Errorf("decoding element %d: %w", i, err)
		}
		out = append(out, elem)
	}
	*a = out
	return nil
}

func (a *Array[T, P]) Size() int32 {
	size := int32(4)
	for i := range *a {
		size += P(&(*a)[i]).Size()
	}
	return size
}
