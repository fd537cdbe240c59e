package wire

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMalformed indicates the input violated the wire format: invalid
	// UTF-8, a length below the permitted sentinel, an unexpected API key
	// or version, or trailing bytes left inside a sized frame.
	ErrMalformed = errors.New("kwire: malformed payload")

	// ErrTruncated indicates the input ended before a value or frame
	// could be fully read.
	ErrTruncated = errors.New("kwire: truncated input")
)

// readFull fills buf from r, translating end-of-input conditions into
// ErrTruncated. Other I/O errors propagate opaquely.
func readFull(r io.Reader, buf []byte, what string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return fmt.Errorf("%w: short read decoding %s", ErrTruncated, what)
		}
		return fmt.Errorf("reading %s: %w", what, err)
	}
	return nil
}
