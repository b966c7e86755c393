package hat

import (
	"errors"
	"fmt"
)

var (
	// ErrStructural is returned when a declared field does not fit in the buffer.
	ErrStructural = errors.New("hat: structural error")

	// ErrInvalidBaseKey is returned when a decrypted base section starts with
	// an unrecognized magic, meaning a wrong key/IV pairing or corruption.
	ErrInvalidBaseKey = errors.New("hat: corrupted base section")

	// ErrUnsupportedVariant is returned for containers that are recognized but
	// cannot be decoded by this package.
	ErrUnsupportedVariant = errors.New("hat: unsupported container variant")
)

func structuralf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrStructural, fmt.Sprintf(format, args...))
}

// need checks that n bytes starting at off are available in buf.
func need(buf []byte, off, n int, what string) error {
	if off < 0 || n < 0 || off > len(buf) || len(buf)-off < n {
		return structuralf("%s needs %d bytes at offset %d, buffer has %d", what, n, off, len(buf))
	}
	return nil
}
