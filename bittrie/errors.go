package bittrie

import (
	"github.com/pkg/errors"
)

var (
	// ErrLengthMismatch is returned when a key is not exactly BitLength bits long.
	ErrLengthMismatch = errors.New("bit length mismatch")
	// ErrInvalidBit is returned when a key contains anything but '0' and '1'.
	ErrInvalidBit = errors.New("invalid bit")
	// ErrPathNotFound is returned for a well-formed key that was never set.
	ErrPathNotFound = errors.New("path does not exist")
	// ErrPathIncomplete means a walk ended on an interior node.
	ErrPathIncomplete = errors.New("path does not lead to a value")
	// ErrStructuralConflict means a node of the wrong kind sits on a path.
	// Neither this nor ErrPathIncomplete can happen unless the trie is broken.
	ErrStructuralConflict = errors.New("structural conflict")
	// ErrTooWide is returned by Coverage for tries longer than 8 bits.
	ErrTooWide = errors.New("bit length too wide for a coverage bitmap")
)
