package braille

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrSparseTable is returned when a dense table misses some keys.
var ErrSparseTable = errors.New("table does not cover every key")

// UnknownCharacterError is returned by ToBraille for characters without a cell.
// It wraps the lookup error, usually bittrie.ErrPathNotFound.
type UnknownCharacterError struct {
	Char rune
	Err  error
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("unknown character %q: %v", e.Char, e.Err)
}

func (e *UnknownCharacterError) Unwrap() error {
	return e.Err
}
