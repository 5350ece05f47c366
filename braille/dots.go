package braille

import (
	"github.com/pkg/errors"

	"github.com/aglyzov/go-braille/bittrie"
)

// BlankCell is the code point of the cell with no raised dots.
const BlankCell rune = 0x2800

// CodePoint computes the Unicode code point of a cell without the tables:
// character i of bits is dot i+1 and adds 1<<i to BlankCell.
func CodePoint(bits string) (rune, error) {
	if len(bits) != CellBits {
		return 0, errors.Wrapf(bittrie.ErrLengthMismatch, "cell %q", bits)
	}

	cp := BlankCell

	for i := 0; i < CellBits; i++ {
		switch bits[i] {
		case '0':
		case '1':
			cp |= 1 << i
		default:
			return 0, errors.Wrapf(bittrie.ErrInvalidBit, "cell %q: %q at position %d", bits, bits[i], i)
		}
	}

	return cp, nil
}

// Dots returns the numbers of the raised dots of a cell in ascending order.
func Dots(bits string) ([]int, error) {
	cp, err := CodePoint(bits)
	if err != nil {
		return nil, err
	}

	var dots []int
	for i, off := 0, cp-BlankCell; off != 0; i, off = i+1, off>>1 {
		if off&1 != 0 {
			dots = append(dots, i+1)
		}
	}

	return dots, nil
}
