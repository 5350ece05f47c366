package bittrie

import (
	"github.com/hideo55/go-popcount"
	"github.com/pkg/errors"
)

// Bitmap has one bit per possible 8-bit key: 256 bits representing 2**8 entries.
type Bitmap [4]uint64

func (b *Bitmap) set(k uint8) {
	b[k>>6] |= 1 << (k & 0x3F) // the lowest 6 bits (2**6 == 64)
}

// Has reports whether key k is present.
func (b Bitmap) Has(k uint8) bool {
	return (b[k>>6]>>(k&0x3F))&0x01 != 0
}

// Count returns the number of present keys.
func (b Bitmap) Count() int {
	var cnt uint64
	for _, bmp := range b {
		cnt += popcount.Count(bmp)
	}
	return int(cnt)
}

// Coverage returns a bitmap of the keys stored in the trie, each key read as
// an unsigned number with the first bit being the most significant one.
func (t *Trie) Coverage() (Bitmap, error) {
	var bmp Bitmap

	if t.bitLength > 8 {
		return bmp, errors.Wrapf(ErrTooWide, "%d bits", t.bitLength)
	}

	for bits := range t.All() {
		var k uint8
		for i := 0; i < len(bits); i++ {
			k = k<<1 | (bits[i] - '0')
		}
		bmp.set(k)
	}

	return bmp, nil
}
