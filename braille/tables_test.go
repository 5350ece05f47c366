package braille

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables_Build(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Table  Table
		ExpLen int
	}{
		{asciiToBraille, 53},
		{brailleToASCII, 27},
		{brailleToUnicode, 64},
	} {
		tcase := tcase

		t.Run(tcase.Table.Name, func(t *testing.T) {
			tr, err := tcase.Table.Build()

			require.NoError(t, err)
			assert.Equal(t, tcase.ExpLen, tr.Len())
			assert.Equal(t, tcase.Table.BitLength, tr.BitLength())
		})
	}

	assert.Len(t, Tables(), 3)
}

func TestTables_UnicodeDump(t *testing.T) {
	t.Parallel()

	tr, err := brailleToUnicode.Build()
	require.NoError(t, err)

	var keys []string
	for bits := range tr.All() {
		keys = append(keys, bits)
	}

	require.Len(t, keys, 64)
	assert.Equal(t, "000000", keys[0])
	assert.Equal(t, "111111", keys[63])
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}

// The literal Unicode table and the dot weights must agree on every cell.
func TestTables_UnicodeMatchesDots(t *testing.T) {
	t.Parallel()

	tr, err := brailleToUnicode.Build()
	require.NoError(t, err)

	for bits, hex := range tr.All() {
		cp, err := CodePoint(bits)
		require.NoError(t, err)

		assert.Equal(t, fmt.Sprintf("%04X", cp), hex, bits)
	}
}

// Both letter tables describe the same alphabet.
func TestTables_LettersAgree(t *testing.T) {
	t.Parallel()

	a2b, err := asciiToBraille.Build()
	require.NoError(t, err)

	b2a, err := brailleToASCII.Build()
	require.NoError(t, err)

	seen := map[string]bool{}

	for bits, cell := range a2b.All() {
		var code byte
		for i := 0; i < len(bits); i++ {
			code = code<<1 | (bits[i] - '0')
		}

		letter, err := b2a.Get(cell)
		require.NoError(t, err, "%q", code)
		assert.Equal(t, strings.ToUpper(string(code)), letter)

		seen[cell] = true
	}

	assert.Len(t, seen, b2a.Len())
}

func TestTable_Sparse(t *testing.T) {
	t.Parallel()

	_, err := Table{"half", 1, "0,x\n", true}.Build()

	assert.ErrorIs(t, err, ErrSparseTable)
}
