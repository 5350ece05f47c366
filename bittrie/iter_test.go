package bittrie

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTrie(t *testing.T, keys ...string) *Trie {
	t.Helper()

	tr := New(len(keys[0]))
	for _, k := range keys {
		require.NoError(t, tr.Set(k, strings.ToUpper(k)))
	}
	return tr
}

func TestAll_Order(t *testing.T) {
	t.Parallel()

	tr := newTestTrie(t, "111", "010", "000", "101", "011")

	var keys []string
	for bits, val := range tr.All() {
		keys = append(keys, bits)
		assert.Equal(t, strings.ToUpper(bits), val)
	}

	assert.Equal(t, []string{"000", "010", "011", "101", "111"}, keys)
}

func TestAll_Restartable(t *testing.T) {
	t.Parallel()

	tr := newTestTrie(t, "10", "01")

	collect := func() (s []string) {
		for bits := range tr.All() {
			s = append(s, bits)
		}
		return
	}

	first := collect()
	assert.Equal(t, first, collect())
	assert.Equal(t, []string{"01", "10"}, first)
}

func TestAll_Break(t *testing.T) {
	t.Parallel()

	tr := newTestTrie(t, "00", "01", "10", "11")

	var keys []string
	for bits := range tr.All() {
		keys = append(keys, bits)
		if len(keys) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"00", "01"}, keys)
}

func TestAll_Empty(t *testing.T) {
	t.Parallel()

	for range New(4).All() {
		t.Fatal("empty trie yielded an item")
	}
	assert.Empty(t, New(4).Items())
}

func TestIter(t *testing.T) {
	t.Parallel()

	tr := newTestTrie(t, "0000", "0010", "0011", "0100", "1000", "1111")

	for _, tcase := range []*struct {
		Prefix string
		Keys   []string
	}{
		{"", []string{"0000", "0010", "0011", "0100", "1000", "1111"}},
		{"0", []string{"0000", "0010", "0011", "0100"}},
		{"00", []string{"0000", "0010", "0011"}},
		{"001", []string{"0010", "0011"}},
		{"0011", []string{"0011"}},
		{"1", []string{"1000", "1111"}},
		{"0101", nil},
		{"110", nil},
		{"00110", nil},
		{"0x", nil},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%#v", tcase.Prefix)
		)

		t.Run(name, func(t *testing.T) {
			var keys []string

			ok := tr.Iter(tcase.Prefix, func(item Item) bool {
				keys = append(keys, item.Bits)
				assert.Equal(t, strings.ToUpper(item.Bits), item.Value)
				return true
			})

			assert.True(t, ok)
			assert.Equal(t, tcase.Keys, keys)
		})
	}
}

func TestIter_Abort(t *testing.T) {
	t.Parallel()

	tr := newTestTrie(t, "00", "01", "10", "11")

	var n int
	ok := tr.Iter("", func(Item) bool {
		n++
		return n < 3
	})

	assert.False(t, ok)
	assert.Equal(t, 3, n)
}

func TestItems(t *testing.T) {
	t.Parallel()

	tr := newTestTrie(t, "11", "00", "10")

	assert.Equal(t, []Item{
		{"00", "00"},
		{"10", "10"},
		{"11", "11"},
	}, tr.Items())
}

func TestDump(t *testing.T) {
	t.Parallel()

	tr := New(2)
	require.NoError(t, tr.Set("10", "B"))
	require.NoError(t, tr.Set("00", " "))
	require.NoError(t, tr.Set("01", "a,b"))

	var buf strings.Builder
	require.NoError(t, tr.Dump(&buf))

	assert.Equal(t, "00, \n01,a,b\n10,B\n", buf.String())

	// a dump loads back into an identical trie
	clone := New(2)
	require.NoError(t, clone.LoadCSV(strings.NewReader(buf.String())))
	assert.Equal(t, tr.Items(), clone.Items())
}
