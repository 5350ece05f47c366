package bittrie

import (
	"fmt"

	"github.com/pkg/errors"
)

// Item is a key-value pair stored in a leaf.
type Item struct {
	Bits  string
	Value string
}

// Node is either an interior node or a leaf; the kind is fixed at creation.
type Node struct {
	// child[0] follows bit '0', child[1] follows bit '1' (interior only)
	child [2]*Node
	// value is set on leaves only
	value string
	leaf  bool
}

func newInterior() *Node {
	return &Node{}
}

func newLeaf() *Node {
	return &Node{leaf: true}
}

func (n *Node) IsLeaf() bool {
	return n.leaf
}

func (n *Node) String() string {
	if n == nil {
		return "<bittrie|nil>"
	}
	if n.leaf {
		return fmt.Sprintf("<bittrie|Leaf|%q>", n.value)
	}
	return fmt.Sprintf("<bittrie|Node|0:%t|1:%t>", n.child[0] != nil, n.child[1] != nil)
}

// Trie maps BitLength-bit keys to string values.
type Trie struct {
	root      *Node
	bitLength int
	size      int
}

// New returns an empty Trie for keys of bitLength bits.
func New(bitLength int) *Trie {
	if bitLength <= 0 {
		panic(fmt.Sprintf("bittrie: bit length must be positive, got %d", bitLength))
	}

	return &Trie{
		root:      newInterior(),
		bitLength: bitLength,
	}
}

// BitLength returns the number of bits in every key.
func (t *Trie) BitLength() int {
	return t.bitLength
}

// Len returns the number of leaves.
func (t *Trie) Len() int {
	return t.size
}

func (t *Trie) Empty() bool {
	return t.size == 0
}

// check validates the key length and alphabet before any node is touched.
func (t *Trie) check(bits string) error {
	if len(bits) != t.bitLength {
		return errors.Wrapf(ErrLengthMismatch, "key %q has %d bits, want %d", bits, len(bits), t.bitLength)
	}

	for i := 0; i < len(bits); i++ {
		if bits[i] != '0' && bits[i] != '1' {
			return errors.Wrapf(ErrInvalidBit, "key %q: %q at position %d", bits, bits[i], i)
		}
	}

	return nil
}

// Set stores a value at the leaf addressed by bits, overwriting an old value.
func (t *Trie) Set(bits, value string) error {
	if err := t.check(bits); err != nil {
		return err
	}

	var (
		cur  = t.root
		last = len(bits) - 1
	)

	for i := 0; i <= last; i++ {
		if cur.leaf {
			return errors.Wrapf(ErrStructuralConflict, "key %q: leaf at depth %d", bits, i)
		}

		dir := bits[i] - '0'
		next := cur.child[dir]

		if next == nil {
			// the terminal node is the only one created as a leaf
			if i == last {
				next = newLeaf()
				t.size++
			} else {
				next = newInterior()
			}
			cur.child[dir] = next
		}

		cur = next
	}

	if !cur.leaf {
		return errors.Wrapf(ErrStructuralConflict, "key %q: interior node addressed as a leaf", bits)
	}

	cur.value = value

	return nil
}

// Get returns the value stored at the leaf addressed by bits.
func (t *Trie) Get(bits string) (string, error) {
	if err := t.check(bits); err != nil {
		return "", err
	}

	cur := t.root

	for i := 0; i < len(bits); i++ {
		if cur.leaf {
			return "", errors.Wrapf(ErrStructuralConflict, "key %q: leaf at depth %d", bits, i)
		}

		cur = cur.child[bits[i]-'0']

		if cur == nil {
			return "", errors.Wrapf(ErrPathNotFound, "key %q", bits)
		}
	}

	if !cur.leaf {
		return "", errors.Wrapf(ErrPathIncomplete, "key %q", bits)
	}

	return cur.value, nil
}

// Has reports whether a value is stored under bits.
func (t *Trie) Has(bits string) bool {
	_, err := t.Get(bits)
	return err == nil
}
