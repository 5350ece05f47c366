package bittrie

import (
	"fmt"
	"io"
	"iter"

	"github.com/pkg/errors"
)

// All returns a sequence of all (bits, value) pairs in ascending key order.
// The sequence can be ranged over any number of times.
func (t *Trie) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		walk(t.root, "", func(item Item) bool {
			return yield(item.Bits, item.Value)
		})
	}
}

// Iter calls a handler for all keys with a given bit prefix, in ascending order.
// It returns whether all prefixed keys were iterated.
// The handler can continue the process by returning true or abort with false.
func (t *Trie) Iter(prefix string, handler func(Item) bool) bool {
	if len(prefix) > t.bitLength {
		return true
	}

	// descend along the prefix
	cur := t.root
	for i := 0; i < len(prefix); i++ {
		switch prefix[i] {
		case '0', '1':
		default:
			return true
		}
		if cur.leaf {
			return true
		}
		if cur = cur.child[prefix[i]-'0']; cur == nil {
			return true
		}
	}

	return walk(cur, prefix, handler)
}

// Items returns all items sorted by key.
func (t *Trie) Items() []Item {
	items := make([]Item, 0, t.size)

	walk(t.root, "", func(item Item) bool {
		items = append(items, item)
		return true
	})

	return items
}

// Dump writes every item as a "<bits>,<value>" line.
func (t *Trie) Dump(w io.Writer) error {
	for bits, value := range t.All() {
		if _, err := fmt.Fprintf(w, "%s,%s\n", bits, value); err != nil {
			return errors.Wrap(err, "dump")
		}
	}

	return nil
}

type frame struct {
	node *Node
	path string
}

// walk visits the leaves under start ('0' branch first) without function recursion.
func walk(start *Node, prefix string, h func(Item) bool) bool {
	toVisit := []frame{{start, prefix}}

	for l := len(toVisit); l > 0; l = len(toVisit) {
		// pop the last frame
		f := toVisit[l-1]
		toVisit = toVisit[:l-1]

		if f.node.leaf {
			if !h(Item{Bits: f.path, Value: f.node.value}) {
				return false
			}
			continue
		}

		// push the right child first so the left one is visited first
		if c := f.node.child[1]; c != nil {
			toVisit = append(toVisit, frame{c, f.path + "1"})
		}
		if c := f.node.child[0]; c != nil {
			toVisit = append(toVisit, frame{c, f.path + "0"})
		}
	}

	return true
}
