package bittrie

import (
	"bufio"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Load sets every item in order. A bad item does not stop the load: items
// already set stay set and all failures are returned together.
func (t *Trie) Load(items ...Item) error {
	var errs *multierror.Error

	for i, item := range items {
		if err := t.Set(item.Bits, item.Value); err != nil {
			errs = multierror.Append(errs, errors.WithMessagef(err, "row %d", i+1))
		}
	}

	return errs.ErrorOrNil()
}

// LoadCSV reads "<bits>,<value>" lines and loads them like Load does.
//
// Only the first comma separates the key from the value; the value is kept
// verbatim, so " " and "" are valid values. Blank lines and lines without a
// comma are skipped.
func (t *Trie) LoadCSV(r io.Reader) error {
	var (
		items   []Item
		scanner = bufio.NewScanner(r)
	)

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		bits, value, ok := strings.Cut(line, ",")
		if !ok {
			continue
		}

		items = append(items, Item{Bits: bits, Value: value})
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read table")
	}

	return t.Load(items...)
}
