package braille

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/aglyzov/go-braille/bittrie"
)

// lazyTrie builds a table once, on first use.
type lazyTrie struct {
	table Table
	once  sync.Once
	trie  *bittrie.Trie
	err   error
}

func (l *lazyTrie) get() (*bittrie.Trie, error) {
	l.once.Do(func() {
		trie, err := l.table.Build()
		if err != nil {
			// never expose a partially loaded trie
			l.err = err
			log.WithError(err).WithField("table", l.table.Name).Error("Failed to build a codec table")
			return
		}

		l.trie = trie
		log.WithFields(log.Fields{
			"table":   l.table.Name,
			"entries": trie.Len(),
		}).Debug("Codec table built")
	})

	return l.trie, l.err
}

// Translator converts characters using its own set of lazily built tables.
// It is safe for concurrent use.
type Translator struct {
	a2b lazyTrie
	b2a lazyTrie
	b2u lazyTrie
}

// NewTranslator returns a Translator with none of its tables built yet.
func NewTranslator() *Translator {
	return &Translator{
		a2b: lazyTrie{table: asciiToBraille},
		b2a: lazyTrie{table: brailleToASCII},
		b2u: lazyTrie{table: brailleToUnicode},
	}
}

// ToBraille returns the cell of an ASCII letter or space.
func (t *Translator) ToBraille(char rune) (string, error) {
	trie, err := t.a2b.get()
	if err != nil {
		return "", err
	}

	cell, err := trie.Get(fmt.Sprintf("%0*b", ASCIIBits, char))
	if err != nil {
		return "", &UnknownCharacterError{Char: char, Err: err}
	}

	return cell, nil
}

// ToASCII returns the upper-case letter or space of a cell.
func (t *Translator) ToASCII(bits string) (string, error) {
	trie, err := t.b2a.get()
	if err != nil {
		return "", err
	}

	return trie.Get(bits)
}

// ToUnicode returns the Unicode Braille Patterns character of a cell.
func (t *Translator) ToUnicode(bits string) (string, error) {
	trie, err := t.b2u.get()
	if err != nil {
		return "", err
	}

	hex, err := trie.Get(bits)
	if err != nil {
		return "", err
	}

	cp, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "", errors.Wrapf(err, "cell %q: code point %q", bits, hex)
	}

	return string(rune(cp)), nil
}

var std = NewTranslator()

// ToBraille converts a character using the process-wide Translator.
func ToBraille(char rune) (string, error) {
	return std.ToBraille(char)
}

// ToASCII converts a cell using the process-wide Translator.
func ToASCII(bits string) (string, error) {
	return std.ToASCII(bits)
}

// ToUnicode converts a cell using the process-wide Translator.
func ToUnicode(bits string) (string, error) {
	return std.ToUnicode(bits)
}

// Default returns the process-wide Translator.
func Default() *Translator {
	return std
}
