// Package transcribe translates whole strings one character or cell at a time
// and reports problems with individual chunks.
package transcribe

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/aglyzov/go-braille/braille"
)

// Target is the character set to translate into.
type Target string

const (
	Braille Target = "braille"
	ASCII   Target = "ascii"
	Unicode Target = "unicode"
)

var (
	// ErrUnsupportedTarget is returned by ParseTarget for unknown names.
	ErrUnsupportedTarget = errors.New("unsupported target")
	// ErrLeftoverBits is reported when a bit string is not a whole number of cells.
	ErrLeftoverBits = errors.New("leftover bits")
)

// ParseTarget returns the Target named s, ignoring case.
func ParseTarget(s string) (Target, error) {
	switch t := Target(strings.ToLower(strings.TrimSpace(s))); t {
	case Braille, ASCII, Unicode:
		return t, nil
	}
	return "", errors.Wrapf(ErrUnsupportedTarget, "%q", s)
}

// Transcriber writes translations and per-chunk diagnostics to out.
type Transcriber struct {
	tr  *braille.Translator
	out io.Writer
}

// New returns a Transcriber; a nil Translator means the process-wide one.
func New(tr *braille.Translator, out io.Writer) *Transcriber {
	if tr == nil {
		tr = braille.Default()
	}
	return &Transcriber{tr: tr, out: out}
}

// Run translates source into target and prints the result.
func (t *Transcriber) Run(target Target, source string) error {
	log.WithFields(log.Fields{
		"target": target,
		"length": len(source),
	}).Debug("Transcribing")

	switch target {
	case Braille:
		return t.toBraille(source)
	case ASCII:
		return t.toASCII(source)
	case Unicode:
		return t.toUnicode(source)
	}
	return errors.Wrapf(ErrUnsupportedTarget, "%q", target)
}

func (t *Transcriber) toBraille(source string) error {
	var b strings.Builder

	for _, char := range source {
		cell, err := t.tr.ToBraille(char)
		if err != nil {
			return err
		}
		b.WriteString(cell)
	}

	return t.println(b.String())
}

// toASCII translates every whole cell, reporting the bad ones without stopping.
func (t *Transcriber) toASCII(source string) error {
	var (
		b    strings.Builder
		errs *multierror.Error
	)

	for i := 0; i+braille.CellBits <= len(source); i += braille.CellBits {
		bits := source[i : i+braille.CellBits]

		val, err := t.tr.ToASCII(bits)
		if err != nil {
			errs = multierror.Append(errs, err)
			if perr := t.println(fmt.Sprintf("Trouble translating chunk '%s' because %v", bits, err)); perr != nil {
				return perr
			}
			continue
		}
		b.WriteString(val)
	}

	if n := len(source) % braille.CellBits; n != 0 {
		rest := source[len(source)-n:]

		errs = multierror.Append(errs, errors.Wrapf(ErrLeftoverBits, "%q", rest))
		if err := t.println(fmt.Sprintf("Invalid bits: '%s' (length: %d)", rest, n)); err != nil {
			return err
		}
	}

	if errs == nil || b.Len() > 0 {
		if err := t.println("Result: " + b.String()); err != nil {
			return err
		}
	}

	return errs.ErrorOrNil()
}

func (t *Transcriber) toUnicode(source string) error {
	var b strings.Builder

	for _, char := range source {
		cell, err := t.tr.ToBraille(char)
		if err != nil {
			return err
		}

		val, err := t.tr.ToUnicode(cell)
		if err != nil {
			return err
		}
		b.WriteString(val)
	}

	return t.println(b.String())
}

func (t *Transcriber) println(s string) error {
	_, err := fmt.Fprintln(t.out, s)
	return errors.Wrap(err, "write output")
}
