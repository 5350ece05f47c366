// Command ba translates between ASCII, Braille bit strings and Unicode Braille.
//
//	ba braille "Hello"          # 110010100010111000111000101010
//	ba ascii 110010100010       # Result: HE
//	ba unicode "Hello"          # ⠓⠑⠇⠇⠕
package main

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/aglyzov/go-braille/braille/transcribe"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitGeneric = 99
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	var (
		opts   Options
		parser = flags.NewParser(&opts, flags.HelpFlag|flags.PrintErrors)
	)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return exitOK
		}
		return exitGeneric
	}

	setupLogging(&opts)

	target, err := transcribe.ParseTarget(opts.Args.Target)
	if err != nil {
		log.WithError(err).Error("Cannot translate")
		return exitFailed
	}

	if err := transcribe.New(nil, stdout).Run(target, opts.Args.Source); err != nil {
		log.WithError(err).WithField("target", target).Error("Trouble translating")
		return exitFailed
	}

	return exitOK
}
