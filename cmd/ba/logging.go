package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// setupLogging configures the standard logger; log output goes to stderr so
// that stdout carries translations only.
func setupLogging(opts *Options) {
	// no -v shows errors only
	verbosity := log.ErrorLevel + log.Level(len(opts.Verbose))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	log.SetLevel(verbosity)
	log.SetOutput(os.Stderr)

	if opts.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
			},
		})
	} else {
		log.SetFormatter(&log.TextFormatter{})
	}
}
