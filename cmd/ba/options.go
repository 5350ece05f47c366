package main

// Options are the command-line options of ba.
type Options struct {
	Verbose   []bool `short:"v" long:"verbose"    description:"Show verbose debug information (repeat for more)"`
	LogFormat string `short:"f" long:"log-format" description:"Log format (json or text)." choice:"text" choice:"json" default:"text"`

	Args struct {
		Target string `positional-arg-name:"target" description:"Target character set: braille, ascii or unicode"`
		Source string `positional-arg-name:"source" description:"Characters (or bits) to translate"`
	} `positional-args:"yes" required:"yes"`
}
