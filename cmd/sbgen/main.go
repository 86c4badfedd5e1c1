/*
sbgen is a console utility compiling grammar definitions to the NODE/LIST/TOKEN wire format.
Usage is

	sbgen emit [-g <grammar>] [-o <file>] [--expect <golden>] <file>
	sbgen schema [--check <snapshot>]
	sbgen calls [-g <grammar>] <file>...
	sbgen repl [-g <grammar>]

Grammar is one of callback, regex, lex, peg, or a test production like regex.char-class.
By default it is chosen by file extension: .cb, .re, .lex, .peg.

Global flags --token-mode, --log-level, --log-format, --context and --schema-file
may also be set in a YAML file (--config) or in SBGEN_* environment variables.
*/
package main

import (
	"os"
)

func main() {
	if e := rootCommand.Execute(); e != nil {
		os.Exit(2)
	}
}
