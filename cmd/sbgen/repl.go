package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/ava12/spellbreak/grammar"
	"github.com/ava12/spellbreak/parser"
)

type replParams struct {
	grammar string
}

var configuredReplParams = replParams{grammar: grammar.Callback.String()}

var replCommand = &cobra.Command{
	Use:   "repl",
	Short: "Compile fragments interactively",
	Long: `Read fragments line by line, print their wire form.

Commands:
  ::entry <name>  switch grammar entry
  ::calls         list recorded function calls
  ::quit          exit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		s, ok := commandSession(cmd)
		if !ok {
			os.Exit(2)
		}

		line := liner.NewLiner()
		line.SetCtrlCAborts(true)
		code := repl(s, &configuredReplParams, line)
		line.Close()
		os.Exit(code)
	},
}

func init() {
	replCommand.Flags().StringVarP(&configuredReplParams.grammar, "grammar", "g", configuredReplParams.grammar, "grammar entry")
	rootCommand.AddCommand(replCommand)
}

// lineReader is implemented by *liner.State.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

const replCommandPrefix = "::"

func repl(s *session, params *replParams, in lineReader) int {
	entry, e := grammar.Lookup(params.grammar)
	if e != nil {
		return s.report(e)
	}

	f, e := s.cfg.Frontend(s.log)
	if e != nil {
		return s.report(e)
	}

	for n := 1; ; n++ {
		input, e := in.Prompt(entry.String() + "> ")
		if errors.Is(e, liner.ErrPromptAborted) || errors.Is(e, io.EOF) {
			return 0
		}
		if e != nil {
			return s.report(e)
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		in.AppendHistory(input)

		if cmd, isCommand := strings.CutPrefix(input, replCommandPrefix); isCommand {
			var quit bool
			entry, quit = runReplCommand(s, f, entry, strings.Fields(cmd))
			if quit {
				return 0
			}
			continue
		}

		if g := entry.Grammar(); g == grammar.LexGrammar || g == grammar.PegGrammar {
			input += "\n"
		}
		out, e := f.Compile(entry, fmt.Sprintf("<input %d>", n), input)
		if e != nil {
			fmt.Fprintln(s.stdout, e)
			continue
		}
		fmt.Fprintln(s.stdout, out)
	}
}

func runReplCommand(s *session, f *parser.Frontend, entry grammar.Entry, words []string) (grammar.Entry, bool) {
	if len(words) == 0 {
		fmt.Fprintln(s.stdout, "expect command: entry, calls, quit")
		return entry, false
	}

	switch words[0] {
	case "quit":
		return entry, true

	case "calls":
		for _, site := range f.Calls().Entries() {
			fmt.Fprintf(s.stdout, "%s/%d\n", site.Name, site.Arity)
		}

	case "entry":
		if len(words) != 2 {
			fmt.Fprintln(s.stdout, "usage: ::entry <name>")
			break
		}
		next, e := grammar.Lookup(words[1])
		if e != nil {
			fmt.Fprintln(s.stdout, e)
			break
		}
		entry = next

	default:
		fmt.Fprintf(s.stdout, "unknown command %q\n", words[0])
	}
	return entry, false
}
