package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

type emitParams struct {
	grammar string
	output  string
	expect  string
}

var configuredEmitParams emitParams

var emitCommand = &cobra.Command{
	Use:   "emit <file>",
	Short: "Compile a definition file",
	Long: `Compile a definition file and print its wire form.

With --expect the result is compared with a golden file instead,
differences are printed and the exit code is 1.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, ok := commandSession(cmd)
		if !ok {
			os.Exit(2)
		}
		os.Exit(emitFile(s, &configuredEmitParams, args[0]))
	},
}

func init() {
	flags := emitCommand.Flags()
	flags.StringVarP(&configuredEmitParams.grammar, "grammar", "g", "", "grammar entry, default is chosen by file extension")
	flags.StringVarP(&configuredEmitParams.output, "output", "o", "", "output file, default is stdout")
	flags.StringVar(&configuredEmitParams.expect, "expect", "", "golden file to compare the result with")
	rootCommand.AddCommand(emitCommand)
}

func emitFile(s *session, params *emitParams, path string) int {
	entry, e := fileEntry(params.grammar, path)
	if e != nil {
		return s.report(e)
	}

	src, e := os.ReadFile(path)
	if e != nil {
		return s.report(e)
	}

	f, e := s.cfg.Frontend(s.log)
	if e != nil {
		return s.report(e)
	}

	out, e := f.Compile(entry, path, string(src))
	if e != nil {
		return s.report(e)
	}
	out += "\n"

	if params.expect != "" {
		return compareGolden(s, params.expect, out)
	}

	if params.output == "" {
		_, e = fmt.Fprint(s.stdout, out)
	} else {
		e = os.WriteFile(params.output, []byte(out), 0o666)
	}
	if e != nil {
		return s.report(e)
	}
	return 0
}

func compareGolden(s *session, golden, out string) int {
	expected, e := os.ReadFile(golden)
	if e != nil {
		return s.report(e)
	}

	want := strings.TrimRight(string(expected), "\n") + "\n"
	if want == out {
		return 0
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want, out)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	fmt.Fprintf(s.stderr, "output differs from %s:\n", golden)
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(strings.TrimSuffix(d.Text, "\n"), "\n") {
			fmt.Fprint(s.stderr, prefix, strings.TrimSuffix(line, "\n"), "\n")
		}
	}
	return 1
}
