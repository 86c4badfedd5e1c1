package main

import (
	"os"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type callsParams struct {
	grammar string
}

var configuredCallsParams callsParams

var callsCommand = &cobra.Command{
	Use:   "calls <file> [<file> [...]]",
	Short: "List callback function calls",
	Long: `Parse definition files and list called callback functions with their arities.

Functions called with different numbers of arguments are marked.
Files that fail to parse are reported and skipped, the exit code is 1 then.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, ok := commandSession(cmd)
		if !ok {
			os.Exit(2)
		}
		os.Exit(listCalls(s, &configuredCallsParams, args))
	},
}

func init() {
	callsCommand.Flags().StringVarP(&configuredCallsParams.grammar, "grammar", "g", "", "grammar entry, default is chosen by file extension")
	rootCommand.AddCommand(callsCommand)
}

func listCalls(s *session, params *callsParams, paths []string) int {
	f, e := s.cfg.Frontend(s.log)
	if e != nil {
		return s.report(e)
	}

	code := 0
	for _, path := range paths {
		entry, e := fileEntry(params.grammar, path)
		var src []byte
		if e == nil {
			src, e = os.ReadFile(path)
		}
		if e == nil {
			_, e = f.Parse(entry, path, string(src))
		}
		if e != nil {
			code = s.report(e)
		}
	}

	calls := f.Calls()
	conflicts := calls.Conflicts()
	table := tablewriter.NewWriter(s.stdout)
	table.SetHeader([]string{"Function", "Arity", "Conflict"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, site := range calls.Entries() {
		mark := ""
		if slices.Contains(conflicts, site.Name) {
			mark = "*"
		}
		table.Append([]string{site.Name, strconv.Itoa(site.Arity), mark})
	}
	table.Render()
	return code
}
