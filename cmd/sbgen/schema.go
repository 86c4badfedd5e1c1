package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava12/spellbreak/schema"
)

type schemaParams struct {
	check string
}

var configuredSchemaParams schemaParams

var schemaCommand = &cobra.Command{
	Use:   "schema",
	Short: "Print or verify the node schema",
	Long: `Print the node schema of all grammars as a YAML snapshot.

With --check (or the schema_file setting) the schema is verified against a
snapshot instead, differences are printed and the exit code is 1.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		s, ok := commandSession(cmd)
		if !ok {
			os.Exit(2)
		}
		os.Exit(dumpSchema(s, &configuredSchemaParams))
	},
}

func init() {
	schemaCommand.Flags().StringVar(&configuredSchemaParams.check, "check", "", "snapshot file to verify the schema against")
	rootCommand.AddCommand(schemaCommand)
}

func dumpSchema(s *session, params *schemaParams) int {
	f, e := s.cfg.Frontend(s.log)
	if e != nil {
		return s.report(e)
	}
	r := f.Registry()

	ref := params.check
	if ref == "" {
		ref = s.cfg.SchemaFile
	}
	if ref == "" {
		fmt.Fprintf(s.stdout, "# fingerprint: %016x\n", r.Fingerprint())
		if e = r.WriteYAML(s.stdout); e != nil {
			return s.report(e)
		}
		return 0
	}

	file, e := os.Open(ref)
	if e != nil {
		return s.report(e)
	}
	defer file.Close()

	snapshot, e := schema.ReadYAML(file)
	if e == nil {
		e = r.Verify(snapshot)
	}
	if e != nil {
		return s.report(e)
	}

	fmt.Fprintf(s.stdout, "schema matches %s (%d kinds, fingerprint %016x)\n", ref, r.Len(), r.Fingerprint())
	return 0
}
