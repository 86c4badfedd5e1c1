package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava12/spellbreak/config"
	"github.com/ava12/spellbreak/grammar"
)

var rootCommand = &cobra.Command{
	Use:           "sbgen",
	Short:         "Spellbreak grammar front end",
	Long:          "Compile callback, regex, lexer and PEG definitions to the NODE/LIST/TOKEN wire format.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

var configFile string

func init() {
	def := config.Default()
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML config file")
	flags.String(config.FlagName(config.TokenModeKey), def.TokenMode, "token serialization: tagged or bare")
	flags.String(config.FlagName(config.LogLevelKey), def.LogLevel, "log level: debug, info, warn, error")
	flags.String(config.FlagName(config.LogFormatKey), def.LogFormat, "log format: text, json, json-pretty")
	flags.String(config.FlagName(config.SchemaFileKey), def.SchemaFile, "reference schema snapshot (YAML)")
	flags.StringP(config.FlagName(config.ContextKey), "c", def.Context, "context name of lexer and PEG definitions")
}

// session is the state shared by a command run.
type session struct {
	cfg    *config.Config
	log    *logrus.Logger
	stdout io.Writer
	stderr io.Writer
}

func newSession(cfg *config.Config, stdout, stderr io.Writer) (*session, error) {
	log, e := cfg.Logger(stderr)
	if e != nil {
		return nil, e
	}
	return &session{cfg, log, stdout, stderr}, nil
}

// commandSession loads configuration for a command, reporting failures to stderr.
func commandSession(cmd *cobra.Command) (*session, bool) {
	e := checkEnvironmentVariables(cmd)
	var cfg *config.Config
	if e == nil {
		cfg, e = config.Load(configFile, cmd.Flags())
	}
	var s *session
	if e == nil {
		s, e = newSession(cfg, os.Stdout, os.Stderr)
	}
	if e != nil {
		fmt.Fprintln(os.Stderr, e)
		return nil, false
	}
	return s, true
}

// report prints an error, returns exit code.
func (s *session) report(e error) int {
	fmt.Fprintln(s.stderr, e)
	return 1
}

var extensionEntries = map[string]grammar.Entry{
	".cb":  grammar.Callback,
	".re":  grammar.Regex,
	".lex": grammar.Lex,
	".peg": grammar.Peg,
}

// fileEntry returns the named entry or the entry matching file extension.
func fileEntry(name, path string) (grammar.Entry, error) {
	if name != "" {
		return grammar.Lookup(name)
	}

	entry, found := extensionEntries[strings.ToLower(filepath.Ext(path))]
	if !found {
		return -1, fmt.Errorf("cannot detect grammar of %s, use -g flag", path)
	}
	return entry, nil
}

const envErrorPrefix = "error mapping environment variables to command flags"

// checkEnvironmentVariables sets unchanged local flags of cmd from SBGEN_<COMMAND>_<FLAG> variables.
func checkEnvironmentVariables(cmd *cobra.Command) error {
	var errs []string
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix(config.EnvPrefix + "_" + cmd.Name())
	cmd.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
		name := strings.ReplaceAll(f.Name, "-", "_")
		if !f.Changed && v.IsSet(name) {
			if e := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(name))); e != nil {
				errs = append(errs, e.Error())
			}
		}
	})

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %s", envErrorPrefix, strings.Join(errs, "; "))
}
