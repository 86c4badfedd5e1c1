// Package config loads sbgen settings.
//
// Settings are layered in increasing priority: built-in defaults, an optional
// YAML file, SBGEN_ environment variables (e.g. SBGEN_TOKEN_MODE) and command
// line flags.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava12/spellbreak/emit"
	"github.com/ava12/spellbreak/internal/logging"
	"github.com/ava12/spellbreak/parser"
)

// EnvPrefix is the prefix of environment variables.
const EnvPrefix = "sbgen"

// Setting keys, flag names use "-" instead of "_".
const (
	TokenModeKey  = "token_mode"
	LogLevelKey   = "log_level"
	LogFormatKey  = "log_format"
	SchemaFileKey = "schema_file"
	ContextKey    = "context"
)

type Config struct {
	TokenMode  string `mapstructure:"token_mode"`
	LogLevel   string `mapstructure:"log_level"`
	LogFormat  string `mapstructure:"log_format"`
	SchemaFile string `mapstructure:"schema_file"`
	Context    string `mapstructure:"context"`
}

// Default returns built-in settings.
func Default() Config {
	return Config{
		TokenMode: emit.TokenTagged.String(),
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// FlagName converts a setting key to a flag name.
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// Load reads settings. file may be empty, flags may be nil.
// Only flags set on the command line override other layers.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault(TokenModeKey, def.TokenMode)
	v.SetDefault(LogLevelKey, def.LogLevel)
	v.SetDefault(LogFormatKey, def.LogFormat)
	v.SetDefault(SchemaFileKey, def.SchemaFile)
	v.SetDefault(ContextKey, def.Context)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if e := v.ReadInConfig(); e != nil {
			return nil, fmt.Errorf("cannot read config file %s: %w", file, e)
		}
	}

	if flags != nil {
		for _, key := range v.AllKeys() {
			if f := flags.Lookup(FlagName(key)); f != nil {
				if e := v.BindPFlag(key, f); e != nil {
					return nil, e
				}
			}
		}
	}

	c := &Config{}
	if e := v.Unmarshal(c); e != nil {
		return nil, fmt.Errorf("cannot decode config: %w", e)
	}
	if e := c.Validate(); e != nil {
		return nil, e
	}
	return c, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, e := emit.ParseTokenMode(c.TokenMode); e != nil {
		return e
	}
	if _, e := logging.GetLevel(c.LogLevel); e != nil {
		return e
	}
	if _, e := logging.GetFormatter(c.LogFormat); e != nil {
		return e
	}
	return nil
}

// Logger creates a logger writing to out.
func (c *Config) Logger(out io.Writer) (*logrus.Logger, error) {
	return logging.New(c.LogLevel, c.LogFormat, out)
}

// Frontend creates a front end with configured token mode and context.
func (c *Config) Frontend(log logrus.FieldLogger) (*parser.Frontend, error) {
	mode, e := emit.ParseTokenMode(c.TokenMode)
	if e != nil {
		return nil, e
	}

	opts := []parser.Option{parser.WithTokenMode(mode), parser.WithLogger(log)}
	if c.Context != "" {
		opts = append(opts, parser.WithContext(c.Context))
	}
	return parser.New(opts...)
}
