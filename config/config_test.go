package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/ava12/spellbreak/emit"
	"github.com/ava12/spellbreak/grammar"
	. "github.com/ava12/spellbreak/internal/test"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	ExpectNoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(FlagName(TokenModeKey), "tagged", "")
	flags.String(FlagName(LogLevelKey), "info", "")
	flags.String(FlagName(ContextKey), "", "")
	ExpectNoError(t, flags.Parse(args))
	return flags
}

func TestDefaults(t *testing.T) {
	c, e := Load("", nil)
	ExpectNoError(t, e)
	ExpectEqual(t, Default(), *c)
}

func TestLayers(t *testing.T) {
	file := writeFile(t, "sbgen.yaml", "token_mode: bare\nlog_level: debug\ncontext: FromFile\nschema_file: ref.yaml\n")

	c, e := Load(file, nil)
	ExpectNoError(t, e)
	expected := Config{TokenMode: "bare", LogLevel: "debug", LogFormat: "text", SchemaFile: "ref.yaml", Context: "FromFile"}
	ExpectEqual(t, expected, *c)

	t.Setenv("SBGEN_CONTEXT", "FromEnv")
	t.Setenv("SBGEN_LOG_FORMAT", "json")
	c, e = Load(file, testFlags(t))
	ExpectNoError(t, e)
	ExpectString(t, "FromEnv", c.Context)
	ExpectString(t, "json", c.LogFormat)
	ExpectString(t, "bare", c.TokenMode)

	c, e = Load(file, testFlags(t, "--context", "FromFlag", "--token-mode=tagged"))
	ExpectNoError(t, e)
	ExpectString(t, "FromFlag", c.Context)
	ExpectString(t, "tagged", c.TokenMode)
	ExpectString(t, "debug", c.LogLevel)
}

func TestInvalidSettings(t *testing.T) {
	_, e := Load(writeFile(t, "bad.yaml", "token_mode: fancy\n"), nil)
	ExpectErrorCode(t, emit.UnknownTokenModeError, e)

	t.Setenv("SBGEN_LOG_LEVEL", "loud")
	_, e = Load("", nil)
	Assert(t, e != nil, "expecting log level error")
}

func TestMissingFile(t *testing.T) {
	_, e := Load(filepath.Join(t.TempDir(), "none.yaml"), nil)
	Assert(t, e != nil, "expecting error")
}

func TestFrontend(t *testing.T) {
	c := Default()
	c.TokenMode = "bare"
	c.Context = "Words"
	log, e := c.Logger(os.Stderr)
	ExpectNoError(t, e)

	f, e := c.Frontend(log)
	ExpectNoError(t, e)
	ExpectString(t, "Words", f.ContextName("x.lex"))
	text, e := f.Compile(grammar.CallbackExpr, "", "x")
	ExpectNoError(t, e)
	ExpectString(t, `NODE(VarRef, 1, STR("x"))`, text)
}
