// Package logging configures logrus loggers used by the front end and sbgen.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// GetLevel converts a level name to logrus level, empty name means info.
func GetLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel, nil
	case "", "info":
		return logrus.InfoLevel, nil
	case "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.DebugLevel, fmt.Errorf("invalid log level: %v", level)
	}
}

// GetFormatter returns formatter for "text", "json", or "json-pretty" format.
func GetFormatter(format string) (logrus.Formatter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return &prettyFormatter{}, nil
	case "json":
		return &logrus.JSONFormatter{}, nil
	case "json-pretty":
		return &logrus.JSONFormatter{PrettyPrint: true}, nil
	default:
		return nil, fmt.Errorf("invalid log format: %v", format)
	}
}

// New creates a logger writing to out.
func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	lvl, e := GetLevel(level)
	if e != nil {
		return nil, e
	}

	f, e := GetFormatter(format)
	if e != nil {
		return nil, e
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(f)
	return l, nil
}

// Discard returns a logger dropping all entries.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// prettyFormatter prints "[LEVEL] message" followed by indented fields sorted by name.
type prettyFormatter struct{}

func (p *prettyFormatter) Format(e *logrus.Entry) ([]byte, error) {
	b := new(bytes.Buffer)
	fmt.Fprintf(b, "[%s] %s\n", strings.ToUpper(e.Level.String()), e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		val := fmt.Sprint(e.Data[k])
		if strings.Contains(val, "\n") {
			val = "|\n      " + strings.ReplaceAll(val, "\n", "\n      ")
		}
		fmt.Fprintf(b, "  %s = %s\n", k, val)
	}
	return b.Bytes(), nil
}
