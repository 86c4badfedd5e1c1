package ast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Wire forms of literal values.
const (
	ValTrue    = "VAL_TRUE"
	ValFalse   = "VAL_FALSE"
	ValNil     = "VAL_NIL"
	valIntOpen = "VAL_FROM_INT("
	valStrOpen = "STR("
	valClose   = ")"
)

// Lit is a literal value in its final wire form.
type Lit struct {
	Code string
}

func (l Lit) String() string {
	return l.Code
}

// Decode returns Go value of the literal, see DecodeLiteral.
func (l Lit) Decode() (any, error) {
	return DecodeLiteral(l.Code)
}

// IntLit encodes decimal integer text, the text is kept verbatim.
func IntLit(digits string) Lit {
	return Lit{valIntOpen + digits + valClose}
}

// BoolLit encodes a boolean.
func BoolLit(v bool) Lit {
	if v {
		return Lit{ValTrue}
	}
	return Lit{ValFalse}
}

// NilLit encodes nil.
func NilLit() Lit {
	return Lit{ValNil}
}

// StrLit encodes a string, quoting it.
func StrLit(text string) Lit {
	return Lit{EncodeStr(text)}
}

// QuotedStrLit wraps a double-quoted literal as is, escape sequences are left to the consumer.
func QuotedStrLit(quoted string) Lit {
	return Lit{valStrOpen + quoted + valClose}
}

// EncodeInt returns wire form of an integer.
func EncodeInt(v int64) string {
	return valIntOpen + strconv.FormatInt(v, 10) + valClose
}

// EncodeStr returns wire form of a string.
func EncodeStr(text string) string {
	return valStrOpen + strconv.Quote(text) + valClose
}

var errNotLiteral = errors.New("not a literal")

// DecodeLiteral decodes wire form of a literal.
// Returns int64 for VAL_FROM_INT, bool for VAL_TRUE and VAL_FALSE, nil for VAL_NIL, and string for STR.
// STR escape sequences are decoded, raw bytes between quotes are kept as is.
func DecodeLiteral(code string) (any, error) {
	switch code {
	case ValTrue:
		return true, nil
	case ValFalse:
		return false, nil
	case ValNil:
		return nil, nil
	}

	if inner, found := unwrap(code, valIntOpen); found {
		v, e := strconv.ParseInt(inner, 10, 64)
		if e != nil {
			return nil, fmt.Errorf("cannot decode %s: %w", code, e)
		}
		return v, nil
	}

	if inner, found := unwrap(code, valStrOpen); found {
		v, e := unquote(inner)
		if e != nil {
			return nil, fmt.Errorf("cannot decode %s: %w", code, e)
		}
		return v, nil
	}

	return nil, fmt.Errorf("cannot decode %q: %w", code, errNotLiteral)
}

// unquote decodes a double-quoted literal, raw control characters inside quotes are kept.
func unquote(quoted string) (string, error) {
	if len(quoted) < 2 || quoted[0] != '"' || quoted[len(quoted)-1] != '"' {
		return "", strconv.ErrSyntax
	}

	rest := quoted[1 : len(quoted)-1]
	var sb strings.Builder
	for rest != "" {
		r, multibyte, tail, e := strconv.UnquoteChar(rest, '"')
		if e != nil {
			return "", e
		}
		if r < utf8.RuneSelf || !multibyte {
			sb.WriteByte(byte(r))
		} else {
			sb.WriteRune(r)
		}
		rest = tail
	}
	return sb.String(), nil
}

func unwrap(code, open string) (string, bool) {
	if !strings.HasPrefix(code, open) || !strings.HasSuffix(code, valClose) {
		return "", false
	}
	return code[len(open) : len(code)-len(valClose)], true
}
