package scanner

import (
	"regexp"
)

// Rule is a production starting at the cursor.
// It returns a value and true on match, or false if the production does not start here.
// A non-nil error is fatal and aborts the whole parse.
type Rule[T any] func() (T, bool, error)

// Try runs r and restores the cursor if r does not match.
func Try[T any](s *Scanner, r Rule[T]) (T, bool, error) {
	pos := s.Pos()
	v, ok, e := r()
	if e == nil && !ok {
		s.Restore(pos)
	}
	return v, ok, e
}

// OneOf tries rules in order, the first match wins.
func OneOf[T any](s *Scanner, rules ...Rule[T]) (T, bool, error) {
	for _, r := range rules {
		v, ok, e := Try(s, r)
		if e != nil || ok {
			return v, ok, e
		}
	}

	var zero T
	return zero, false, nil
}

// Repeat calls step until it does not match.
// An iteration that matches but consumes nothing yields ZeroProgressError.
func Repeat(s *Scanner, step func() (bool, error)) error {
	for {
		pos := s.Pos()
		ok, e := step()
		if e != nil {
			return e
		}

		if !ok {
			s.Restore(pos)
			return nil
		}

		if s.Pos() == pos {
			return zeroProgressError(s)
		}
	}
}

// Many collects values of r until it does not match, see Repeat.
func Many[T any](s *Scanner, r Rule[T]) ([]T, error) {
	var result []T
	e := Repeat(s, func() (bool, error) {
		v, ok, e := r()
		if ok && e == nil {
			result = append(result, v)
		}
		return ok, e
	})
	if e != nil {
		return nil, e
	}

	return result, nil
}

// Match returns a Rule probing re.
func (s *Scanner) Match(re *regexp.Regexp) Rule[string] {
	return func() (string, bool, error) {
		text, ok := s.Probe(re)
		return text, ok, nil
	}
}
