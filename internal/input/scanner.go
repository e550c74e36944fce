// Package input reads whitespace-separated integers from a stream.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrInput matches every InputError via errors.Is.
var ErrInput = errors.New("input error")

// InputError reports a missing or malformed integer.
type InputError struct {
	Field string // what was being read, e.g. "count" or "a[2]"
	Token string // raw token, empty when input ended
	Err   error
}

func (e *InputError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("reading %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("reading %s: invalid integer %q: %v", e.Field, e.Token, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrInput) match any InputError.
func (e *InputError) Is(target error) bool { return target == ErrInput }

// Scanner yields one integer per whitespace-separated token.
type Scanner struct {
	sc *bufio.Scanner
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Scanner{sc: sc}
}

// Int reads the next token as a base-10 int. field names the value for error
// messages.
func (s *Scanner) Int(field string) (int, error) {
	if !s.sc.Scan() {
		err := s.sc.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return 0, &InputError{Field: field, Err: err}
	}

	tok := s.sc.Text()
	v, err := strconv.Atoi(tok)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &InputError{Field: field, Token: tok, Err: err}
	}
	return v, nil
}
