package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr to err so errors.Is matches either one. The mark
// participates in the unwrap chain but never appears in the message.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &markedError{cause: err, mark: markErr}
}

type markedError struct {
	cause error
	mark  error
}

func (e *markedError) Error() string { return e.cause.Error() }

func (e *markedError) Unwrap() []error { return []error{e.cause, e.mark} }

func (e *markedError) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, fmt.FormatString(s, verb), e.cause)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
