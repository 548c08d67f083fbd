package nargs

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrorKind classifies the problems found while resolving tokens.
// An ErrorKind is itself an error so that
//
//	errors.Is(err, nargs.DuplicateFlag)
//
// reports whether any error accumulated by Parse was of that kind.
type ErrorKind int

const (
	_ ErrorKind = iota
	// UnknownFlag: the flag name is not registered
	UnknownFlag
	// DuplicateFlag: the flag was given more than once in one pass
	DuplicateFlag
	// MissingValue: the flag needs a value and none was supplied
	MissingValue
	// ConversionFailure: the value does not parse as the flag's kind
	ConversionFailure
	// MalformedToken: the token is not a flag in the active style
	MalformedToken
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownFlag:
		return "unknown flag"
	case DuplicateFlag:
		return "duplicate flag"
	case MissingValue:
		return "missing value"
	case ConversionFailure:
		return "conversion failure"
	case MalformedToken:
		return "malformed token"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) Error() string { return k.String() }

// ParseError describes one problem with one token.  Index is the position
// of the offending token in the sequence given to TakeArgs and Token is
// that token.  Flag is the flag as it was written (prefix included) when
// the token got far enough to have one.  Value is the text that failed
// conversion.
type ParseError struct {
	Kind  ErrorKind
	Index int
	Token string
	Flag  string
	Value string
	Cause error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnknownFlag:
		return fmt.Sprintf("flag %s not defined", e.Flag)
	case DuplicateFlag:
		return fmt.Sprintf("flag %s given more than once", e.Flag)
	case MissingValue:
		return fmt.Sprintf("flag %s expects a value", e.Flag)
	case ConversionFailure:
		return fmt.Sprintf("invalid value %q for flag %s: %s", e.Value, e.Flag, errors.Cause(e.Cause))
	case MalformedToken:
		if e.Cause != nil {
			return fmt.Sprintf("malformed argument %q: %s", e.Token, e.Cause)
		}
		return fmt.Sprintf("unexpected argument %q", e.Token)
	default:
		return e.Kind.String()
	}
}

func (e *ParseError) Unwrap() error { return e.Cause }

func (e *ParseError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// Errors is the aggregate returned by Parse when anything went wrong.
// It holds every problem found, in token order.
type Errors []*ParseError

func (e Errors) Error() string {
	switch len(e) {
	case 0:
		return "no errors"
	case 1:
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, pe := range e {
		msgs[i] = pe.Error()
	}
	return fmt.Sprintf("%d errors: %s", len(e), strings.Join(msgs, "; "))
}

func (e Errors) Unwrap() []error {
	r := make([]error, len(e))
	for i, pe := range e {
		r[i] = pe
	}
	return r
}

// Kinds lists the kind of each error, in order.
func (e Errors) Kinds() []ErrorKind {
	r := make([]ErrorKind, len(e))
	for i, pe := range e {
		r[i] = pe.Kind
	}
	return r
}

func (e *Errors) add(kind ErrorKind, index int, token string, flag string, cause error) *ParseError {
	pe := &ParseError{
		Kind:  kind,
		Index: index,
		Token: token,
		Flag:  flag,
		Cause: cause,
	}
	*e = append(*e, pe)
	return pe
}

// ParseErrors extracts the accumulated token errors from an error
// returned by Parse.  It returns nil if err did not come from the
// resolution pass.
func ParseErrors(err error) Errors {
	var all Errors
	if errors.As(err, &all) {
		return all
	}
	return nil
}
