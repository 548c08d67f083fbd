package nargs

import (
	"strings"
)

// Style selects the prefix grammar that marks the start of a flag.
type Style uint8

const (
	// Unix: long flags begin with "--", short flags with "-"
	Unix Style = iota
	// DOS: both long and short flags begin with "/"
	DOS
	// Compound: long flags begin with "//", short flags with "/"
	Compound
)

func (s Style) String() string {
	switch s {
	case Unix:
		return "unix"
	case DOS:
		return "dos"
	case Compound:
		return "compound"
	default:
		return "invalid"
	}
}

func (s Style) valid() bool { return s <= Compound }

// Form is how a token was classified by a Style.
type Form int

const (
	NotFlag Form = iota
	LongForm
	ShortForm
	// EitherForm is used by DOS where one prefix serves both
	EitherForm
)

// LongPrefix is the prefix for long flags in this style.
func (s Style) LongPrefix() string {
	switch s {
	case DOS:
		return "/"
	case Compound:
		return "//"
	default:
		return "--"
	}
}

// ShortPrefix is the prefix for short flags in this style.
func (s Style) ShortPrefix() string {
	switch s {
	case DOS, Compound:
		return "/"
	default:
		return "-"
	}
}

// Classify looks only at the prefix of token.  It returns the form and
// whatever follows the prefix.  A prefix with nothing after it is not a
// flag.
func (s Style) Classify(token string) (Form, string) {
	var form Form
	var rest string
	switch s {
	case Unix, Compound:
		long := s.LongPrefix()
		short := s.ShortPrefix()
		switch {
		case strings.HasPrefix(token, long):
			form, rest = LongForm, token[len(long):]
		case strings.HasPrefix(token, short):
			form, rest = ShortForm, token[len(short):]
		default:
			return NotFlag, ""
		}
	case DOS:
		if !strings.HasPrefix(token, "/") {
			return NotFlag, ""
		}
		form, rest = EitherForm, token[1:]
	default:
		return NotFlag, ""
	}
	if rest == "" {
		return NotFlag, ""
	}
	return form, rest
}

// opensFlag is true if token would be classified as any kind of flag
func (s Style) opensFlag(token string) bool {
	form, _ := s.Classify(token)
	return form != NotFlag
}

// stripPrefix removes any flag prefix so that names can be registered
// as "--num-jobs", "/num-jobs", or "num-jobs" interchangeably.
func stripPrefix(name string) string {
	return strings.TrimLeft(name, "-/")
}
