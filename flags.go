package nargs

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/AlekSi/pointer"
	"github.com/muir/commonerrors"
	"github.com/muir/nflex"
	"github.com/muir/nject"
	"github.com/pkg/errors"
)

// General calling order....
//
// 1. New()
// 2. Arg(), ArgVar(), Bind() -- registration
// 3. ConfigFile() -- optional
// 4. TakeArgs() or TakeOSArgs()
// 5. Parse() -- may be repeated
// 6. Help() or Usage() at any time

// Parser owns a set of Parameters and the tokens to resolve against them.
// Flags are registered with Arg or ArgVar (functions rather than methods
// because Go methods cannot have type parameters), or with Bind for struct
// tags.
//
//	p := nargs.New(nargs.WithStyle(nargs.Unix))
//	numJobs := nargs.Arg(p, "--num-jobs", "-j", "number of jobs", nargs.Default[int64](6))
//	input := nargs.Arg[string](p, "--input", "-i", "the input file")
//	err := p.TakeOSArgs().Parse(os.Stderr)
//
// Pointers returned by Arg remain valid for the life of the Parser.
// A Parser is not safe for concurrent use.
type Parser struct {
	style       Style
	printErrors bool
	colorize    *bool // nil: decide based on the terminal
	terminator  bool
	negation    bool
	program     string
	fsys        fs.FS
	validator   Validate
	onSuccess   func(*Parser, []string) error

	params     []*Parameter
	longFlags  map[string]*Parameter
	shortFlags map[string]*Parameter
	models     []interface{}
	source     nflex.Source
	args       []string
	remainder  []string
	delayedErr error
}

// ParserOpt is a functional argument for New
type ParserOpt func(*Parser) error

// New creates a Parser.  Errors from options are reported by Parse.
func New(opts ...ParserOpt) *Parser {
	p := &Parser{
		style:      Unix,
		longFlags:  make(map[string]*Parameter),
		shortFlags: make(map[string]*Parameter),
	}
	for _, f := range opts {
		err := f(p)
		if err != nil && p.delayedErr == nil {
			p.delayedErr = err
		}
	}
	return p
}

// WithStyle picks the prefix grammar.  The default is Unix.
func WithStyle(s Style) ParserOpt {
	return func(p *Parser) error {
		if !s.valid() {
			return commonerrors.ProgrammerError(errors.Errorf("invalid flag style %d", s))
		}
		p.style = s
		return nil
	}
}

// PrintErrors causes Parse to also write each problem it finds to
// its output.
func PrintErrors(print bool) ParserOpt {
	return func(p *Parser) error {
		p.printErrors = print
		return nil
	}
}

// WithColor forces colored diagnostics on or off.  Without it,
// color is used only when the writer given to Parse is a terminal
// and NO_COLOR is not set.
func WithColor(enabled bool) ParserOpt {
	return func(p *Parser) error {
		p.colorize = pointer.ToBool(enabled)
		return nil
	}
}

// WithTerminator makes a bare "--" end flag processing.  Whatever
// follows is available from Remaining().
func WithTerminator() ParserOpt {
	return func(p *Parser) error {
		p.terminator = true
		return nil
	}
}

// WithNegation allows boolean long flags to be set false with a
// "no-" prefix: --no-verbose.  Only meaningful for the Unix style.
func WithNegation() ParserOpt {
	return func(p *Parser) error {
		p.negation = true
		return nil
	}
}

// WithProgramName overrides the program name shown by Usage
func WithProgramName(name string) ParserOpt {
	return func(p *Parser) error {
		p.program = name
		return nil
	}
}

// WithFS sets the filesystem that ConfigFile reads from
func WithFS(fsys fs.FS) ParserOpt {
	return func(p *Parser) error {
		p.fsys = fsys
		return nil
	}
}

// OnSuccess is invoked at the end of each Parse that found no problems.
// The chain is an nject chain: it can ask for *Parser and []string (the
// remaining arguments) and may return error.
func OnSuccess(chain ...interface{}) ParserOpt {
	return func(p *Parser) error {
		return nject.Sequence("default-error-responder",
			nject.Provide("default-error", func() nject.TerminalError {
				return nil
			})).Append("on-success", chain...).Bind(&p.onSuccess, nil)
	}
}

// TakeArgs hands the tokens to the Parser.  The Parser owns the
// slice afterwards.
func (p *Parser) TakeArgs(args []string) *Parser {
	p.args = args
	return p
}

// TakeOSArgs takes os.Args, skipping the program name.
func (p *Parser) TakeOSArgs() *Parser {
	if len(os.Args) > 1 {
		return p.TakeArgs(append([]string(nil), os.Args[1:]...))
	}
	return p.TakeArgs(nil)
}

// Style returns the active flag style
func (p *Parser) Style() Style { return p.style }

// Err returns the first registration or option error, if any.
func (p *Parser) Err() error { return p.delayedErr }

// Remaining returns the tokens after "--" when WithTerminator is used.
func (p *Parser) Remaining() []string { return p.remainder }

// Parameters returns the registered Parameters in registration order.
func (p *Parser) Parameters() []*Parameter {
	r := make([]*Parameter, len(p.params))
	copy(r, p.params)
	return r
}

// Lookup finds a Parameter by long or short name, with or without prefix.
func (p *Parser) Lookup(name string) *Parameter {
	name = stripPrefix(name)
	if param, ok := p.longFlags[name]; ok {
		return param
	}
	return p.shortFlags[name]
}

func (p *Parser) programName() string {
	if p.program != "" {
		return p.program
	}
	if len(os.Args) > 0 {
		return filepath.Base(os.Args[0])
	}
	return "program"
}
