package nargs

import (
	"github.com/muir/commonerrors"
	"github.com/pkg/errors"
)

// Parameter is one registered flag: its names, description, and value.
// Names are stored without prefix.
type Parameter struct {
	long  string
	short string
	desc  string
	env   string // set by Bind
	value Value
}

func (param *Parameter) Long() string        { return param.long }
func (param *Parameter) Short() string       { return param.short }
func (param *Parameter) Description() string { return param.desc }
func (param *Parameter) Value() Value        { return param.value }

// ArgOpt is an optional argument for Arg and ArgVar
type ArgOpt[T Scalar] func(*argSettings[T])

type argSettings[T Scalar] struct {
	def    T
	hasDef bool
}

// Default sets the value a flag has before and without resolution.
func Default[T Scalar](v T) ArgOpt[T] {
	return func(s *argSettings[T]) {
		s.def = v
		s.hasDef = true
	}
}

// Arg registers a flag and returns a pointer to its value.  The value
// starts out as the Default, or the zero value of T.
//
// Names may be given with or without their prefix: "--num-jobs" and
// "num-jobs" are the same.  Both names are required and must not collide
// with earlier registrations.  Mistakes are recorded and returned by Parse.
func Arg[T Scalar](p *Parser, long, short, desc string, opts ...ArgOpt[T]) *T {
	ptr := new(T)
	ArgVar(p, ptr, long, short, desc, opts...)
	return ptr
}

// ArgVar is like Arg but stores into ptr.  Without a Default,
// the current value of *ptr is the default.
func ArgVar[T Scalar](p *Parser, ptr *T, long, short, desc string, opts ...ArgOpt[T]) {
	if ptr == nil {
		p.delay(commonerrors.ProgrammerError(errors.Errorf("nil pointer registered for flag %s", long)))
		return
	}
	var settings argSettings[T]
	for _, f := range opts {
		f(&settings)
	}
	v := &value[T]{
		ptr: ptr,
		def: *ptr,
	}
	if settings.hasDef {
		v.def = settings.def
	}
	v.reset()
	_, _ = p.register(long, short, desc, v)
}

func (p *Parser) register(long, short, desc string, v Value) (*Parameter, error) {
	param := &Parameter{
		long:  stripPrefix(long),
		short: stripPrefix(short),
		desc:  desc,
		value: v,
	}
	err := p.checkNames(long, short, param)
	if err != nil {
		p.delay(err)
		return nil, err
	}
	p.debugf("register --%s -%s %s", param.long, param.short, v.Kind())
	p.params = append(p.params, param)
	p.longFlags[param.long] = param
	p.shortFlags[param.short] = param
	return param, nil
}

func (p *Parser) checkNames(long, short string, param *Parameter) error {
	switch {
	case param.long == "":
		return commonerrors.ProgrammerError(errors.Errorf("long flag name %q is empty", long))
	case param.short == "":
		return commonerrors.ProgrammerError(errors.Errorf("short flag name %q for %s is empty", short, long))
	}
	if existing, ok := p.longFlags[param.long]; ok {
		return commonerrors.ProgrammerError(errors.Errorf("flag %s already registered (%s)", param.long, existing.desc))
	}
	if existing, ok := p.shortFlags[param.short]; ok {
		return commonerrors.ProgrammerError(errors.Errorf("short flag %s for %s already used by %s",
			param.short, param.long, existing.long))
	}
	// DOS looks up both namespaces with the same prefix
	if existing, ok := p.shortFlags[param.long]; ok {
		return commonerrors.ProgrammerError(errors.Errorf("flag %s is already the short name of %s",
			param.long, existing.long))
	}
	if existing, ok := p.longFlags[param.short]; ok {
		return commonerrors.ProgrammerError(errors.Errorf("short flag %s for %s is already the name of %s",
			param.short, param.long, existing.long))
	}
	return nil
}

func (p *Parser) delay(err error) {
	if p.delayedErr == nil {
		p.delayedErr = err
	}
}
