package nargs

import (
	"io"
	"strings"

	"github.com/muir/commonerrors"
	"github.com/pkg/errors"
)

var errNegatedValue = errors.New("a negated flag does not take a value")

// Parse resolves the tokens given to TakeArgs against the registered
// Parameters in one forward pass.  Every token is examined even after
// problems are found; all of them are returned together as Errors.  With
// PrintErrors(true) they are also written to w.
//
// Before scanning, each Parameter is put back to its default and then
// overlaid with ConfigFile and environment values, so Parse can be
// called more than once.
//
// Registration mistakes are returned before any token is examined.
// After a clean pass, bound models are validated (see WithValidate)
// and OnSuccess callbacks run.
func (p *Parser) Parse(w io.Writer) error {
	if p.delayedErr != nil {
		return p.delayedErr
	}
	p.debugf("beginning parse of %d tokens, style %s", len(p.args), p.style)
	err := p.prepare()
	if err != nil {
		return err
	}
	errs := p.resolve()
	if len(errs) != 0 {
		if p.printErrors {
			p.printDiagnostics(w, errs)
		}
		return errs
	}
	err = p.validate()
	if err != nil {
		return err
	}
	if p.onSuccess != nil {
		err := p.onSuccess(p, p.remainder)
		if err != nil {
			return commonerrors.UsageError(err)
		}
	}
	return nil
}

func (p *Parser) resolve() Errors {
	var errs Errors
	seen := make(map[*Parameter]int)
	p.remainder = nil

	for i := 0; i < len(p.args); i++ {
		token := p.args[i]
		if p.terminator && token == "--" {
			p.remainder = p.args[i+1:]
			p.debugf("at %d, found -- remaining %d tokens are positional", i, len(p.remainder))
			break
		}
		form, rest := p.style.Classify(token)
		if form == NotFlag {
			p.debugf("at %d, %q is not a flag", i, token)
			errs.add(MalformedToken, i, token, "", nil)
			continue
		}
		name, inline, hasInline := strings.Cut(rest, "=")
		prefix := token[:len(token)-len(rest)]
		flag := prefix + name
		if name == "" {
			errs.add(MalformedToken, i, token, "", errors.New("flag name is empty"))
			continue
		}
		param, negated := p.lookupForm(form, name)
		if param == nil {
			p.debugf("at %d, flag %s not defined", i, flag)
			errs.add(UnknownFlag, i, token, flag, nil)
			continue
		}

		flagIndex := i
		valueIndex := i
		var text string
		var missing bool
		switch {
		case hasInline && negated:
			errs.add(MalformedToken, i, token, flag, errNegatedValue)
			continue
		case hasInline:
			text = inline
		case negated:
			text = "false"
		case param.value.Kind() == BoolKind:
			text = "true"
		case i+1 < len(p.args) && !p.style.opensFlag(p.args[i+1]) && !(p.terminator && p.args[i+1] == "--"):
			i++
			valueIndex = i
			text = p.args[i]
		default:
			missing = true
		}

		if first, ok := seen[param]; ok {
			p.debugf("at %d, flag %s already given at %d", flagIndex, flag, first)
			errs.add(DuplicateFlag, flagIndex, token, flag, nil)
			continue
		}
		seen[param] = flagIndex
		if missing {
			errs.add(MissingValue, i, token, flag, nil)
			continue
		}
		err := param.value.Convert(text)
		if err != nil {
			p.debugf("at %d, flag %s cannot take %q: %s", valueIndex, flag, text, err)
			errs.add(ConversionFailure, valueIndex, p.args[valueIndex], flag, err).Value = text
			continue
		}
		p.debugf("at %d, flag %s = %s", valueIndex, flag, param.value)
	}
	return errs
}

// lookupForm finds the Parameter for name given how the token was
// classified.  The boolean is true when name matched through a "no-"
// negation.
func (p *Parser) lookupForm(form Form, name string) (*Parameter, bool) {
	switch form {
	case LongForm:
		if param, ok := p.longFlags[name]; ok {
			return param, false
		}
		if p.negation && p.style == Unix && strings.HasPrefix(name, "no-") {
			if param, ok := p.longFlags[name[3:]]; ok && param.value.Kind() == BoolKind {
				return param, true
			}
		}
	case ShortForm:
		if param, ok := p.shortFlags[name]; ok {
			return param, false
		}
	case EitherForm:
		if param, ok := p.longFlags[name]; ok {
			return param, false
		}
		if param, ok := p.shortFlags[name]; ok {
			return param, false
		}
	}
	return nil, false
}
