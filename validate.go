package nargs

import (
	"github.com/muir/commonerrors"
	"github.com/pkg/errors"
)

// Validate is a subset of the Validate provided by
// https://github.com/go-playground/validator, allowing
// other implementations to be provided if desired
type Validate interface {
	Struct(s interface{}) error
}

// WithValidate checks every model given to Bind after each Parse
// that found no token errors.
//
//	p := nargs.New(nargs.WithValidate(validator.New()))
func WithValidate(v Validate) ParserOpt {
	return func(p *Parser) error {
		p.validator = v
		return nil
	}
}

func (p *Parser) validate() error {
	if p.validator == nil {
		return nil
	}
	for _, model := range p.models {
		err := p.validator.Struct(model)
		if err != nil {
			return commonerrors.UsageError(errors.Wrapf(err, "validate %T", model))
		}
	}
	return nil
}
