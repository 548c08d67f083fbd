package nargs

import (
	"os"

	"github.com/muir/commonerrors"
	"github.com/pkg/errors"
)

type envTagData struct {
	Variable string `pt:"0"`
}

// applyEnv overrides the value of a bound Parameter from its
// environment variable, if that is set.
func (param *Parameter) applyEnv() error {
	if param.env == "" {
		return nil
	}
	value, ok := os.LookupEnv(param.env)
	if !ok {
		return nil
	}
	err := param.value.Convert(value)
	if err != nil {
		return commonerrors.ConfigurationError(errors.Wrapf(err, "environment variable %s for flag %s", param.env, param.long))
	}
	return nil
}
