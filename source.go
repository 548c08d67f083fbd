package nargs

import (
	"github.com/muir/commonerrors"
	"github.com/muir/nflex"
	"github.com/pkg/errors"
)

type loader interface {
	load(source nflex.Source, key string) error
}

// ConfigFile adds a yaml or json file of defaults.  Top-level keys
// are long flag names:
//
//	num-jobs: 12
//	input: data.txt
//
// If keyPath is given, the defaults are found under it instead of at
// the top level.  When more than one file is added, later files win.
// Values from files replace defaults each time Parse runs; the
// environment and the tokens take precedence over them.
func (p *Parser) ConfigFile(path string, keyPath ...string) error {
	var opts []nflex.UnmarshalFileArg
	if p.fsys != nil {
		opts = append(opts, nflex.WithFS(p.fsys))
	}
	source, err := nflex.UnmarshalFile(path, opts...)
	if err != nil {
		return commonerrors.ConfigurationError(err)
	}
	if len(keyPath) != 0 {
		source = source.Recurse(keyPath...)
		if source == nil {
			p.debugf("config file %s has nothing at %v", path, keyPath)
			return nil
		}
	}
	p.debugf("adding config file %s", path)
	p.source = nflex.CombineSources(source, p.source)
	return nil
}

func (v *value[T]) load(source nflex.Source, key string) error {
	var err error
	switch ptr := any(v.ptr).(type) {
	case *int64:
		var i int64
		i, err = source.GetInt(key)
		if err == nil {
			*ptr = i
		}
	case *bool:
		var b bool
		b, err = source.GetBool(key)
		if err == nil {
			*ptr = b
		}
	case *float64:
		var f float64
		f, err = source.GetFloat(key)
		if err == nil {
			*ptr = f
		}
	case *string:
		var s string
		s, err = source.GetString(key)
		if err == nil {
			*ptr = s
		}
	default:
		return commonerrors.LibraryError(errors.Errorf("internal error: no loader for %T", v.ptr))
	}
	return err
}

// prepare establishes the state each Parameter has before tokens are
// resolved: default, then config file, then environment.
func (p *Parser) prepare() error {
	for _, param := range p.params {
		param.value.reset()
		if p.source != nil && p.source.Exists(param.long) {
			err := param.value.load(p.source, param.long)
			if err != nil {
				return commonerrors.ConfigurationError(errors.Wrapf(err, "config file value for %s", param.long))
			}
			p.debugf("flag --%s = %s from config file", param.long, param.value)
		}
		err := param.applyEnv()
		if err != nil {
			return err
		}
	}
	return nil
}
