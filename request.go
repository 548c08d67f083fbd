package nargs

import (
	"reflect"

	"github.com/muir/commonerrors"
	"github.com/muir/reflectutils"
	"github.com/pkg/errors"
)

// Bind registers a flag for each field of model that has a "flag" tag.
// The field itself holds the value: there is nothing to copy out after
// Parse.
//
//	type MyArgs struct {
//		NumJobs int64  `flag:"num-jobs j" help:"number of jobs" default:"6"`
//		Input   string `flag:"input i" help:"the input file" env:"MY_INPUT"`
//		Verbose bool   `flag:"verbose v"`
//	}
//
// The flag tag lists the long and the short name separated by a space.
// Without a default tag, the field's current value is the default.  The
// env tag names an environment variable that, when set, overrides the
// default each time Parse runs.
//
// Only int64, bool, float64, and string fields may be flags.  Other types
// are a programmer error, reported here and again by Parse.
//
// Bound models are handed to the Validate provided with WithValidate
// after each clean Parse.
func (p *Parser) Bind(model interface{}) error {
	v := reflect.ValueOf(model)
	if !v.IsValid() || v.Type().Kind() != reflect.Ptr || v.IsNil() || v.Type().Elem().Kind() != reflect.Struct {
		err := commonerrors.ProgrammerError(errors.Errorf(
			"Bind requires a non-nil pointer to a struct, not %T", model))
		p.delay(err)
		return err
	}
	var walkErr error
	p.debugf("bind %T", model)
	reflectutils.WalkStructElements(v.Type().Elem(), func(f reflect.StructField) bool {
		if walkErr != nil {
			return false
		}
		tags := reflectutils.SplitTag(f.Tag).Set()
		tag := tags.Get("flag")
		if tag.Tag == "" {
			return true
		}
		p.debugf("bind walk %s %s %s", f.Name, f.Type, f.Tag)
		if f.PkgPath != "" {
			walkErr = commonerrors.ProgrammerError(errors.Errorf("field %s has a flag tag but is not exported", f.Name))
			return false
		}
		var ft flagTag
		err := tag.Fill(&ft)
		if err != nil {
			walkErr = commonerrors.ProgrammerError(errors.Wrap(err, f.Name))
			return false
		}
		long, short, err := splitNames(ft.Name)
		if err != nil {
			walkErr = commonerrors.ProgrammerError(errors.Wrap(err, f.Name))
			return false
		}
		fv := v.Elem().FieldByIndex(f.Index)
		if !fv.CanInterface() {
			walkErr = commonerrors.ProgrammerError(errors.Errorf("field %s has a flag tag but is inside an unexported field", f.Name))
			return false
		}
		param, err := bindField(p, f, fv, long, short, tags.Get("help").Value, tags.Get("default"))
		if err != nil {
			walkErr = err
			return false
		}
		if envTag := tags.Get("env"); envTag.Tag != "" {
			var et envTagData
			err := envTag.Fill(&et)
			if err != nil {
				walkErr = commonerrors.ProgrammerError(errors.Wrapf(err, "env tag on %s", f.Name))
				return false
			}
			param.env = et.Variable
		}
		return true
	})
	if walkErr != nil {
		p.delay(walkErr)
		return walkErr
	}
	p.models = append(p.models, model)
	return nil
}

type flagTag struct {
	Name []string `pt:"0,split=space"`
}

// splitNames takes the names from a flag tag: exactly one long
// (more than one character) and one short (one character).
func splitNames(names []string) (long string, short string, err error) {
	for _, n := range names {
		n = stripPrefix(n)
		switch len([]rune(n)) {
		case 0:
			continue
		case 1:
			if short != "" {
				return "", "", errors.Errorf("more than one short name: %s, %s", short, n)
			}
			short = n
		default:
			if long != "" {
				return "", "", errors.Errorf("more than one long name: %s, %s", long, n)
			}
			long = n
		}
	}
	if long == "" || short == "" {
		return "", "", errors.Errorf("flag tag needs a long and a short name, got %v", names)
	}
	return long, short, nil
}

func bindField(p *Parser, f reflect.StructField, fv reflect.Value, long, short, desc string, def reflectutils.Tag) (*Parameter, error) {
	switch ptr := fv.Addr().Interface().(type) {
	case *int64:
		return bindValue(p, ptr, long, short, desc, def)
	case *bool:
		return bindValue(p, ptr, long, short, desc, def)
	case *float64:
		return bindValue(p, ptr, long, short, desc, def)
	case *string:
		return bindValue(p, ptr, long, short, desc, def)
	default:
		return nil, commonerrors.ProgrammerError(errors.Errorf(
			"field %s is a %s: flags must be int64, bool, float64, or string", f.Name, f.Type))
	}
}

func bindValue[T Scalar](p *Parser, ptr *T, long, short, desc string, def reflectutils.Tag) (*Parameter, error) {
	v := &value[T]{
		ptr: ptr,
		def: *ptr,
	}
	if def.Tag != "" {
		d, err := convert[T](def.Value)
		if err != nil {
			return nil, commonerrors.ProgrammerError(errors.Wrapf(err, "default for %s", long))
		}
		v.def = d
	}
	v.reset()
	return p.register(long, short, desc, v)
}
