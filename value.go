package nargs

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Scalar is the closed set of types a flag can hold.  Asking for any
// other type from Arg or ArgVar does not compile.
type Scalar interface {
	int64 | bool | float64 | string
}

// Kind tags which member of Scalar a Value holds.
type Kind int

const (
	InvalidKind Kind = iota
	Int64Kind
	BoolKind
	Float64Kind
	StringKind
)

func (k Kind) String() string {
	switch k {
	case Int64Kind:
		return "int64"
	case BoolKind:
		return "bool"
	case Float64Kind:
		return "float64"
	case StringKind:
		return "string"
	default:
		return "invalid"
	}
}

// argName is how the value is described in help text
func (k Kind) argName() string {
	switch k {
	case Int64Kind:
		return "int"
	case BoolKind:
		return "true|false"
	case Float64Kind:
		return "x.y"
	default:
		return "string"
	}
}

// Value holds the current value of one Parameter.  The set of
// implementations is closed: only this package can provide them.
type Value interface {
	Kind() Kind
	// Convert parses token and stores the result.  On failure the
	// held value is not modified.
	Convert(token string) error
	// Interface returns the held value as an int64, bool, float64, or string.
	Interface() interface{}
	// Default returns the value the Parameter had at registration.
	Default() interface{}
	String() string

	reset()
	loader
}

type value[T Scalar] struct {
	ptr *T
	def T
}

var (
	_ Value = &value[int64]{}
	_ Value = &value[bool]{}
	_ Value = &value[float64]{}
	_ Value = &value[string]{}
)

func kindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case int64:
		return Int64Kind
	case bool:
		return BoolKind
	case float64:
		return Float64Kind
	case string:
		return StringKind
	}
	return InvalidKind
}

func (v *value[T]) Kind() Kind             { return kindOf[T]() }
func (v *value[T]) Interface() interface{} { return *v.ptr }
func (v *value[T]) Default() interface{}   { return v.def }
func (v *value[T]) reset()                 { *v.ptr = v.def }
func (v *value[T]) String() string         { return format(*v.ptr) }

func (v *value[T]) Convert(token string) error {
	parsed, err := convert[T](token)
	if err != nil {
		return err
	}
	*v.ptr = parsed
	return nil
}

func convert[T Scalar](token string) (T, error) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *int64:
		*p, err = strconv.ParseInt(token, 10, 64)
	case *bool:
		*p, err = parseBool(token)
	case *float64:
		if err = checkDecimal(token); err == nil {
			*p, err = strconv.ParseFloat(token, 64)
		}
	case *string:
		*p = token
	}
	if err != nil {
		var zero T
		return zero, errors.WithStack(err)
	}
	return out, nil
}

func format[T Scalar](v T) string {
	switch x := any(v).(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	}
	return ""
}

// ErrNotDecimal is the cause of a ConversionFailure for a float flag
// given hexadecimal or digit-separated text
var ErrNotDecimal = errors.New("expected a decimal number")

// checkDecimal rejects the forms ParseFloat accepts beyond plain
// decimal and exponent notation: hex floats and underscores.
func checkDecimal(token string) error {
	unsigned := strings.TrimLeft(token, "+-")
	if strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") || strings.Contains(token, "_") {
		return ErrNotDecimal
	}
	return nil
}

// ErrNotBool is the cause of a ConversionFailure for a boolean flag
var ErrNotBool = errors.New("expected one of true, false, t, f, yes, no, y, n, on, off, 1, 0")

// parseBool accepts, ignoring case: true/false, t/f, yes/no, y/n, on/off, 1/0
func parseBool(token string) (bool, error) {
	switch strings.ToLower(token) {
	case "true", "t", "yes", "y", "on", "1":
		return true, nil
	case "false", "f", "no", "n", "off", "0":
		return false, nil
	}
	return false, ErrNotBool
}
