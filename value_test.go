package nargs

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertInt64(t *testing.T) {
	good := map[string]int64{
		"42":                  42,
		"-7":                  -7,
		"+7":                  7,
		"0":                   0,
		"9223372036854775807": math.MaxInt64,
	}
	for token, want := range good {
		got, err := convert[int64](token)
		require.NoErrorf(t, err, "convert %q", token)
		assert.Equalf(t, want, got, "convert %q", token)
	}
	for _, token := range []string{"", "abc", "0x10", " 1", "1 ", "1.0", "9223372036854775808", "1_000"} {
		_, err := convert[int64](token)
		assert.Errorf(t, err, "convert %q", token)
	}
}

func TestConvertBool(t *testing.T) {
	for _, token := range []string{"true", "TRUE", "True", "t", "T", "yes", "Yes", "y", "on", "ON", "1"} {
		got, err := convert[bool](token)
		require.NoErrorf(t, err, "convert %q", token)
		assert.Truef(t, got, "convert %q", token)
	}
	for _, token := range []string{"false", "FALSE", "f", "no", "No", "n", "off", "0"} {
		got, err := convert[bool](token)
		require.NoErrorf(t, err, "convert %q", token)
		assert.Falsef(t, got, "convert %q", token)
	}
	for _, token := range []string{"", "2", "maybe", "yess", "tru", " true"} {
		_, err := convert[bool](token)
		require.Errorf(t, err, "convert %q", token)
		assert.Truef(t, errors.Is(err, ErrNotBool), "convert %q cause", token)
	}
}

func TestConvertFloat64(t *testing.T) {
	good := map[string]float64{
		"1.5":    1.5,
		"-0.25":  -0.25,
		"2e3":    2000,
		"1E-2":   0.01,
		".5":     0.5,
		"7":      7,
		"+3.5":   3.5,
		"1e+308": 1e308,
	}
	for token, want := range good {
		got, err := convert[float64](token)
		require.NoErrorf(t, err, "convert %q", token)
		assert.InDeltaf(t, want, got, 1e-9*math.Abs(want), "convert %q", token)
	}
	for _, token := range []string{"", "abc", "1,5", "1.5.5", "1e", "1e999", "0x1p4", "-0X1p-2", "0x_1p0", "1_000.5"} {
		_, err := convert[float64](token)
		assert.Errorf(t, err, "convert %q", token)
	}
}

func TestConvertFloat64NotDecimal(t *testing.T) {
	for _, token := range []string{"0x10", "+0x1p4", "1_5"} {
		_, err := convert[float64](token)
		require.Errorf(t, err, "convert %q", token)
		assert.Truef(t, errors.Is(err, ErrNotDecimal), "convert %q cause", token)
	}
}

func TestConvertString(t *testing.T) {
	for _, token := range []string{"", "plain", "--looks-like-a-flag", "a=b", " spaced "} {
		got, err := convert[string](token)
		require.NoErrorf(t, err, "convert %q", token)
		assert.Equal(t, token, got, "verbatim")
	}
}

func TestValueKeepsOldValueOnFailure(t *testing.T) {
	n := int64(3)
	v := &value[int64]{ptr: &n, def: 6}
	require.Error(t, v.Convert("three"), "convert")
	assert.Equal(t, int64(3), n, "unchanged")
	require.NoError(t, v.Convert("4"), "convert")
	assert.Equal(t, int64(4), n, "changed")
	v.reset()
	assert.Equal(t, int64(6), n, "reset")
}

func TestValueKinds(t *testing.T) {
	p := New()
	ArgVar(p, new(int64), "--int", "-i", "")
	ArgVar(p, new(bool), "--bool", "-b", "")
	ArgVar(p, new(float64), "--float", "-f", "")
	ArgVar(p, new(string), "--string", "-s", "")
	var kinds []Kind
	var names []string
	for _, param := range p.Parameters() {
		kinds = append(kinds, param.Value().Kind())
		names = append(names, param.Value().Kind().String())
	}
	assert.Equal(t, []Kind{Int64Kind, BoolKind, Float64Kind, StringKind}, kinds, "kinds")
	assert.Equal(t, []string{"int64", "bool", "float64", "string"}, names, "names")
}

func TestValueString(t *testing.T) {
	p := New()
	i := Arg(p, "--int", "-i", "", Default[int64](-12))
	b := Arg(p, "--bool", "-b", "", Default(true))
	f := Arg(p, "--float", "-f", "", Default(0.125))
	s := Arg(p, "--string", "-s", "", Default("text"))
	assert.Equal(t, "-12", p.Lookup("i").Value().String(), "int")
	assert.Equal(t, "true", p.Lookup("b").Value().String(), "bool")
	assert.Equal(t, "0.125", p.Lookup("f").Value().String(), "float")
	assert.Equal(t, "text", p.Lookup("s").Value().String(), "string")
	assert.Equal(t, int64(-12), *i)
	assert.True(t, *b)
	assert.Equal(t, 0.125, *f)
	assert.Equal(t, "text", *s)
}
