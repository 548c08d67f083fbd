package nargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		style Style
		token string
		form  Form
		rest  string
	}{
		{Unix, "--num-jobs", LongForm, "num-jobs"},
		{Unix, "--num-jobs=4", LongForm, "num-jobs=4"},
		{Unix, "-j", ShortForm, "j"},
		{Unix, "-j=4", ShortForm, "j=4"},
		{Unix, "--", NotFlag, ""},
		{Unix, "-", NotFlag, ""},
		{Unix, "value", NotFlag, ""},
		{Unix, "/num-jobs", NotFlag, ""},
		{Unix, "", NotFlag, ""},
		{DOS, "/num-jobs", EitherForm, "num-jobs"},
		{DOS, "/j", EitherForm, "j"},
		{DOS, "/", NotFlag, ""},
		{DOS, "--num-jobs", NotFlag, ""},
		{DOS, "-j", NotFlag, ""},
		{Compound, "//num-jobs", LongForm, "num-jobs"},
		{Compound, "/j", ShortForm, "j"},
		{Compound, "//", NotFlag, ""},
		{Compound, "/", NotFlag, ""},
		{Compound, "--num-jobs", NotFlag, ""},
		{Style(7), "--num-jobs", NotFlag, ""},
	}
	for _, tc := range cases {
		form, rest := tc.style.Classify(tc.token)
		assert.Equalf(t, tc.form, form, "%s %q form", tc.style, tc.token)
		assert.Equalf(t, tc.rest, rest, "%s %q rest", tc.style, tc.token)
	}
}

func TestPrefixes(t *testing.T) {
	assert.Equal(t, []string{"--", "-"}, []string{Unix.LongPrefix(), Unix.ShortPrefix()}, "unix")
	assert.Equal(t, []string{"/", "/"}, []string{DOS.LongPrefix(), DOS.ShortPrefix()}, "dos")
	assert.Equal(t, []string{"//", "/"}, []string{Compound.LongPrefix(), Compound.ShortPrefix()}, "compound")
}

func TestStripPrefix(t *testing.T) {
	for _, name := range []string{"num-jobs", "--num-jobs", "-num-jobs", "/num-jobs", "//num-jobs"} {
		assert.Equal(t, "num-jobs", stripPrefix(name), name)
	}
	assert.Equal(t, "", stripPrefix("--"), "only prefix")
}
