package nargs

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnSuccess(t *testing.T) {
	var called int
	var remaining []string
	p, numJobs := jobsParser(WithTerminator(), OnSuccess(func(p *Parser, args []string) {
		called++
		remaining = args
		assert.Equal(t, Unix, p.Style(), "style")
	}))
	require.NoError(t, p.TakeArgs([]string{"-j", "3", "--", "a", "b"}).Parse(io.Discard), "parse")
	assert.Equal(t, 1, called, "called")
	assert.Equal(t, []string{"a", "b"}, remaining, "remaining")
	assert.Equal(t, int64(3), *numJobs, "set before the callback")

	require.Error(t, p.TakeArgs([]string{"--bogus"}).Parse(io.Discard), "parse")
	assert.Equal(t, 1, called, "not called after token errors")
}

func TestOnSuccessError(t *testing.T) {
	p, _ := jobsParser(OnSuccess(func() error {
		return errors.New("no thanks")
	}))
	err := p.TakeArgs(nil).Parse(io.Discard)
	require.Error(t, err, "parse")
	assert.Contains(t, err.Error(), "no thanks", "message")
}

func TestOnSuccessBadChain(t *testing.T) {
	p, _ := jobsParser(OnSuccess(func(s struct{ unknown int }) {}))
	require.Error(t, p.Err(), "chain cannot be bound")
	require.Error(t, p.TakeArgs(nil).Parse(io.Discard), "parse")
}
