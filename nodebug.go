//go:build !debugNargs
// +build !debugNargs

package nargs

func (p *Parser) debugf(string, ...interface{}) {}
