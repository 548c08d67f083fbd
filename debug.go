//go:build debugNargs
// +build debugNargs

package nargs

import (
	"log"
)

func (p *Parser) debugf(format string, args ...interface{}) {
	log.Printf("nargs: "+format, args...)
}
