package nargs

import (
	"fmt"
	"io"
	"strings"
)

// format renders the names of a Parameter in the given style:
//
//	--num-jobs, -j int
//	--[no-]verbose, -v
func (param *Parameter) format(style Style, negation bool) string {
	var b strings.Builder
	b.WriteString(style.LongPrefix())
	isBool := param.value.Kind() == BoolKind
	if isBool && negation && style == Unix {
		b.WriteString("[no-]")
	}
	b.WriteString(param.long)
	b.WriteString(", ")
	b.WriteString(style.ShortPrefix())
	b.WriteString(param.short)
	if !isBool {
		b.WriteRune(' ')
		b.WriteString(param.value.Kind().argName())
	}
	return b.String()
}

func (param *Parameter) help() string {
	if param.desc != "" {
		return param.desc
	}
	return fmt.Sprintf("set %s (%s)", param.long, param.value.Kind())
}

// Help writes one line per Parameter, in registration order, with its
// long name, short name, and description.  It does not depend on
// whether Parse has run.
func (p *Parser) Help(w io.Writer) {
	for _, param := range p.params {
		fmt.Fprintf(w, "    %-30s %s\n", param.format(p.style, p.negation), param.help())
	}
}

// Usage writes a summary line followed by Help.
//
//	Usage: program [options]
//
//	Options:
//	    --num-jobs, -j int             number of jobs
func (p *Parser) Usage(w io.Writer) {
	usage := "Usage: " + p.programName()
	if len(p.params) > 0 {
		usage += " [options]"
	}
	if p.terminator {
		usage += " [-- args...]"
	}
	fmt.Fprintln(w, usage)
	if len(p.params) == 0 {
		return
	}
	fmt.Fprint(w, "\nOptions:\n")
	p.Help(w)
}
