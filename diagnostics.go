package nargs

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/AlekSi/pointer"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// useColor decides for the writer actually given to Parse: only a
// terminal gets color unless WithColor says otherwise.
func (p *Parser) useColor(w io.Writer) bool {
	if p.colorize != nil {
		return pointer.GetBool(p.colorize)
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printDiagnostics writes each error followed by the token line with
// the offending token underlined:
//
//	error: flag --num-jobs given more than once
//	    --num-jobs=1 --num-jobs=2
//	                 ^^^^^^^^^^^^
func (p *Parser) printDiagnostics(w io.Writer, errs Errors) {
	label := color.New(color.FgRed, color.Bold)
	marker := color.New(color.FgGreen)
	if p.useColor(w) {
		label.EnableColor()
		marker.EnableColor()
	} else {
		label.DisableColor()
		marker.DisableColor()
	}
	line := strings.Join(p.args, " ")
	for _, pe := range errs {
		fmt.Fprintf(w, "%s %s\n", label.Sprint("error:"), pe.Error())
		if pe.Index < 0 || pe.Index >= len(p.args) {
			continue
		}
		var offset int
		for _, a := range p.args[:pe.Index] {
			offset += utf8.RuneCountInString(a) + 1
		}
		width := max(utf8.RuneCountInString(p.args[pe.Index]), 1)
		fmt.Fprintf(w, "    %s\n    %s%s\n",
			line,
			strings.Repeat(" ", offset),
			marker.Sprint(strings.Repeat("^", width)))
	}
}
