// Obligatory // comment

/*
Package nargs resolves command line arguments into typed flags in a
single pass.

Start with New().  Use functional args to pick the flag style and how
errors are reported.  Register flags with Arg(), ArgVar(), or Bind().
Hand over the arguments with TakeArgs() or TakeOSArgs() and then call
Parse().

	p := nargs.New(nargs.PrintErrors(true))
	numJobs := nargs.Arg(p, "--num-jobs", "-j", "number of jobs", nargs.Default[int64](6))
	input := nargs.Arg(p, "--input", "-i", "the input file", nargs.Default("in.txt"))
	verbose := nargs.Arg[bool](p, "--verbose", "-v", "verbose mode")
	if err := p.TakeOSArgs().Parse(os.Stderr); err != nil {
		p.Usage(os.Stderr)
		os.Exit(2)
	}

Every flag has a long and a short name.  Only four types can be flags:
int64, bool, float64, and string.  Asking Arg for anything else will not
compile.

There are three styles of flag prefixes:

	Unix:     --num-jobs=4  -j 4
	DOS:      /num-jobs=4   /j 4
	Compound: //num-jobs=4  /j 4

A value is either attached with "=" or is the following argument.
Boolean flags never take the following argument: a bare boolean flag
is true, otherwise give it a value with "=".  These all mean false
(case does not matter):

	--verbose=false
	--verbose=f
	--verbose=no
	--verbose=n
	--verbose=off
	--verbose=0

With WithNegation(), --no-verbose also means false.  Short flags cannot be
combined: "-xv" is a flag named "xv".

Parse looks at every argument, even after finding problems.  The returned
error is an Errors listing each one with its kind: UnknownFlag,
DuplicateFlag, MissingValue, ConversionFailure, or MalformedToken.  A
flag that is given twice keeps its first value.  A value that fails to
convert leaves the flag as it was.

	err := p.Parse(os.Stderr)
	if errors.Is(err, nargs.UnknownFlag) {
		...
	}

Before the arguments are looked at, flags are set to their defaults, then
to values from config files (see ConfigFile()) and then, for flags from
Bind(), to environment variables.

Mistakes in registration (empty or repeated names, unsupported field types
for Bind) are returned by Parse before any argument is examined.
*/
package nargs
