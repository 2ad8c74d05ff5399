// Program cmdtree-shell is a small demonstration harness for the
// pkg/cmdtree command-dispatch tree: it builds a fixed sample tree,
// then either prints it (--format tree) or walks --input against it
// and lists completions for whatever is left unparsed (--format
// suggest).
//
// Usage: cmdtree-shell [--format FORMAT] [--input TEXT]
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cmdtree/cmdtree/pkg/cmdtree"
	"github.com/pborman/getopt"
)

// Each format must register a formatter with register. f is called once
// with the sample tree and the --input text.
type formatter struct {
	name string
	f    func(io.Writer, *cmdtree.TreeGraph, string)
	help string
}

var formatters = map[string]*formatter{}

func register(f *formatter) {
	formatters[f.name] = f
}

func main() {
	var format, input string
	var help bool

	formats := make([]string, 0, len(formatters))
	for k := range formatters {
		formats = append(formats, k)
	}
	sort.Strings(formats)

	getopt.StringVarLong(&format, "format", 0, "format to display: "+strings.Join(formats, ", "), "FORMAT")
	getopt.StringVarLong(&input, "input", 0, "command text to walk and suggest against", "TEXT")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("")

	if err := getopt.Getopt(func(getopt.Option) bool { return true }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		fmt.Fprintf(os.Stderr, "\nFormats:\n")
		for _, fn := range formats {
			fmt.Fprintf(os.Stderr, "    %s - %s\n", fn, formatters[fn].help)
		}
		os.Exit(0)
	}

	if format == "" {
		format = "tree"
	}
	f, ok := formatters[format]
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: invalid format.  Choices are %s\n", format, strings.Join(formats, ", "))
		os.Exit(1)
	}

	f.f(os.Stdout, sampleTree(), input)
}

// sampleTree builds a small illustrative tree: a "say" literal taking a
// greedy string, and a "set" literal with "volume <level: int 0-100>"
// and "name <value: quotable string>" children. No node in it redirects.
func sampleTree() *cmdtree.TreeGraph {
	g := cmdtree.NewTreeGraph()

	say := cmdtree.Literal(g, "say").
		Then(cmdtree.Argument(g, "message", cmdtree.GreedyString()).
			Executes("say"))

	volume := cmdtree.Argument(g, "level", cmdtree.Int32().WithRange(0, 100)).
		Executes("set-volume")
	name := cmdtree.Argument(g, "value", cmdtree.QuotableString()).
		Executes("set-name")

	set := cmdtree.Literal(g, "set").
		Then(cmdtree.Literal(g, "volume").Then(volume)).
		Then(cmdtree.Literal(g, "name").Then(name))

	root := g.RootId()
	g.AddChild(root, say.Build())
	g.AddChild(root, set.Build())
	return g
}
