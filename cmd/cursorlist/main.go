// Package main implements a command line tool applying cursor list operations
// to a list described by a pictogram, and printing the state of the list after
// each operation.
//
//	$ cursorlist '3|7' insert-before=9 reverse get
//	insert-before=9 -> 3|97
//	reverse -> 7|93
//	get -> 9
//	7|93
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/segmentio/cursorlist/list"
	"github.com/segmentio/cursorlist/pictogram"
)

var errUsage = errors.New("usage: cursorlist [flags] PICTOGRAM [OP...]")

type options struct {
	def     int
	maxLen  int
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options

	flags := flag.NewFlagSet("cursorlist", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.IntVar(&opts.def, "default", -1, "Default element returned when nothing is selected")
	flags.IntVar(&opts.maxLen, "max", 0, "Maximum number of elements in the list (0 for no limit)")
	flags.BoolVar(&opts.verbose, "v", false, "Log each operation to stderr")
	flags.Usage = func() {
		fmt.Fprintln(stderr, errUsage)
		fmt.Fprintln(stderr, "\nOperations:")
		for _, name := range opNames {
			fmt.Fprintf(stderr, "  %s\n", name)
		}
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() < 1 {
		flags.Usage()
		return 2
	}

	logger := log.New(io.Discard, "cursorlist: ", 0)
	if opts.verbose {
		logger.SetOutput(stderr)
	}

	l, err := pictogram.Parse(flags.Arg(0), opts.def, list.MaxLen(opts.maxLen))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	defer l.Free()

	script := make([]op, 0, flags.NArg()-1)
	for _, arg := range flags.Args()[1:] {
		o, err := parseOp(arg)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
		script = append(script, o)
	}

	for _, o := range script {
		before := pictogram.Format(l)
		result, err := o.apply(l)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", o, err)
			return 1
		}
		after := pictogram.Format(l)
		logger.Printf("%s: %s => %s (%s)", o, before, after, result)

		if result == "" {
			fmt.Fprintf(stdout, "%s -> %s\n", o, after)
		} else {
			fmt.Fprintf(stdout, "%s -> %s\n", o, result)
		}
	}

	fmt.Fprintln(stdout, pictogram.Format(l))
	return 0
}

type op struct {
	name string
	arg  int
	operation
}

// operation is an entry of the ops table. Operations with takesValue set are
// written name=N on the command line.
type operation struct {
	fn         func(l *list.List[int], arg int) (string, error)
	takesValue bool
}

func (o op) String() string {
	if o.takesValue {
		return o.name + "=" + strconv.Itoa(o.arg)
	}
	return o.name
}

func (o op) apply(l *list.List[int]) (string, error) {
	return o.fn(l, o.arg)
}

func parseOp(s string) (op, error) {
	name, value, hasValue := strings.Cut(s, "=")

	entry, ok := ops[name]
	if !ok {
		return op{}, fmt.Errorf("unknown operation %q", name)
	}

	o := op{name: name, operation: entry}

	switch {
	case o.takesValue && !hasValue:
		return op{}, fmt.Errorf("operation %q requires a value (%s=N)", name, name)
	case !o.takesValue && hasValue:
		return op{}, fmt.Errorf("operation %q does not take a value", name)
	case o.takesValue:
		v, err := strconv.Atoi(value)
		if err != nil {
			return op{}, fmt.Errorf("operation %q: %w", name, err)
		}
		o.arg = v
	}
	return o, nil
}

var opNames = []string{
	"first",
	"last",
	"none",
	"after",
	"before",
	"get",
	"set=N",
	"insert-after=N",
	"insert-before=N",
	"delete-after",
	"delete-before",
	"reverse",
}

var ops = map[string]operation{
	"first": {
		fn: func(l *list.List[int], _ int) (string, error) {
			l.MoveToFirst()
			return "", nil
		},
	},
	"last": {
		fn: func(l *list.List[int], _ int) (string, error) {
			l.MoveToLast()
			return "", nil
		},
	},
	"none": {
		fn: func(l *list.List[int], _ int) (string, error) {
			return strconv.FormatBool(l.None()), nil
		},
	},
	"after": {
		fn: func(l *list.List[int], _ int) (string, error) {
			return strconv.FormatBool(l.StepForward()), nil
		},
	},
	"before": {
		fn: func(l *list.List[int], _ int) (string, error) {
			return strconv.FormatBool(l.StepBackward()), nil
		},
	},
	"get": {
		fn: func(l *list.List[int], _ int) (string, error) {
			return strconv.Itoa(l.Get()), nil
		},
	},
	"set": {
		fn: func(l *list.List[int], v int) (string, error) {
			return strconv.FormatBool(l.Set(v)), nil
		},
		takesValue: true,
	},
	"insert-after": {
		fn: func(l *list.List[int], v int) (string, error) {
			return "", l.InsertAfter(v)
		},
		takesValue: true,
	},
	"insert-before": {
		fn: func(l *list.List[int], v int) (string, error) {
			return "", l.InsertBefore(v)
		},
		takesValue: true,
	},
	"delete-after": {
		fn: func(l *list.List[int], _ int) (string, error) {
			return strconv.FormatBool(l.DeleteForward()), nil
		},
	},
	"delete-before": {
		fn: func(l *list.List[int], _ int) (string, error) {
			return strconv.FormatBool(l.DeleteBackward()), nil
		},
	},
	"reverse": {
		fn: func(l *list.List[int], _ int) (string, error) {
			l.Reverse()
			return "", nil
		},
	},
}
