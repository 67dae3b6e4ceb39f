// Package main provides the numcpp CLI for inspecting array views.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const version = "v0.0.1-dev"

func main() {
	debug := flag.Bool("debug", false, "log debug messages")
	flag.Parse()

	logger := newLogger(os.Stderr, *debug)
	if err := run(flag.Args(), os.Stdout, logger); err != nil {
		level.Error(logger).Log("msg", "command failed", "err", err)
		os.Exit(1)
	}
}

// newLogger returns a logfmt logger that drops debug lines unless debug is set.
func newLogger(w io.Writer, debug bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if debug {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}

func run(args []string, out io.Writer, logger log.Logger) error {
	if len(args) == 0 {
		usage(out)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(out, "numcpp %s\n", version)
		return nil
	case "arange":
		return runArange(args[1:], out, logger)
	case "help", "-h", "--help":
		usage(out)
		return nil
	default:
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "numcpp - N-dimensional arrays with NumPy-style views")
	fmt.Fprintf(out, "Version: %s\n\n", version)
	fmt.Fprintln(out, "Usage: numcpp [-debug] <command> [flags]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  arange     Build a range, reshape it, select from it and print the result")
}
