// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/dbsystems/dtc"
	"github.com/dbsystems/dtc/internal/diag"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	diag.Prog = progName(args)

	flags := pflag.NewFlagSet(diag.Prog, pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s [-q] [-v] <file> [<file>...]\n", diag.Prog)
		flags.PrintDefaults()
	}
	quick := flags.BoolP("quick", "q", false, "accept the first complete decision DAG instead of minimizing worst-case depth")
	verbose := flags.BoolP("verbose", "v", false, "trace the DAG Builder search on stderr")

	if err := flags.Parse(args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		diag.Report(err)
		return 1
	}

	files := flags.Args()
	if len(files) == 0 {
		flags.Usage()
		return 1
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Fprintf(os.Stderr, "%s: interrupted\n", diag.Prog)
		os.Exit(130)
	}()

	out := bufio.NewWriter(os.Stdout)
	opts := []dtc.Option{dtc.WithStats(diag.Counters)}
	if *quick {
		opts = append(opts, dtc.Quick())
	}
	if *verbose || os.Getenv("DTC_DEBUG") != "" {
		opts = append(opts, dtc.Trace())
	}

	if err := dtc.Compile(out, files, opts...); err != nil {
		diag.Report(err)
		return 1
	}
	if err := out.Flush(); err != nil {
		diag.Report(err)
		return 1
	}
	return 0
}

func progName(args []string) string {
	if len(args) == 0 {
		return "dtc"
	}
	base := args[0]
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '/' {
			return base[i+1:]
		}
	}
	return base
}
