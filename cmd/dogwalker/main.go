// Command dogwalker searches for simple integer step-walks and reports
// the smallest representative found for each simpleness index.
//
// Usage:
//
//	dogwalker [flags] n
//	dogwalker -s
//
// Flags:
//
//	-c, --closed   search closed walks (steps sum to the origin)
//	-m, --minify   minify-more mode: keep the smallest representative per SI
//	-s, --sort     run the record-file sorter over record/ and exit
//	-j N           number of worker goroutines (default: CPU count)
//
// Positional n (required unless -s) is the walk length, an integer >= 3.
//
// Example:
//
//	dogwalker -c -j 4 5
//	dogwalker -s
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/yescallop/dogwalker/walk/record"
	"github.com/yescallop/dogwalker/walk/search"
	"github.com/yescallop/dogwalker/walk/sortutil"
)

var (
	closed  bool
	minify  bool
	doSort  bool
	workers int
)

func init() {
	flag.BoolVar(&closed, "c", false, "search closed walks")
	flag.BoolVar(&closed, "closed", false, "search closed walks")
	flag.BoolVar(&minify, "m", false, "minify-more mode (Mode B)")
	flag.BoolVar(&minify, "minify", false, "minify-more mode (Mode B)")
	flag.BoolVar(&doSort, "s", false, "run the sorter over record/ and exit")
	flag.BoolVar(&doSort, "sort", false, "run the sorter over record/ and exit")
	flag.IntVar(&workers, "j", runtime.NumCPU(), "number of worker goroutines")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] n\n       %s -s\n\n", os.Args[0], os.Args[0])
		fmt.Fprintf(os.Stderr, "Searches for simple integer step-walks, or sorts record/ with -s.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dogwalker: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if doSort {
		jSet := false
		flag.Visit(func(f *flag.Flag) {
			if f.Name == "j" {
				jSet = true
			}
		})
		if closed || minify || jSet || flag.NArg() != 0 {
			return fmt.Errorf("-s/--sort is mutually exclusive with other flags and positional arguments")
		}
		return runSort()
	}

	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("expected exactly one positional argument: n")
	}
	n64, err := strconv.ParseUint(flag.Arg(0), 10, 8)
	if err != nil {
		return fmt.Errorf("n must be an integer in [0, 255]: %w", err)
	}
	n := int(n64)
	if n < 3 {
		return fmt.Errorf("n must be >= 3, got %d", n)
	}

	if workers < 1 {
		return fmt.Errorf("-j must be >= 1, got %d", workers)
	}
	if cores := runtime.NumCPU(); workers > cores {
		workers = cores
	}

	return runSearch(n)
}

func runSort() error {
	return sortutil.Dir("record", func(name, outcome string) {
		fmt.Printf("%s: %s\n", name, outcome)
	})
}

func runSearch(n int) error {
	mode := search.ModeFast
	if minify {
		mode = search.ModeMinifyMore
	}
	cfg := search.Config{N: n, Closed: closed, Mode: mode}

	rec, err := record.NewRecorder(n, closed)
	if err != nil {
		return err
	}
	rec.Running.Store(true)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		sim := search.New(cfg, rec, uint64(i))
		go func() {
			defer wg.Done()
			sim.Run(ctx)
		}()
	}

	<-ctx.Done()
	rec.Running.Store(false)
	wg.Wait()

	elapsed := time.Since(start).Seconds()
	count := rec.Count.Load()
	rate := float64(0)
	if elapsed > 0 {
		rate = float64(count) / elapsed
	}
	fmt.Printf("count: %d (%.1f/s)\n", count, rate)
	return nil
}
