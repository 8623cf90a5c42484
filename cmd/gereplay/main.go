package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sgpu/sge/log"
	"github.com/sgpu/sge/trace"
	"github.com/sgpu/sge/util"
	"github.com/sgpu/sge/xform"
	"golang.org/x/sync/errgroup"
)

var parallel = flag.Bool("parallel", false, "Transform vertices concurrently (dispatch order is preserved)")
var logLevel = flag.String("loglevel", "info", "Logging level: debug, info, warn, error")
var logDir = flag.String("logdir", "", "Directory for log files")

func main() {
	flag.Parse()

	if len(flag.Args()) == 0 {
		fmt.Fprintf(os.Stderr, "usage: gereplay [flags] <trace.msgpack.zst>...\nwhere [flags] may be:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	lg := log.New(*logLevel, *logDir)
	lg.Infof("replaying %d traces (%s)", len(flag.Args()),
		util.Select(*parallel, "parallel", "serial"))

	stats := make([]xform.Stats, len(flag.Args()))
	var eg errgroup.Group
	for i, fn := range flag.Args() {
		i, fn := i, fn
		eg.Go(func() error {
			f, err := os.Open(fn)
			if err != nil {
				return err
			}
			defer f.Close()

			tr, err := trace.Read(f)
			if err != nil {
				return fmt.Errorf("%s: %w", fn, err)
			}
			lg.Debugf("%s: %d draw calls", fn, len(tr.Calls))

			stats[i], err = trace.Replay(tr, xform.NopClipper{}, xform.NopLighter, lg, *parallel)
			if err != nil {
				return fmt.Errorf("%s: %w", fn, err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		lg.Errorf("%v", err)
		os.Exit(1)
	}

	for i, fn := range flag.Args() {
		fmt.Printf("%s: %s\n", fn, stats[i])
	}
}
