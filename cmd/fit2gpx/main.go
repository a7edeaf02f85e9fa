package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/theoremus-urban-solutions/fit2gpx/config"
	"github.com/theoremus-urban-solutions/fit2gpx/internal"
)

// Exit codes
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run converts every file named in args and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fit2gpx", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file (default: fit2gpx.yml or config.yml if present)")
	workers := fs.Int("workers", -1, "files converted in parallel, 0 for one per CPU (overrides config)")
	creator := fs.String("creator", "", "creator attribute of the gpx element (overrides config)")
	ext := fs.String("ext", "", "output file extension (overrides config)")
	summary := fs.Bool("summary", false, "append point, segment and distance counts to each status line")
	showVersion := fs.Bool("version", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fit2gpx [flags] file.fit...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *showVersion {
		fmt.Fprintf(stdout, "fit2gpx %s\n", version)
		return exitOK
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "fit2gpx: %v\n", err)
		return exitUsage
	}
	if *workers >= 0 {
		cfg.Batch.Workers = *workers
	}
	if *creator != "" {
		cfg.Output.Creator = *creator
	}
	if *ext != "" {
		cfg.Output.Extension = *ext
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "fit2gpx: %v\n", err)
		return exitUsage
	}

	internal.InitLogging(cfg.Logging.Microseconds)

	b := newBatch(cfg, *summary)
	if !b.run(fs.Args(), stdout) {
		return exitFailed
	}
	return exitOK
}
