package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/theoremus-urban-solutions/fit2gpx/activity"
	"github.com/theoremus-urban-solutions/fit2gpx/config"
	"github.com/theoremus-urban-solutions/fit2gpx/converter"
	"github.com/theoremus-urban-solutions/fit2gpx/fitfile"
	"github.com/theoremus-urban-solutions/fit2gpx/utils"
)

var errSameFile = errors.New("output would overwrite the input")

// batch converts files independently of each other.
// This is CLI-specific logic and is not part of the core library.
type batch struct {
	cfg     config.AppConfig
	conv    *converter.Converter
	summary bool
}

// fileResult is the outcome of one input file
type fileResult struct {
	file    string
	output  string
	openErr error
	status  activity.Status
	outcome converter.Outcome
	err     error
}

func newBatch(cfg config.AppConfig, summary bool) *batch {
	return &batch{
		cfg:     cfg,
		conv:    converter.NewConverter(converter.ConverterOptions{Creator: cfg.Output.Creator}),
		summary: summary,
	}
}

// outputPath replaces the extension of input with ext, or appends ext when
// input has none
func outputPath(input, ext string) string {
	if cur := filepath.Ext(input); cur != "" {
		return strings.TrimSuffix(input, cur) + ext
	}
	return input + ext
}

// run converts files in parallel and prints one status line per file in input
// order. It reports whether every file converted OK.
func (b *batch) run(files []string, stdout io.Writer) bool {
	workers := b.cfg.Batch.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]chan fileResult, len(files))
	for i := range results {
		results[i] = make(chan fileResult, 1)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	go func() {
		for i, file := range files {
			g.Go(func() error {
				results[i] <- b.convertFile(file)
				return nil
			})
		}
	}()

	allOK := true
	for i := range files {
		r := <-results[i]
		if r.openErr != nil || r.err != nil || r.status != activity.StatusOK {
			allOK = false
		}
		fmt.Fprintln(stdout, b.statusLine(r))
	}
	_ = g.Wait()
	return allOK
}

// convertFile opens file, creates its GPX output and converts one into the other
func (b *batch) convertFile(file string) fileResult {
	r := fileResult{file: file, output: outputPath(file, b.cfg.Output.Extension)}
	if filepath.Clean(r.output) == filepath.Clean(file) {
		r.openErr = errSameFile
		return r
	}

	in, err := os.Open(file)
	if err != nil {
		r.openErr = err
		return r
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(r.output)
	if err != nil {
		r.openErr = err
		return r
	}

	src := fitfile.NewSource(in)
	defer src.Close()

	r.outcome, r.err = b.conv.Convert(src, converter.NewGPXWriter(out, b.cfg.Output.BufferSize))
	if cerr := out.Close(); r.err == nil && cerr != nil {
		r.err = fmt.Errorf("failed to close %s: %w", r.output, cerr)
	}
	r.status = r.outcome.Status

	if src.Err() != nil {
		log.Printf("%s: %v", file, src.Err())
	}
	if b.cfg.Logging.Warnings && r.outcome.Warnings != nil {
		r.outcome.Warnings.LogAll(file)
	}
	return r
}

func (b *batch) statusLine(r fileResult) string {
	if r.openErr != nil {
		return fmt.Sprintf("Error while opening file: %s: %v", r.file, r.openErr)
	}
	if r.err != nil {
		return fmt.Sprintf("Error while writing file: %s: %v", r.output, r.err)
	}
	line := r.status.Report(r.file)
	if b.summary {
		s := r.outcome.Summary
		line += fmt.Sprintf(" (%d points, %d segments, %s in %s)",
			s.Points, s.Segments, utils.PresentableDistance(s.DistanceMeters), utils.PresentableDuration(s.Duration()))
	}
	return line
}
