// Command sketchdemo runs a built-in generative sketch on a chosen backend.
//
// Headless rendering with capture:
//
//	sketchdemo -backend software -frames 120 -capture ./frames -seed 42
//
// Interactive window (press 'r' to reseed):
//
//	sketchdemo -backend fyne
//
// Vector capture:
//
//	sketchdemo -backend pdf -frames 10 -capture ./frames
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/backend"
	"github.com/gogpu/sketch/backend/fyneui"
	"github.com/gogpu/sketch/backend/pdf"
	"github.com/gogpu/sketch/backend/software"
	"github.com/gogpu/sketch/capture"
	"github.com/gogpu/sketch/internal/applog"
	"github.com/gogpu/sketch/internal/config"
)

func main() {
	var (
		configPath  = flag.String("config", "", "YAML config file")
		size        = flag.Int("size", 0, "surface size in pixels")
		backendName = flag.String("backend", "", "render backend (fyne, software, pdf)")
		frames      = flag.Int("frames", 0, "frame limit for headless backends (0 = unlimited)")
		seed        = flag.Uint64("seed", 0, "fixed seed (omit for a random one)")
		captureRoot = flag.String("capture", "", "capture frames under this directory")
		journalPath = flag.String("journal", "", "SQLite seed journal path")
		delayMs     = flag.Int("delay", 0, "per-frame delay in milliseconds")
		listRuns    = flag.Bool("list", false, "list journaled seeds and exit")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	applyFlags(&cfg, *size, *backendName, *frames, *captureRoot, *journalPath, *delayMs)
	seedSet := flagWasSet("seed")

	logger := applog.New(applog.Options{Level: cfg.Logging.Level, File: cfg.Logging.File})
	sketch.SetLogger(logger)

	if *listRuns {
		if err := printRuns(cfg.Journal); err != nil {
			log.Fatal(err)
		}
		return
	}

	runCfg := sketch.Config{
		Size:        cfg.Size,
		CaptureRoot: cfg.CaptureRoot,
		Seed:        cfg.Seed,
	}
	if seedSet {
		runCfg.Seed = seed
	}

	opts := []sketch.Option{
		sketch.WithFrameDelay(time.Duration(cfg.DelayMs) * time.Millisecond),
	}
	if cfg.Journal != "" {
		store, err := capture.Open(cfg.Journal)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()
		opts = append(opts, sketch.WithSeedObserver(func(s uint64) {
			if err := store.Record("orbits", s, time.Now()); err != nil {
				logger.Warn("journal write failed", "err", err)
			}
		}))
	}

	if err := run(cfg, runCfg, opts); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config.Config, runCfg sketch.Config, opts []sketch.Option) error {
	switch cfg.Backend {
	case backend.BackendFyne:
		b := fyneui.New(fyneui.WithTitle("sketchdemo: orbits"))
		return b.Main(runCfg, newOrbits(), opts...)
	case backend.BackendSoftware:
		b := software.New(software.WithFrameLimit(cfg.Frames))
		return sketch.Run(runCfg, b, newOrbits(), opts...)
	case backend.BackendPDF:
		b := pdf.New(pdf.WithFrameLimit(cfg.Frames))
		return sketch.Run(runCfg, b, newOrbits(), opts...)
	default:
		return fmt.Errorf("unknown backend %q (available: %v)", cfg.Backend, backend.Available())
	}
}

func applyFlags(cfg *config.Config, size int, backendName string, frames int, captureRoot, journal string, delayMs int) {
	if size > 0 {
		cfg.Size = size
	}
	if backendName != "" {
		cfg.Backend = backendName
	}
	if flagWasSet("frames") {
		cfg.Frames = frames
	}
	if captureRoot != "" {
		cfg.CaptureRoot = captureRoot
	}
	if journal != "" {
		cfg.Journal = journal
	}
	if delayMs > 0 {
		cfg.DelayMs = delayMs
	}
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func printRuns(journal string) error {
	if journal == "" {
		return fmt.Errorf("no journal configured; pass -journal or set it in the config file")
	}
	store, err := capture.Open(journal)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs("")
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no journaled runs")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%s  %-12s  seed=%d\n",
			r.Started.Local().Format(time.DateTime), r.Sketch, r.Seed)
	}
	return nil
}
