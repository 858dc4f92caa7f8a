package sketch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Run drives s against b until the sketch terminates or the backend's event
// stream closes. It owns the run context and the current sketch value; every
// failure (polling, reseeding, drawing, submission, capture) is fatal and
// returned as the run's result. A frame is atomic: it fully completes
// draw, submit and capture, or the run aborts.
//
// Per iteration the loop polls events, reseeds if requested, draws the
// sketch into a fresh canvas, submits the drained queue in order, steps the
// sketch, captures the frame if configured, sleeps the frame delay, and
// increments the frame counter.
func Run(cfg Config, b Backend, s Sketch, opts ...Option) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if b == nil {
		return fmt.Errorf("sketch: run requires a backend")
	}
	if s == nil {
		return fmt.Errorf("sketch: run requires a sketch")
	}

	o := defaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := b.Init(cfg); err != nil {
		return fmt.Errorf("sketch: init backend: %w", err)
	}
	defer b.Close()

	seed := randomSeed()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	ctx := &Context{
		Config: cfg,
		Rng:    newRNG(seed),
		Seed:   seed,
		tess:   b.Tessellator(),
	}
	if o.seedObserver != nil {
		o.seedObserver(seed)
	}

	log := Logger()
	log.Info("run started", slog.Uint64("seed", seed), slog.Int("size", cfg.Size))

	// current is the single owned slot holding the sketch state. Each step
	// overwrites it wholesale; nil means the sketch has terminated.
	current := s

	for {
		events, err := b.Events()
		if errors.Is(err, ErrStreamClosed) {
			log.Info("event stream closed", slog.Int("frame", ctx.Frame))
			return nil
		}
		if err != nil {
			return fmt.Errorf("sketch: poll events: %w", err)
		}

		if hasReseed(events) {
			if err := reseed(ctx, &current); err != nil {
				return err
			}
			if o.seedObserver != nil {
				o.seedObserver(ctx.Seed)
			}
			log.Info("reseeded", slog.Uint64("seed", ctx.Seed))
		}

		canvas, err := current.Draw(ctx)
		if err != nil {
			return fmt.Errorf("sketch: draw frame %d: %w", ctx.Frame, err)
		}
		if canvas == nil {
			return fmt.Errorf("sketch: draw frame %d returned no canvas", ctx.Frame)
		}

		entries := canvas.Drain()
		if err := b.Submit(entries); err != nil {
			return fmt.Errorf("sketch: submit frame %d: %w", ctx.Frame, err)
		}
		log.Debug("frame submitted", slog.Int("frame", ctx.Frame), slog.Int("entries", len(entries)))

		if st, ok := current.(Stepper); ok {
			next, err := st.Step(ctx, events)
			if err != nil {
				return fmt.Errorf("sketch: step frame %d: %w", ctx.Frame, err)
			}
			current = next
		}

		if cfg.CaptureRoot != "" {
			if err := capture(b, ctx); err != nil {
				return err
			}
		}

		time.Sleep(o.delay)
		ctx.Frame++

		if current == nil {
			log.Info("sketch terminated", slog.Int("frames", ctx.Frame))
			return nil
		}
	}
}

func hasReseed(events []Event) bool {
	for _, e := range events {
		if e.IsReseed() {
			return true
		}
	}
	return false
}

// reseed rebuilds the run context from a fresh seed (drawn independently of
// the current one) and replaces the sketch state through its Seeder. No
// partial reseed state survives a failure; the loop aborts instead.
func reseed(ctx *Context, current *Sketch) error {
	sdr, ok := (*current).(Seeder)
	if !ok {
		return ErrNotReseedable
	}

	ctx.Seed = randomSeed()
	ctx.Rng = newRNG(ctx.Seed)
	ctx.Frame = 0

	next, err := sdr.Seed(ctx)
	if err != nil {
		return fmt.Errorf("sketch: reseed: %w", err)
	}
	if next == nil {
		return fmt.Errorf("sketch: reseed returned no sketch")
	}
	*current = next
	return nil
}

// CaptureDir returns the capture directory for a seed:
// <root>/<seed>/ with the seed in decimal.
func CaptureDir(root string, seed uint64) string {
	return filepath.Join(root, strconv.FormatUint(seed, 10))
}

// capture persists the just-rendered frame. Directory creation is
// idempotent and repeated per frame.
func capture(b Backend, ctx *Context) error {
	dir := CaptureDir(ctx.Config.CaptureRoot, ctx.Seed)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("sketch: create capture dir: %w", err)
	}
	if err := b.SaveFrame(dir, ctx.Frame); err != nil {
		return fmt.Errorf("sketch: save frame %d: %w", ctx.Frame, err)
	}
	Logger().Debug("frame captured", slog.String("dir", dir), slog.Int("frame", ctx.Frame))
	return nil
}
