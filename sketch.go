package sketch

import "errors"

// Config is the read-only configuration of a run.
type Config struct {
	// Size is the square target surface size in pixels. Must be positive.
	Size int

	// CaptureRoot, when non-empty, enables frame capture. Frames are saved
	// under CaptureRoot/<seed>/ indexed by frame number; the directory is
	// created on demand.
	CaptureRoot string

	// Seed fixes the run's initial seed. When nil a random seed is drawn
	// once at run start.
	Seed *uint64
}

func (c Config) validate() error {
	if c.Size <= 0 {
		return errors.New("sketch: config size must be positive")
	}
	return nil
}

// EventKind discriminates input events.
type EventKind int

const (
	// EventRune is a typed character.
	EventRune EventKind = iota
	// EventPointer is a pointer position, in surface coordinates.
	EventPointer
)

// ReseedRune is the distinguished input character that triggers a reseed.
// All other events pass through to the sketch's Step uninterpreted.
const ReseedRune = 'r'

// Event is a single input event delivered by the backend.
type Event struct {
	Kind EventKind
	Rune rune
	X, Y float64
}

// IsReseed reports whether the event is the distinguished reseed input.
func (e Event) IsReseed() bool {
	return e.Kind == EventRune && e.Rune == ReseedRune
}

// Sketch is a per-frame visual algorithm. Draw is called once per iteration
// with the current run context and returns the frame's canvas, obtained from
// Context.NewCanvas and filled in paint order.
//
// A sketch may additionally implement Stepper to evolve (or terminate) its
// state between frames, and Seeder to support reseeding.
type Sketch interface {
	Draw(ctx *Context) (*Canvas, error)
}

// Stepper advances a sketch to its next state after a frame has been
// submitted. Step consumes the current value and returns the replacement;
// returning nil terminates the run cleanly. The runtime holds exactly one
// sketch value at a time, so state never aliases across frames.
//
// Sketches that do not implement Stepper keep their state unchanged and run
// until the backend's event stream closes.
type Stepper interface {
	Step(ctx *Context, events []Event) (Sketch, error)
}

// Seeder reinitializes a sketch for a fresh seed. Seed is invoked after the
// context has been rebuilt (new seed, new RNG, frame zero) and returns the
// replacement sketch value.
//
// There is no implicit fallback: a sketch that should survive a reseed must
// implement Seeder, even if the implementation just returns a zero value.
type Seeder interface {
	Seed(ctx *Context) (Sketch, error)
}

// ErrNotReseedable is returned when a reseed event arrives for a sketch that
// does not implement Seeder.
var ErrNotReseedable = errors.New("sketch: reseed requested but sketch does not implement Seeder")
