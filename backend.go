package sketch

import "errors"

// ErrStreamClosed is returned by Backend.Events when the input source has
// shut down cleanly. The run loop treats it as successful termination; any
// other error is fatal.
var ErrStreamClosed = errors.New("sketch: event stream closed")

// Backend is the input/render collaborator of a run. It owns the window or
// output surface, the input source, and frame persistence. Implementations
// are driven synchronously by the run loop and need not be safe for
// concurrent use.
type Backend interface {
	// Init prepares the backend for a run with the given configuration.
	Init(cfg Config) error

	// Close releases backend resources after the run ends.
	Close()

	// Tessellator returns the converter from styled paints to this
	// backend's renderable geometry. Canvases created during the run
	// tessellate through it.
	Tessellator() Tessellator

	// Events blocks until the next batch of input events is available. An
	// empty batch is valid. It returns ErrStreamClosed when the input
	// source has ended.
	Events() ([]Event, error)

	// Submit renders the drained draw queue of one frame. Entries must be
	// rendered in order: later entries layer above earlier ones.
	Submit(entries []Entry) error

	// SaveFrame persists the most recently submitted frame into dir,
	// indexed by frame. File naming within dir is backend-defined.
	SaveFrame(dir string, frame int) error
}
