package sketch

import "fmt"

// Tessellation is backend-defined renderable geometry. The runtime never
// inspects it; it only carries it, in order, from Canvas.Draw to
// Backend.Submit.
type Tessellation any

// Tessellator converts a styled Paint into the backend's renderable form.
// Tessellation happens at Canvas.Draw time so that composition errors abort
// the frame before anything is submitted.
type Tessellator interface {
	Tessellate(style *Style, p Paint) (Tessellation, error)
}

// Entry is one element of a frame's draw queue: a style reference and the
// geometry tessellated against it.
type Entry struct {
	Style    *Style
	Geometry Tessellation
}

// Canvas is the per-frame draw queue. A sketch obtains a fresh one from
// Context.NewCanvas in each Draw call, fills it in paint order, and returns
// it; the runtime drains it exactly once and submits the entries to the
// backend. Entries never survive a frame boundary.
//
// Later entries render above earlier ones; insertion order is the only
// ordering the runtime guarantees.
type Canvas struct {
	tess  Tessellator
	queue []Entry
}

// NewCanvas creates an empty canvas tessellating with t.
func NewCanvas(t Tessellator) *Canvas {
	return &Canvas{tess: t}
}

// Draw tessellates p against style and appends the result to the queue.
func (c *Canvas) Draw(style *Style, p Paint) error {
	if c.tess == nil {
		return fmt.Errorf("sketch: canvas has no tessellator")
	}
	g, err := c.tess.Tessellate(style, p)
	if err != nil {
		return fmt.Errorf("sketch: tessellate: %w", err)
	}
	c.queue = append(c.queue, Entry{Style: style, Geometry: g})
	return nil
}

// Len reports the number of queued entries.
func (c *Canvas) Len() int {
	return len(c.queue)
}

// Drain returns the queued entries in draw order and empties the canvas.
// A second drain observes an empty queue.
func (c *Canvas) Drain() []Entry {
	q := c.queue
	c.queue = nil
	return q
}
