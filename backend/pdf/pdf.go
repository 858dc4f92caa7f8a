// Package pdf provides a vector capture backend. Each captured frame is
// written as a single-page PDF built from the frame's draw queue, preserving
// the sketch's geometry as resolution-independent paths. Like the software
// backend it is headless: its event stream delivers empty batches and can
// close after a fixed number of frames.
package pdf

import (
	"fmt"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/backend"
	"github.com/gogpu/sketch/internal/tess"
)

func init() {
	backend.Register(backend.BackendPDF, func() sketch.Backend {
		return New()
	})
}

// Backend is the PDF capture backend.
type Backend struct {
	frames int

	size    float64
	entries []sketch.Entry
	polls   int
}

// Option configures the backend.
type Option func(*Backend)

// WithFrameLimit closes the event stream after n frames. Zero means
// unlimited.
func WithFrameLimit(n int) Option {
	return func(b *Backend) {
		b.frames = n
	}
}

// New creates a PDF backend.
func New(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Init implements sketch.Backend. The page is sized in points, one point
// per sketch pixel.
func (b *Backend) Init(cfg sketch.Config) error {
	b.size = float64(cfg.Size)
	b.entries = nil
	b.polls = 0
	return nil
}

// Close implements sketch.Backend.
func (b *Backend) Close() {
	b.entries = nil
}

// Tessellator implements sketch.Backend.
func (b *Backend) Tessellator() sketch.Tessellator {
	return tess.Tessellator{}
}

// Events implements sketch.Backend.
func (b *Backend) Events() ([]sketch.Event, error) {
	if b.frames > 0 && b.polls >= b.frames {
		return nil, sketch.ErrStreamClosed
	}
	b.polls++
	return nil, nil
}

// Submit implements sketch.Backend. The queue is retained until SaveFrame
// turns it into a page; submitting the next frame replaces it.
func (b *Backend) Submit(entries []sketch.Entry) error {
	for i, e := range entries {
		if _, ok := e.Geometry.(*tess.Mesh); !ok {
			return fmt.Errorf("pdf: entry %d carries foreign geometry %T", i, e.Geometry)
		}
	}
	b.entries = entries
	return nil
}

// SaveFrame implements sketch.Backend. It writes dir/<frame>.pdf containing
// the most recently submitted queue as vector paths, in submission order.
func (b *Backend) SaveFrame(dir string, frame int) error {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: b.size, Ht: b.size},
	})
	doc.AddPage()

	for _, e := range b.entries {
		m := e.Geometry.(*tess.Mesh)
		writeMesh(doc, e.Style, m)
	}

	path := filepath.Join(dir, fmt.Sprintf("%06d.pdf", frame))
	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdf: write %s: %w", path, err)
	}
	return nil
}

func writeMesh(doc *gofpdf.Fpdf, style *sketch.Style, m *tess.Mesh) {
	r, g, bl := colorBytes(style.Color)
	doc.SetAlpha(style.Color.A, "Normal")

	for _, elem := range m.Elements {
		switch el := elem.(type) {
		case sketch.MoveTo:
			doc.MoveTo(el.Point.X, el.Point.Y)
		case sketch.LineTo:
			doc.LineTo(el.Point.X, el.Point.Y)
		case sketch.QuadTo:
			doc.CurveTo(el.Control.X, el.Control.Y, el.Point.X, el.Point.Y)
		case sketch.CubicTo:
			doc.CurveBezierCubicTo(el.Control1.X, el.Control1.Y, el.Control2.X, el.Control2.Y, el.Point.X, el.Point.Y)
		case sketch.Close:
			doc.ClosePath()
		}
	}

	switch m.Op {
	case sketch.CommitFill:
		doc.SetFillColor(r, g, bl)
		if style.FillRule == sketch.FillRuleEvenOdd {
			doc.DrawPath("f*")
		} else {
			doc.DrawPath("F")
		}
	case sketch.CommitStroke:
		doc.SetDrawColor(r, g, bl)
		doc.SetLineWidth(m.Thickness)
		doc.DrawPath("D")
	}
}

func colorBytes(c sketch.RGBA) (r, g, b int) {
	return clamp255(c.R), clamp255(c.G), clamp255(c.B)
}

func clamp255(v float64) int {
	x := int(v*255 + 0.5)
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
