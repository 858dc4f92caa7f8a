// Package software provides the headless raster backend. Frames are
// rendered on the CPU through github.com/gogpu/gg and can be captured as
// PNG or TIFF files. Its event stream delivers empty batches, optionally
// closing after a fixed number of frames, which makes it the backend of
// choice for offline rendering and tests.
package software

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"golang.org/x/image/tiff"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/backend"
	"github.com/gogpu/sketch/internal/tess"
)

func init() {
	backend.Register(backend.BackendSoftware, func() sketch.Backend {
		return New()
	})
}

// Format selects the on-disk encoding of captured frames.
type Format int

const (
	// FormatPNG captures frames as PNG files.
	FormatPNG Format = iota
	// FormatTIFF captures frames as uncompressed TIFF files, a lossless
	// archival format suitable for print workflows.
	FormatTIFF
)

// Backend is the headless software backend.
type Backend struct {
	frames     int
	format     Format
	background sketch.RGBA

	dc    *gg.Context
	polls int
}

// Option configures the backend.
type Option func(*Backend)

// WithFrameLimit closes the event stream after n frames, ending the run
// cleanly. Zero means unlimited; the run then ends only when the sketch's
// Step terminates it.
func WithFrameLimit(n int) Option {
	return func(b *Backend) {
		b.frames = n
	}
}

// WithFormat selects the capture file format.
func WithFormat(f Format) Option {
	return func(b *Backend) {
		b.format = f
	}
}

// WithBackground sets the color each frame is cleared to before the draw
// queue is rendered.
func WithBackground(c sketch.RGBA) Option {
	return func(b *Backend) {
		b.background = c
	}
}

// New creates a software backend. By default the event stream never closes,
// frames are cleared to white, and captures are PNG.
func New(opts ...Option) *Backend {
	b := &Backend{background: sketch.White}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Init implements sketch.Backend.
func (b *Backend) Init(cfg sketch.Config) error {
	b.dc = gg.NewContext(cfg.Size, cfg.Size)
	b.polls = 0
	sketch.Logger().Debug("software backend ready",
		slog.Int("size", cfg.Size), slog.Int("frame_limit", b.frames))
	return nil
}

// Close implements sketch.Backend.
func (b *Backend) Close() {
	if b.dc != nil {
		_ = b.dc.Close()
		b.dc = nil
	}
}

// Tessellator implements sketch.Backend.
func (b *Backend) Tessellator() sketch.Tessellator {
	return tess.Tessellator{}
}

// Events implements sketch.Backend. It yields an empty batch per frame and
// closes the stream once the frame limit is reached.
func (b *Backend) Events() ([]sketch.Event, error) {
	if b.frames > 0 && b.polls >= b.frames {
		return nil, sketch.ErrStreamClosed
	}
	b.polls++
	return nil, nil
}

// Submit implements sketch.Backend.
func (b *Backend) Submit(entries []sketch.Entry) error {
	if b.dc == nil {
		return fmt.Errorf("software: backend not initialized")
	}
	bg := b.background
	b.dc.ClearWithColor(gg.RGBA{R: bg.R, G: bg.G, B: bg.B, A: bg.A})
	return tess.RenderGG(b.dc, entries)
}

// SaveFrame implements sketch.Backend.
func (b *Backend) SaveFrame(dir string, frame int) error {
	if b.dc == nil {
		return fmt.Errorf("software: backend not initialized")
	}
	switch b.format {
	case FormatTIFF:
		path := filepath.Join(dir, fmt.Sprintf("%06d.tiff", frame))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("software: create %s: %w", path, err)
		}
		if err := tiff.Encode(f, b.dc.Image(), nil); err != nil {
			_ = f.Close()
			return fmt.Errorf("software: encode %s: %w", path, err)
		}
		return f.Close()
	default:
		path := filepath.Join(dir, fmt.Sprintf("%06d.png", frame))
		if err := b.dc.SavePNG(path); err != nil {
			return fmt.Errorf("software: save %s: %w", path, err)
		}
		return nil
	}
}

// Image returns the most recently rendered frame, or nil before Init.
func (b *Backend) Image() image.Image {
	if b.dc == nil {
		return nil
	}
	return b.dc.Image()
}
