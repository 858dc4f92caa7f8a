// Package fyneui provides the interactive windowed backend, built on
// fyne.io/fyne/v2. Typed characters become rune events ('r' triggers a
// reseed), frames are rasterized through github.com/gogpu/gg and blitted to
// the window, and closing the window ends the run cleanly.
//
// Fyne requires its event loop to own the main goroutine, so this backend
// is driven through Main, which runs the sketch loop on a worker goroutine:
//
//	b := fyneui.New(fyneui.WithTitle("orbits"))
//	err := b.Main(cfg, mySketch)
package fyneui

import (
	"fmt"
	"image"
	"image/draw"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/gogpu/gg"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/backend"
	"github.com/gogpu/sketch/internal/tess"
)

func init() {
	backend.Register(backend.BackendFyne, func() sketch.Backend {
		return New()
	})
}

// DefaultPollInterval is the pacing of event batches delivered to the run
// loop.
const DefaultPollInterval = 16 * time.Millisecond

// Backend is the fyne windowed backend.
type Backend struct {
	title    string
	interval time.Duration

	fyneApp fyne.App
	win     fyne.Window
	img     *canvas.Image
	dc      *gg.Context

	runes     chan rune
	done      chan struct{}
	closeOnce sync.Once
}

// Option configures the backend.
type Option func(*Backend)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(b *Backend) {
		b.title = title
	}
}

// WithPollInterval sets how often Events delivers a batch.
func WithPollInterval(d time.Duration) Option {
	return func(b *Backend) {
		b.interval = d
	}
}

// New creates a fyne backend. Drive it with Main.
func New(opts ...Option) *Backend {
	b := &Backend{
		title:    "sketch",
		interval: DefaultPollInterval,
		runes:    make(chan rune, 64),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Main runs s against this backend: the sketch loop runs on a worker
// goroutine while fyne's event loop owns the calling goroutine, which must
// be the main goroutine. It returns the run's result after the window
// closes or the sketch terminates.
func (b *Backend) Main(cfg sketch.Config, s sketch.Sketch, opts ...sketch.Option) error {
	b.fyneApp = app.New()
	b.win = b.fyneApp.NewWindow(b.title)
	b.win.Resize(fyne.NewSize(float32(cfg.Size), float32(cfg.Size)))
	b.win.SetOnClosed(func() {
		b.closeOnce.Do(func() { close(b.done) })
	})
	b.win.Canvas().SetOnTypedRune(func(r rune) {
		select {
		case b.runes <- r:
		default: // drop when the loop lags behind typing
		}
	})

	blank := image.NewRGBA(image.Rect(0, 0, cfg.Size, cfg.Size))
	b.img = canvas.NewImageFromImage(blank)
	b.img.FillMode = canvas.ImageFillContain
	b.win.SetContent(b.img)

	errc := make(chan error, 1)
	go func() {
		errc <- sketch.Run(cfg, b, s, opts...)
		fyne.Do(func() { b.fyneApp.Quit() })
	}()

	b.win.Show()
	b.fyneApp.Run()
	return <-errc
}

// Init implements sketch.Backend. The window is created by Main; Init only
// prepares the raster target.
func (b *Backend) Init(cfg sketch.Config) error {
	if b.win == nil {
		return fmt.Errorf("fyneui: backend must be driven through Main")
	}
	b.dc = gg.NewContext(cfg.Size, cfg.Size)
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

// Events implements sketch.Backend. It paces the loop to the poll interval
// and delivers the runes typed since the previous batch. Closing the window
// closes the stream.
func (b *Backend) Events() ([]sketch.Event, error) {
	timer := time.NewTimer(b.interval)
	defer timer.Stop()

	select {
	case <-b.done:
		return nil, sketch.ErrStreamClosed
	case <-timer.C:
	}

	var events []sketch.Event
	for {
		select {
		case r := <-b.runes:
			events = append(events, sketch.Event{Kind: sketch.EventRune, Rune: r})
		default:
			return events, nil
		}
	}
}

// Submit implements sketch.Backend. The frame is rasterized on the run
// goroutine; only the finished image crosses to the UI thread.
func (b *Backend) Submit(entries []sketch.Entry) error {
	if b.dc == nil {
		return fmt.Errorf("fyneui: backend not initialized")
	}
	b.dc.ClearWithColor(gg.RGBA{R: 1, G: 1, B: 1, A: 1})
	if err := tess.RenderGG(b.dc, entries); err != nil {
		return err
	}

	frame := copyImage(b.dc.Image())
	fyne.Do(func() {
		b.img.Image = frame
		b.img.Refresh()
	})
	return nil
}

// SaveFrame implements sketch.Backend.
func (b *Backend) SaveFrame(dir string, frame int) error {
	if b.dc == nil {
		return fmt.Errorf("fyneui: backend not initialized")
	}
	path := filepath.Join(dir, fmt.Sprintf("%06d.png", frame))
	if err := b.dc.SavePNG(path); err != nil {
		return fmt.Errorf("fyneui: save %s: %w", path, err)
	}
	return nil
}

// copyImage snapshots src so the UI thread never reads a buffer the run
// goroutine is still drawing into.
func copyImage(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
