// Package sketch is a runtime for generative art in Go.
//
// # Overview
//
// A sketch is a user-defined visual algorithm that produces one frame per
// iteration of the run loop. The runtime owns the per-run state (frame
// counter, deterministic RNG, current seed), drives the draw/step protocol,
// and hands each frame's ordered draw queue to a render backend.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/sketch"
//		"github.com/gogpu/sketch/backend/software"
//	)
//
//	type Square struct{}
//
//	func (Square) Draw(ctx *sketch.Context) (*sketch.Canvas, error) {
//		c := ctx.NewCanvas()
//		p := sketch.NewPath()
//		p.Rectangle(100, 100, 300, 300)
//		return c, c.Draw(sketch.NewStyle(sketch.RGB(1, 0, 0)), sketch.Filled{Element: p})
//	}
//
//	func main() {
//		cfg := sketch.Config{Size: 512}
//		b := software.New(software.WithFrameLimit(1))
//		if err := sketch.Run(cfg, b, Square{}); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Determinism
//
// Each run draws a seed (from Config.Seed, or at random) and derives the
// run's RNG from it. A sketch that is a pure function of the frame counter
// and RNG draws reproduces the same frames for the same seed. Pressing 'r'
// on an interactive backend reseeds the run: a fresh independent seed is
// drawn, the RNG is rebuilt, the frame counter resets to zero, and the
// sketch state is reinitialized through its Seeder implementation.
//
// # Backends
//
// Backends supply input events, receive submitted draw queues, and persist
// captured frames. Three are provided: software (headless raster via
// github.com/gogpu/gg), pdf (vector capture via gofpdf), and fyneui (an
// interactive window). See the backend package for registry-based selection.
package sketch
