package main

import (
	"math"

	"github.com/gogpu/sketch"
)

// orbits is the built-in demo: colored discs circling a shared center on
// randomized orbits, with their orbit rings stroked underneath. All
// randomness is drawn from the run context at (re)seed time, so a fixed
// seed reproduces the animation exactly.
type orbits struct {
	bodies []body
}

type body struct {
	radius float64 // orbit radius, fraction of surface size
	size   float64 // disc radius, fraction of surface size
	phase  float64
	speed  float64
	color  sketch.RGBA
}

func newOrbits() *orbits {
	// Placeholder population; real bodies are rolled on the first Draw or
	// on Seed, once a context with the run's RNG exists.
	return &orbits{}
}

func rollBodies(ctx *sketch.Context) []body {
	n := 6 + ctx.Rng.IntN(10)
	bodies := make([]body, n)
	for i := range bodies {
		bodies[i] = body{
			radius: 0.08 + 0.34*ctx.Rng.Float64(),
			size:   0.01 + 0.03*ctx.Rng.Float64(),
			phase:  2 * math.Pi * ctx.Rng.Float64(),
			speed:  (0.2 + 0.8*ctx.Rng.Float64()) / 60,
			color: sketch.RGBA{
				R: 0.2 + 0.8*ctx.Rng.Float64(),
				G: 0.2 + 0.8*ctx.Rng.Float64(),
				B: 0.2 + 0.8*ctx.Rng.Float64(),
				A: 0.9,
			},
		}
	}
	return bodies
}

func (o *orbits) Draw(ctx *sketch.Context) (*sketch.Canvas, error) {
	if o.bodies == nil {
		o.bodies = rollBodies(ctx)
	}

	c := ctx.NewCanvas()
	s := float64(ctx.Config.Size)
	center := sketch.Pt(s/2, s/2)
	ringStyle := sketch.NewStyle(sketch.Gray(0.85))

	for _, b := range o.bodies {
		ring := sketch.NewPath()
		ring.Circle(center.X, center.Y, b.radius*s)
		if err := c.Draw(ringStyle, sketch.Stroked{Element: ring, Thickness: 1}); err != nil {
			return nil, err
		}
	}

	for _, b := range o.bodies {
		angle := b.phase + float64(ctx.Frame)*b.speed*2*math.Pi
		pos := center.Add(sketch.Pt(b.radius*s, 0).Rotate(angle))

		disc := sketch.NewPath()
		disc.Circle(pos.X, pos.Y, b.size*s)
		if err := c.Draw(sketch.NewStyle(b.color), sketch.Filled{Element: disc}); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Step keeps the sketch running forever; motion is a pure function of the
// frame counter, so the replacement state is the same value.
func (o *orbits) Step(ctx *sketch.Context, events []sketch.Event) (sketch.Sketch, error) {
	return o, nil
}

// Seed rolls a fresh set of bodies from the reseeded context.
func (o *orbits) Seed(ctx *sketch.Context) (sketch.Sketch, error) {
	return &orbits{bodies: rollBodies(ctx)}, nil
}
