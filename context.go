package sketch

import "math/rand/v2"

// Context is the mutable per-run state bundle. It is owned by the run loop
// and mutated only between iterations; sketches receive it read-only in
// Draw, Step and Seed.
type Context struct {
	// Config is the run configuration, fixed for the life of the run.
	Config Config

	// Frame counts completed iterations. It starts at zero and resets to
	// zero only on reseed.
	Frame int

	// Rng is the run's deterministic random source. It is rebuilt wholesale
	// from Seed at run start and on every reseed, never reseeded in place.
	Rng *rand.Rand

	// Seed is the seed Rng was built from.
	Seed uint64

	tess Tessellator
}

// NewCanvas returns a fresh empty canvas bound to the run's tessellator.
// Sketches call this at the top of Draw; canvases are single-use.
func (c *Context) NewCanvas() *Canvas {
	return NewCanvas(c.tess)
}

// newRNG derives a deterministic generator from a seed. The same seed always
// yields the same sequence.
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// randomSeed draws a fresh seed, independent of any run state.
func randomSeed() uint64 {
	return rand.Uint64()
}
