package sketch

import "time"

// DefaultFrameDelay is the pause inserted after each iteration.
const DefaultFrameDelay = 16 * time.Millisecond

// Option configures a run.
//
// Example:
//
//	sketch.Run(cfg, b, s,
//		sketch.WithFrameDelay(33*time.Millisecond),
//		sketch.WithSeedObserver(func(seed uint64) { log.Println("seed", seed) }),
//	)
type Option func(*runOptions)

type runOptions struct {
	delay        time.Duration
	seedObserver func(seed uint64)
}

func defaultRunOptions() runOptions {
	return runOptions{delay: DefaultFrameDelay}
}

// WithFrameDelay sets the fixed post-iteration delay. The delay is not
// compensated for time spent drawing and submitting, so the effective frame
// rate runs below nominal under load.
func WithFrameDelay(d time.Duration) Option {
	return func(o *runOptions) {
		o.delay = d
	}
}

// WithSeedObserver registers fn to be called with the run's initial seed and
// with every seed drawn by a reseed. Useful for journaling seeds so a liked
// output can be reproduced later.
func WithSeedObserver(fn func(seed uint64)) Option {
	return func(o *runOptions) {
		o.seedObserver = fn
	}
}
