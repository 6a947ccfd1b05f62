package capture

import "time"

// Tween interpolates a single value from From to To over Duration
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
	Curve    Easing

	elapsed time.Duration
}

// Advance moves the tween forward by dt. It returns the part of dt left over
// after the tween reached its end and whether the tween is done.
func (tw *Tween) Advance(dt time.Duration) (time.Duration, bool) {
	if dt < 0 {
		dt = 0
	}
	remaining := tw.Duration - tw.elapsed
	if dt < remaining {
		tw.elapsed += dt
		return 0, false
	}
	tw.elapsed = tw.Duration
	return dt - remaining, true
}

// Value returns the eased value at the current position
func (tw *Tween) Value() float64 {
	if tw.Done() {
		return tw.To
	}
	if tw.elapsed <= 0 {
		return tw.From
	}
	curve := tw.Curve
	if curve == nil {
		curve = Linear
	}
	p := float64(tw.elapsed) / float64(tw.Duration)
	return tw.From + (tw.To-tw.From)*curve(p)
}

// Done reports whether the tween reached its end
func (tw *Tween) Done() bool {
	return tw.elapsed >= tw.Duration
}

// Elapsed returns the time spent in the tween so far
func (tw *Tween) Elapsed() time.Duration {
	return tw.elapsed
}

// Reset rewinds the tween to its start
func (tw *Tween) Reset() {
	tw.elapsed = 0
}
