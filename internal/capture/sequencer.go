// Package capture drives the capture-ball throw: a rise to mid-screen
// followed by a burst, after which the ball snaps back to rest.
package capture

import (
	"sync/atomic"
	"time"
)

// State is the phase the sequencer is in
type State int32

const (
	AtRest State = iota
	Rising
	Bursting
)

func (s State) String() string {
	switch s {
	case AtRest:
		return "at_rest"
	case Rising:
		return "rising"
	case Bursting:
		return "bursting"
	default:
		return "unknown"
	}
}

// Motion identifies one of the tweens played during a sequence
type Motion int

const (
	MotionRise Motion = iota
	MotionScale
	MotionFade
)

func (m Motion) String() string {
	switch m {
	case MotionRise:
		return "rise"
	case MotionScale:
		return "scale"
	case MotionFade:
		return "fade"
	default:
		return "unknown"
	}
}

// Timeline constants
const (
	DefaultRiseDuration  = 1000 * time.Millisecond
	DefaultBurstDuration = 500 * time.Millisecond
	BurstScale           = 5.0

	// riseMargin keeps the ball this many pixels short of the vertical center
	riseMargin = 50
)

// Magnitudes are the animated values the render layer applies to the ball
type Magnitudes struct {
	VerticalOffset float64
	Scale          float64
	Opacity        float64
}

// Rest is the ball's pose when no sequence is running
var Rest = Magnitudes{VerticalOffset: 0, Scale: 1, Opacity: 1}

// TargetOffset returns the vertical offset reached at the top of the rise
func TargetOffset(screenHeight int) float64 {
	return -(float64(screenHeight)/2 - riseMargin)
}

// Config configures a Sequencer
type Config struct {
	// ScreenHeight is measured once at startup and never recomputed.
	ScreenHeight  int
	RiseDuration  time.Duration // Default: 1000ms.
	BurstDuration time.Duration // Default: 500ms.

	// OnComplete runs after the sequence finished and the ball is back at rest.
	OnComplete func()
	// OnMotionDone runs when a tween reaches its end, with the time since Trigger.
	OnMotionDone func(m Motion, at time.Duration)
}

func (c *Config) defaults() {
	if c.RiseDuration <= 0 {
		c.RiseDuration = DefaultRiseDuration
	}
	if c.BurstDuration <= 0 {
		c.BurstDuration = DefaultBurstDuration
	}
}

// Sequencer is the capture animation state machine.
// Trigger may be called from any goroutine; Advance and the accessors
// belong to the frame driver.
type Sequencer struct {
	state  atomic.Int32
	target float64

	rise  Tween
	scale Tween
	fade  Tween

	// time since Trigger, in simulated frame time
	clock time.Duration

	onComplete   func()
	onMotionDone func(Motion, time.Duration)
}

// New creates a sequencer at rest
func New(cfg Config) *Sequencer {
	cfg.defaults()
	target := TargetOffset(cfg.ScreenHeight)
	return &Sequencer{
		target:       target,
		rise:         Tween{From: 0, To: target, Duration: cfg.RiseDuration, Curve: Bounce},
		scale:        Tween{From: 1, To: BurstScale, Duration: cfg.BurstDuration, Curve: Ease},
		fade:         Tween{From: 1, To: 0, Duration: cfg.BurstDuration, Curve: Ease},
		onComplete:   cfg.OnComplete,
		onMotionDone: cfg.OnMotionDone,
	}
}

// Trigger starts a sequence. It returns false and changes nothing when a
// sequence is already running.
func (s *Sequencer) Trigger() bool {
	// Tweens and clock are already rewound by New or finish
	return s.state.CompareAndSwap(int32(AtRest), int32(Rising))
}

// Advance plays the timeline forward by dt. Time left over at the end of the
// rise carries into the burst; time left over at the end of the burst is dropped.
func (s *Sequencer) Advance(dt time.Duration) {
	for dt > 0 {
		switch s.State() {
		case Rising:
			left, done := s.rise.Advance(dt)
			s.clock += dt - left
			if !done {
				return
			}
			s.motionDone(MotionRise)
			s.state.Store(int32(Bursting))
			dt = left

		case Bursting:
			start := s.clock
			scaleLeft, scaleDone := s.advanceBurst(&s.scale, MotionScale, start, dt)
			fadeLeft, fadeDone := s.advanceBurst(&s.fade, MotionFade, start, dt)
			if !scaleDone || !fadeDone {
				s.clock = start + dt
				return
			}
			s.clock = start + dt - min(scaleLeft, fadeLeft)
			s.finish()
			return

		default:
			return
		}
	}
}

func (s *Sequencer) advanceBurst(tw *Tween, m Motion, start, dt time.Duration) (time.Duration, bool) {
	if tw.Done() {
		return dt, true
	}
	left, done := tw.Advance(dt)
	if done && s.onMotionDone != nil {
		s.onMotionDone(m, start+dt-left)
	}
	return left, done
}

func (s *Sequencer) motionDone(m Motion) {
	if s.onMotionDone != nil {
		s.onMotionDone(m, s.clock)
	}
}

// finish snaps the ball back to rest without animating and reports completion
func (s *Sequencer) finish() {
	s.rise.Reset()
	s.scale.Reset()
	s.fade.Reset()
	s.clock = 0
	s.state.Store(int32(AtRest))
	if s.onComplete != nil {
		s.onComplete()
	}
}

// State returns the current phase
func (s *Sequencer) State() State {
	return State(s.state.Load())
}

// Busy reports whether a sequence is running
func (s *Sequencer) Busy() bool {
	return s.State() != AtRest
}

// Target returns the vertical offset at the top of the rise
func (s *Sequencer) Target() float64 {
	return s.target
}

// Elapsed returns the time since Trigger, or zero at rest
func (s *Sequencer) Elapsed() time.Duration {
	return s.clock
}

// Magnitudes returns the ball's current pose
func (s *Sequencer) Magnitudes() Magnitudes {
	switch s.State() {
	case Rising:
		return Magnitudes{VerticalOffset: s.rise.Value(), Scale: 1, Opacity: 1}
	case Bursting:
		return Magnitudes{VerticalOffset: s.target, Scale: s.scale.Value(), Opacity: s.fade.Value()}
	default:
		return Rest
	}
}
