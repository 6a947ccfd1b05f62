package capture

import (
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

const frame = time.Second / 60

type motionLog struct {
	at map[Motion]time.Duration
}

func newTestSequencer(height int) (*Sequencer, *int, *motionLog) {
	completed := 0
	log := &motionLog{at: make(map[Motion]time.Duration)}
	seq := New(Config{
		ScreenHeight: height,
		OnComplete:   func() { completed++ },
		OnMotionDone: func(m Motion, at time.Duration) { log.at[m] = at },
	})
	return seq, &completed, log
}

func TestTargetOffset(t *testing.T) {
	cases := map[int]float64{
		800: -350,
		640: -270,
		100: 0,
	}
	for height, want := range cases {
		if got := TargetOffset(height); got != want {
			t.Errorf("TargetOffset(%d): expected %v, got %v", height, want, got)
		}
	}

	seq := New(Config{ScreenHeight: 800})
	if seq.Target() != -350 {
		t.Errorf("Expected sequencer target -350, got %v", seq.Target())
	}
}

func TestNewSequencerAtRest(t *testing.T) {
	seq := New(Config{ScreenHeight: 800})

	if seq.State() != AtRest {
		t.Errorf("Expected initial state AtRest, got %s", seq.State())
	}
	if seq.Busy() {
		t.Error("New sequencer should not be busy")
	}
	if seq.Magnitudes() != Rest {
		t.Errorf("Expected rest magnitudes, got %+v", seq.Magnitudes())
	}

	// Advancing at rest does nothing
	seq.Advance(time.Second)
	if seq.State() != AtRest || seq.Elapsed() != 0 {
		t.Errorf("Advance at rest should be a no-op, state %s elapsed %v", seq.State(), seq.Elapsed())
	}
}

func TestFullSequenceReturnsToRest(t *testing.T) {
	seq, completed, _ := newTestSequencer(800)

	if !seq.Trigger() {
		t.Fatal("Trigger at rest should start a sequence")
	}
	if seq.State() != Rising {
		t.Fatalf("Expected Rising after trigger, got %s", seq.State())
	}

	for i := 0; i < 200 && seq.Busy(); i++ {
		seq.Advance(frame)
	}

	if seq.State() != AtRest {
		t.Errorf("Expected AtRest after sequence, got %s", seq.State())
	}
	if *completed != 1 {
		t.Errorf("Expected exactly one completion, got %d", *completed)
	}
	if seq.Magnitudes() != (Magnitudes{VerticalOffset: 0, Scale: 1, Opacity: 1}) {
		t.Errorf("Expected magnitudes (0, 1, 1), got %+v", seq.Magnitudes())
	}

	// A second sequence plays the same way
	if !seq.Trigger() {
		t.Fatal("Trigger after completion should start a new sequence")
	}
	seq.Advance(2 * time.Second)
	if *completed != 2 {
		t.Errorf("Expected two completions, got %d", *completed)
	}
}

func TestPhaseTiming(t *testing.T) {
	steps := map[string]time.Duration{
		"60fps":      frame,
		"7ms":        7 * time.Millisecond,
		"1ms":        time.Millisecond,
		"single_big": 10 * time.Second,
	}

	for name, step := range steps {
		t.Run(name, func(t *testing.T) {
			seq, completed, log := newTestSequencer(800)
			seq.Trigger()
			for i := 0; i < 10000 && seq.Busy(); i++ {
				seq.Advance(step)
			}

			if *completed != 1 {
				t.Fatalf("Expected one completion, got %d", *completed)
			}
			if log.at[MotionRise] != DefaultRiseDuration {
				t.Errorf("Expected rise to end at %v, got %v", DefaultRiseDuration, log.at[MotionRise])
			}
			end := DefaultRiseDuration + DefaultBurstDuration
			if log.at[MotionScale] != end {
				t.Errorf("Expected scale to end at %v, got %v", end, log.at[MotionScale])
			}
			if log.at[MotionFade] != log.at[MotionScale] {
				t.Errorf("Scale and fade should finish together, got %v and %v", log.at[MotionScale], log.at[MotionFade])
			}
		})
	}
}

func TestBurstStartsOnlyAfterRise(t *testing.T) {
	seq, _, _ := newTestSequencer(800)
	seq.Trigger()

	seq.Advance(999 * time.Millisecond)
	if seq.State() != Rising {
		t.Fatalf("Expected Rising at 999ms, got %s", seq.State())
	}
	if m := seq.Magnitudes(); m.Scale != 1 || m.Opacity != 1 {
		t.Errorf("Scale and opacity must hold during rise, got %+v", m)
	}

	seq.Advance(time.Millisecond)
	if seq.State() != Bursting {
		t.Fatalf("Expected Bursting at 1000ms, got %s", seq.State())
	}
	m := seq.Magnitudes()
	if m.VerticalOffset != -350 || m.Scale != 1 || m.Opacity != 1 {
		t.Errorf("Expected burst to start at (-350, 1, 1), got %+v", m)
	}
}

func TestRiseOffset(t *testing.T) {
	seq, _, _ := newTestSequencer(800)
	seq.Trigger()

	if v := seq.Magnitudes().VerticalOffset; v != 0 {
		t.Errorf("Expected offset 0 at t=0, got %v", v)
	}

	for seq.State() == Rising {
		v := seq.Magnitudes().VerticalOffset
		if v > 0 || v < -350-1e-9 {
			t.Fatalf("Offset %v outside [-350, 0] at %v", v, seq.Elapsed())
		}
		seq.Advance(time.Millisecond)
	}

	if v := seq.Magnitudes().VerticalOffset; v != -350 {
		t.Errorf("Expected offset -350 at end of rise, got %v", v)
	}
}

func TestBurstMagnitudes(t *testing.T) {
	seq, _, _ := newTestSequencer(800)
	seq.Trigger()
	seq.Advance(1250 * time.Millisecond)

	m := seq.Magnitudes()
	if m.Scale <= 1 || m.Scale >= BurstScale {
		t.Errorf("Expected scale inside (1, 5) mid-burst, got %v", m.Scale)
	}
	if m.Opacity <= 0 || m.Opacity >= 1 {
		t.Errorf("Expected opacity inside (0, 1) mid-burst, got %v", m.Opacity)
	}
	// Same curve and duration, so both tweens share progress
	scaleProgress := (m.Scale - 1) / (BurstScale - 1)
	fadeProgress := 1 - m.Opacity
	if math.Abs(scaleProgress-fadeProgress) > 1e-9 {
		t.Errorf("Expected matching progress, scale %v fade %v", scaleProgress, fadeProgress)
	}
}

func TestTriggerIgnoredWhileRunning(t *testing.T) {
	seq, completed, log := newTestSequencer(800)

	if !seq.Trigger() {
		t.Fatal("First trigger should start")
	}
	if seq.Trigger() {
		t.Error("Immediate second trigger should be ignored")
	}

	seq.Advance(300 * time.Millisecond)
	before := seq.Magnitudes()
	if seq.Trigger() {
		t.Error("Trigger while rising should be ignored")
	}
	if seq.Magnitudes() != before || seq.Elapsed() != 300*time.Millisecond {
		t.Error("Ignored trigger must not disturb the running sequence")
	}

	seq.Advance(900 * time.Millisecond)
	if seq.Trigger() {
		t.Error("Trigger while bursting should be ignored")
	}

	seq.Advance(time.Second)
	if *completed != 1 {
		t.Errorf("Expected one completion, got %d", *completed)
	}
	if log.at[MotionScale] != 1500*time.Millisecond {
		t.Errorf("Expected burst end at 1.5s, got %v", log.at[MotionScale])
	}
}

func TestConcurrentTrigger(t *testing.T) {
	seq := New(Config{ScreenHeight: 800})

	var started atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if seq.Trigger() {
				started.Add(1)
			}
		}()
	}
	wg.Wait()

	if started.Load() != 1 {
		t.Errorf("Expected exactly one trigger to win, got %d", started.Load())
	}
}

func TestStateString(t *testing.T) {
	if AtRest.String() != "at_rest" || Rising.String() != "rising" || Bursting.String() != "bursting" {
		t.Error("Unexpected state names")
	}
	if MotionFade.String() != "fade" {
		t.Errorf("Expected fade, got %s", MotionFade)
	}
}
