// Package screen ties the creature loader to the capture sequencer: each
// completed throw advances to the next creature and loads it.
package screen

import (
	"context"
	"errors"
	"image"
	"io"
	"log/slog"
	"math"
	"time"

	"creaturecapture/internal/capture"
	"creaturecapture/internal/loader"
)

// ErrIdentifierExhausted is recorded when the identifier cannot advance further
var ErrIdentifierExhausted = errors.New("screen: identifier exhausted")

// Loader is the part of loader.Loader the screen needs
type Loader interface {
	Load(ctx context.Context, id int) error
	Busy() bool
	Snapshot() loader.Snapshot
}

// Config configures a Screen
type Config struct {
	ScreenHeight int
	StartID      int    // Default: 1.
	Language     string // Default: "en".
}

func (c *Config) defaults() {
	if c.StartID < 1 {
		c.StartID = 1
	}
	if c.Language == "" {
		c.Language = "en"
	}
}

// View is everything the render layer draws for one frame
type View struct {
	Title   string
	ID      int
	Loading bool
	Failed  bool
	// Name is upper-cased, empty when nothing has loaded
	Name   string
	Sprite image.Image
	// Message replaces the creature panel while loading or after failures
	Message string

	Button        string
	ButtonEnabled bool

	Phase capture.State
	Ball  capture.Magnitudes
}

// Screen is the single-screen controller. All methods except Throw must be
// called from the frame driver's goroutine.
type Screen struct {
	id     int
	loader Loader
	seq    *capture.Sequencer
	text   *Localization
	logger *slog.Logger

	completed bool
	err       error
}

// New creates a screen. Start must be called to load the first creature.
func New(cfg Config, l Loader, logger *slog.Logger) *Screen {
	cfg.defaults()
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Screen{
		id:     cfg.StartID,
		loader: l,
		text:   NewLocalization(),
		logger: logger.With("component", "screen"),
	}
	s.text.SetLanguage(cfg.Language)
	s.seq = capture.New(capture.Config{
		ScreenHeight: cfg.ScreenHeight,
		OnComplete:   func() { s.completed = true },
		OnMotionDone: func(m capture.Motion, at time.Duration) {
			s.logger.Debug("motion done", "motion", m.String(), "at", at)
		},
	})
	return s
}

// Start loads the creature for the starting identifier
func (s *Screen) Start(ctx context.Context) error {
	return s.load(ctx)
}

// Throw starts a capture sequence. It is ignored while a sequence runs or
// while a creature is loading, so completing a throw can never overlap fetches.
func (s *Screen) Throw() bool {
	if s.loader.Busy() {
		s.logger.Debug("throw ignored, loading", "id", s.id)
		return false
	}
	if !s.seq.Trigger() {
		s.logger.Debug("throw ignored, sequence running", "id", s.id)
		return false
	}
	s.logger.Debug("throw started", "id", s.id)
	return true
}

// Tick advances the animation by dt and, when a sequence just completed,
// moves to the next creature.
func (s *Screen) Tick(ctx context.Context, dt time.Duration) {
	s.seq.Advance(dt)
	if !s.completed {
		return
	}
	s.completed = false

	if s.id == math.MaxInt {
		s.err = ErrIdentifierExhausted
		s.logger.Error("cannot advance identifier", "id", s.id, "error", s.err)
		return
	}
	s.id++
	if err := s.load(ctx); err != nil {
		s.logger.Error("next creature not requested", "id", s.id, "error", err)
	}
}

func (s *Screen) load(ctx context.Context) error {
	return s.loader.Load(ctx, s.id)
}

// ID returns the current identifier
func (s *Screen) ID() int {
	return s.id
}

// Sequencer exposes the capture sequencer for read-only inspection
func (s *Screen) Sequencer() *capture.Sequencer {
	return s.seq
}

// Err returns the last controller error, such as ErrIdentifierExhausted
func (s *Screen) Err() error {
	return s.err
}

// View builds the frame's view model
func (s *Screen) View() View {
	snap := s.loader.Snapshot()
	v := View{
		Title:   s.text.Text(KeyTitle),
		ID:      s.id,
		Loading: snap.State == loader.Loading,
		Failed:  snap.Failed,
		Button:  s.text.Text(KeyThrow),
		Phase:   s.seq.State(),
		Ball:    s.seq.Magnitudes(),
	}
	v.ButtonEnabled = !v.Loading && !s.seq.Busy()

	switch {
	case v.Loading:
		v.Message = s.text.Text(KeyLoading)
	case snap.Item != nil:
		v.Name = snap.Item.DisplayName()
		v.Sprite = snap.Item.Sprite
	default:
		v.Message = s.text.Text(KeyFailed)
	}
	if errors.Is(s.err, ErrIdentifierExhausted) {
		v.Message = s.text.Text(KeyExhausted)
	}
	return v
}
