// Package loader runs creature fetches one at a time and keeps the last
// successfully loaded creature for display.
package loader

import (
	"context"
	"errors"
	"image"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"creaturecapture/internal/pokeapi"
)

// State is the loader's busy/idle flag
type State int32

const (
	Idle State = iota
	Loading
)

func (s State) String() string {
	if s == Loading {
		return "loading"
	}
	return "idle"
}

var (
	// ErrBusy is returned when a load is requested while another is in flight
	ErrBusy = errors.New("loader: fetch already in flight")
	// ErrInvalidID is returned for identifiers below 1
	ErrInvalidID = errors.New("loader: identifier must be positive")
)

// Fetcher is the network side of a load
type Fetcher interface {
	Pokemon(ctx context.Context, id int) (pokeapi.Item, error)
	Sprite(ctx context.Context, url string) (image.Image, error)
}

// Snapshot is a consistent view of the loader for rendering
type Snapshot struct {
	State State
	// Item is the last creature loaded successfully, nil if none yet.
	Item *pokeapi.Item
	// Failed is set when the last attempt failed and nothing was ever loaded.
	Failed bool
	// Err is the error of the last attempt, nil if it succeeded.
	Err error
}

// Loader fetches one creature at a time
type Loader struct {
	fetcher Fetcher
	logger  *slog.Logger

	state atomic.Int32
	wg    sync.WaitGroup

	mu      sync.RWMutex
	item    *pokeapi.Item
	lastErr error
}

// New creates an idle loader. A nil logger discards output.
func New(fetcher Fetcher, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{
		fetcher: fetcher,
		logger:  logger.With("component", "loader"),
	}
}

// Load starts fetching the creature id in the background. The state is
// Loading when Load returns nil and goes back to Idle once the fetch settles.
func (l *Loader) Load(ctx context.Context, id int) error {
	if id < 1 {
		return ErrInvalidID
	}
	if !l.state.CompareAndSwap(int32(Idle), int32(Loading)) {
		return ErrBusy
	}

	l.wg.Add(1)
	go l.run(ctx, id, uuid.NewString())
	return nil
}

func (l *Loader) run(ctx context.Context, id int, attempt string) {
	defer l.wg.Done()
	// Runs on every exit path, before Wait is released
	defer l.state.Store(int32(Idle))

	log := l.logger.With("id", id, "attempt", attempt)
	start := time.Now()
	log.Debug("loading creature")

	item, err := l.fetcher.Pokemon(ctx, id)
	if err != nil {
		log.Error("failed to load creature", "kind", pokeapi.KindOf(err).String(), "error", err)
		l.mu.Lock()
		l.lastErr = err
		l.mu.Unlock()
		return
	}

	if item.SpriteURL != "" {
		img, err := l.fetcher.Sprite(ctx, item.SpriteURL)
		if err != nil {
			log.Warn("sprite unavailable", "url", item.SpriteURL, "error", err)
		} else {
			item = item.WithSprite(img)
		}
	}

	l.mu.Lock()
	l.item = &item
	l.lastErr = nil
	l.mu.Unlock()

	log.Info("creature loaded", "name", item.Name, "elapsed", time.Since(start))
}

// State returns the busy/idle flag
func (l *Loader) State() State {
	return State(l.state.Load())
}

// Busy reports whether a fetch is in flight
func (l *Loader) Busy() bool {
	return l.State() == Loading
}

// Snapshot returns the current state, item and failure
func (l *Loader) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Snapshot{
		State:  l.State(),
		Item:   l.item,
		Failed: l.item == nil && l.lastErr != nil,
		Err:    l.lastErr,
	}
}

// Wait blocks until no fetch is in flight
func (l *Loader) Wait() {
	l.wg.Wait()
}
