// Package imagelist maintains a fetched image collection together with its
// loading and error state, re-fetching whenever the filter changes.
//
// The controller keeps previous items visible while a refresh is in flight
// (stale-while-revalidate) and on failure, so a broken refresh degrades to
// stale data plus an error string rather than an empty screen.
package imagelist

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pixhaven/pixctl/pixhaven"
)

// errPrefix is prepended to every fetch failure recorded in LastError.
const errPrefix = "Failed to fetch images. "

// Fetcher is the single capability the controller needs from the API client.
type Fetcher interface {
	GetAllImages(ctx context.Context, filter pixhaven.ImageFilter) ([]pixhaven.Image, error)
}

// State is one observable snapshot of the controller.
type State struct {
	// Images holds the collection from the most recently completed
	// successful cycle, in server order.
	Images []pixhaven.Image
	// Loading reports whether a fetch cycle is in flight. While true,
	// Images still reflects the previous completed cycle.
	Loading bool
	// LastError is the display message of the most recent failure, empty
	// after a successful cycle.
	LastError string
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnChange registers a callback invoked after every state transition.
// It runs on the controller's own goroutine and must not block for long.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

type fetchResult struct {
	images []pixhaven.Image
	err    error
}

// Controller owns the list-fetch state machine. All state transitions happen
// on a single event-loop goroutine: filter changes and manual refetches
// arrive as triggers, each trigger launches one fetch, and completions are
// applied in the order they finish. Overlapping cycles are not sequenced
// against each other, so when filters change faster than fetches complete,
// the state reflects whichever cycle finished last.
type Controller struct {
	fetcher  Fetcher
	logger   zerolog.Logger
	onChange func(State)

	mu     sync.Mutex
	state  State
	filter pixhaven.ImageFilter

	triggers  chan pixhaven.ImageFilter
	results   chan fetchResult
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a controller and immediately starts the first fetch cycle for
// the initial filter. Callers must Close the controller when done with it.
func New(fetcher Fetcher, initial pixhaven.ImageFilter, logger zerolog.Logger, opts ...Option) *Controller {
	c := &Controller{
		fetcher:  fetcher,
		logger:   logger,
		state:    State{Loading: true},
		filter:   initial,
		triggers: make(chan pixhaven.ImageFilter, 16),
		results:  make(chan fetchResult, 16),
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	go c.loop()
	c.triggers <- initial
	return c
}

// SetFilter updates the filter. Equality is checked field by field; an
// unchanged filter is a no-op, any change schedules exactly one new cycle.
func (c *Controller) SetFilter(filter pixhaven.ImageFilter) {
	c.mu.Lock()
	if c.filter.Equal(filter) {
		c.mu.Unlock()
		return
	}
	c.filter = filter
	c.mu.Unlock()

	c.trigger(filter)
}

// Refetch schedules a new cycle with the current filter unconditionally.
func (c *Controller) Refetch() {
	c.mu.Lock()
	filter := c.filter
	c.mu.Unlock()

	c.trigger(filter)
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close stops the event loop. In-flight fetches are abandoned; their
// completions are discarded.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *Controller) trigger(filter pixhaven.ImageFilter) {
	select {
	case c.triggers <- filter:
	case <-c.done:
	}
}

func (c *Controller) loop() {
	for {
		// Shutdown wins over queued work.
		select {
		case <-c.done:
			return
		default:
		}

		select {
		case filter := <-c.triggers:
			select {
			case <-c.done:
				return
			default:
			}
			c.beginCycle(filter)
		case result := <-c.results:
			c.applyResult(result)
		case <-c.done:
			return
		}
	}
}

// beginCycle flips the state to loading and launches one fetch. Items are
// left untouched until the cycle completes.
func (c *Controller) beginCycle(filter pixhaven.ImageFilter) {
	c.mu.Lock()
	c.state.Loading = true
	snapshot := c.state
	c.mu.Unlock()
	c.notify(snapshot)

	go func() {
		images, err := c.fetcher.GetAllImages(context.Background(), filter)
		select {
		case c.results <- fetchResult{images: images, err: err}:
		case <-c.done:
		}
	}()
}

// applyResult records a completed cycle. On failure the previous items are
// retained and only the error message is updated.
func (c *Controller) applyResult(result fetchResult) {
	c.mu.Lock()
	c.state.Loading = false
	if result.err != nil {
		c.state.LastError = errPrefix + result.err.Error()
		c.logger.Warn().Err(result.err).Msg("Image list fetch failed")
	} else {
		c.state.Images = result.images
		c.state.LastError = ""
		c.logger.Debug().Int("count", len(result.images)).Msg("Image list refreshed")
	}
	snapshot := c.state
	c.mu.Unlock()
	c.notify(snapshot)
}

func (c *Controller) notify(state State) {
	if c.onChange != nil {
		c.onChange(state)
	}
}
