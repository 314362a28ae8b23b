package counter

import (
	"fmt"
	"strings"

	"github.com/fission-codes/go-tour/errors"
	"github.com/fission-codes/go-tour/iterator"
	"github.com/fission-codes/go-tour/stats"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	golog "github.com/ipfs/go-log/v2"
)

var log = golog.Logger("go-tour")

// Bound is the last value a BoundedCounter produces.
const Bound uint32 = 5

// BoundedCounter yields 1 through Bound and then stays exhausted.
// A counter has a single owner; Next and Close are not safe for concurrent use.
type BoundedCounter struct {
	count    uint32
	disposed bool
	stats    stats.Stats
	logger   *zap.SugaredLogger
	observer TransitionObserver
}

// TransitionObserver is told about every state change of a counter.
type TransitionObserver interface {
	Transition(event string, fromState string, toState string)
}

// Counter states as reported to a TransitionObserver.
const (
	READY     = "READY"
	COUNTING  = "COUNTING"
	EXHAUSTED = "EXHAUSTED"
	DISPOSED  = "DISPOSED"
)

var _ iterator.CloseIterator[uint32] = (*BoundedCounter)(nil)

// Option configures a BoundedCounter.
type Option func(*BoundedCounter)

// WithStats reports counter events to s under the "counter" context.
// A nil s is ignored.
func WithStats(s stats.Stats) Option {
	return func(c *BoundedCounter) {
		if s != nil {
			c.stats = s.WithContext("counter")
		}
	}
}

// WithLogger replaces the package logger used for the disposal record.
// A nil logger is ignored.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *BoundedCounter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver reports state transitions to o.
func WithObserver(o TransitionObserver) Option {
	return func(c *BoundedCounter) {
		c.observer = o
	}
}

// New returns a counter at zero.
func New(opts ...Option) *BoundedCounter {
	c := &BoundedCounter{
		count:  0,
		logger: &log.SugaredLogger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *BoundedCounter) state() string {
	switch {
	case c.disposed:
		return DISPOSED
	case c.count == 0:
		return READY
	case c.count < Bound:
		return COUNTING
	default:
		return EXHAUSTED
	}
}

func (c *BoundedCounter) record(event string, from string) {
	if c.stats != nil {
		c.stats.Log(event)
	}
	if c.observer != nil {
		c.observer.Transition(strings.ToUpper(event), from, c.state())
	}
}

// Next advances the counter. It returns false once Bound has been produced
// or the counter has been closed, and keeps returning false from then on.
func (c *BoundedCounter) Next() (uint32, bool) {
	if c.disposed {
		return 0, false
	}
	from := c.state()
	if c.count < Bound {
		c.count++
		c.record("next", from)
		return c.count, true
	}
	c.record("exhausted", from)
	return 0, false
}

// Count returns the last value produced, or zero before the first Next.
func (c *BoundedCounter) Count() uint32 {
	return c.count
}

// Close disposes of the counter, logging its final count. Only the first
// call logs; later calls return ErrAlreadyDisposed.
func (c *BoundedCounter) Close() error {
	if c.disposed {
		return errors.ErrAlreadyDisposed
	}
	from := c.state()
	c.disposed = true
	c.logger.Infow("dropping counter", "count", c.count)
	c.record("dispose", from)
	return nil
}

// Use runs fn with a fresh counter and closes it on every exit path.
// fn may close the counter itself. A panic in fn is re-raised after the
// counter has been closed.
func Use(fn func(*BoundedCounter) error, opts ...Option) (err error) {
	c := New(opts...)
	defer func() {
		if !c.disposed {
			err = multierr.Append(err, c.Close())
		}
	}()
	return fn(c)
}

// ZipProductSum pairs one counter with a second counter skipped by one step,
// multiplies each pair, keeps the multiples of three and sums them.
// Both counters are closed before returning.
func ZipProductSum(opts ...Option) (sum uint64, err error) {
	pipeline := iterator.Filter[uint64](
		iterator.Map[iterator.Pair[uint32, uint32], uint64](
			iterator.Zip[uint32, uint32](New(opts...), iterator.Skip[uint32](New(opts...), 1)),
			func(p iterator.Pair[uint32, uint32]) uint64 {
				return uint64(p.First) * uint64(p.Second)
			},
		),
		func(product uint64) bool { return product%3 == 0 },
	)
	defer func() {
		if closeErr := pipeline.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("closing counters: %w", closeErr))
		}
	}()
	return iterator.Sum[uint64](pipeline), nil
}
