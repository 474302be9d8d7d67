// Package feed owns the live transaction feed: a bounded newest-first list
// that gains one synthetic record per interval while the feed is active.
package feed

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	// Local Packages
	errors "fraud-dash/errors"
	models "fraud-dash/models"
	generator "fraud-dash/services/generator"

	// External Packages
	"go.uber.org/zap"
)

// Sink receives every record the feed produces, e.g. a kafka topic.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, records []models.Transaction) error
}

// SnapshotStore keeps the collection across deactivation when preservation is on.
type SnapshotStore interface {
	Save(ctx context.Context, records []models.Transaction) error
	Load(ctx context.Context) ([]models.Transaction, error)
}

type DeadLetterQueue interface {
	Send(ctx context.Context, records []models.Record) error
}

type Options struct {
	Capacity          int
	InitialSize       int
	Interval          time.Duration
	PreserveOnRestart bool
	SinkTimeout       time.Duration
}

func DefaultOptions() Options {
	return Options{
		Capacity:    20,
		InitialSize: 10,
		Interval:    3 * time.Second,
		SinkTimeout: 2 * time.Second,
	}
}

type LiveFeed struct {
	logger    *zap.Logger
	gen       *generator.Generator
	ring      *Ring
	opts      Options
	newTicker TickerFactory
	sinks     []Sink
	snapshots SnapshotStore
	dlq       DeadLetterQueue

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running atomic.Bool

	subsMu  sync.Mutex
	subs    map[int]*subscription
	nextSub int
}

type subscription struct {
	ch   chan models.Transaction
	once sync.Once
}

func (s *subscription) close() {
	s.once.Do(func() { close(s.ch) })
}

type Option func(*LiveFeed)

func WithSinks(sinks ...Sink) Option {
	return func(l *LiveFeed) { l.sinks = append(l.sinks, sinks...) }
}

func WithSnapshotStore(store SnapshotStore) Option {
	return func(l *LiveFeed) { l.snapshots = store }
}

func WithDeadLetterQueue(dlq DeadLetterQueue) Option {
	return func(l *LiveFeed) { l.dlq = dlq }
}

func WithTicker(factory TickerFactory) Option {
	return func(l *LiveFeed) { l.newTicker = factory }
}

func NewLiveFeed(logger *zap.Logger, gen *generator.Generator, opts Options, options ...Option) *LiveFeed {
	l := &LiveFeed{
		logger:    logger,
		gen:       gen,
		ring:      NewRing(opts.Capacity),
		opts:      opts,
		newTicker: NewTimeTicker,
		subs:      make(map[int]*subscription),
	}
	for _, o := range options {
		o(l)
	}
	return l
}

// Initialize replaces the collection with a fresh batch of InitialSize records.
func (l *LiveFeed) Initialize(ctx context.Context) []models.Transaction {
	batch := l.initialize()
	l.deliver(ctx, batch)
	return l.ring.Snapshot()
}

func (l *LiveFeed) initialize() []models.Transaction {
	batch := l.gen.Batch(l.opts.InitialSize)
	l.ring.Reset(batch)
	return batch
}

// Tick generates one record and prepends it, truncating to capacity.
func (l *LiveFeed) Tick(ctx context.Context) models.Transaction {
	rec := l.gen.Generate()
	l.ring.Push(rec)
	l.broadcast(rec)
	l.deliver(ctx, []models.Transaction{rec})
	return rec
}

// Start activates the feed: it seeds the collection and begins ticking.
// Calling Start on an active feed is a no-op. A feed whose loop ended because
// its parent context was canceled is torn down and started again.
func (l *LiveFeed) Start(ctx context.Context) {
	var fresh []models.Transaction
	l.mu.Lock()
	if l.cancel != nil {
		if l.running.Load() {
			l.mu.Unlock()
			return
		}
		l.teardown()
	}

	if !l.restore(ctx) {
		fresh = l.initialize()
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticker := l.newTicker(l.opts.Interval)
	l.cancel, l.done = cancel, done
	l.running.Store(true)

	go l.run(loopCtx, ticker, done, fresh)
	l.logger.Info("live feed started",
		zap.Int("records", l.ring.Len()),
		zap.Duration("interval", l.opts.Interval))
	l.mu.Unlock()
}

// Stop deactivates the feed. When it returns the ticker is released and no
// further tick can fire. Stop is safe to call more than once.
func (l *LiveFeed) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel == nil {
		return
	}
	l.teardown()
	l.logger.Info("live feed stopped")
}

// teardown ends the current activation. Callers hold l.mu.
func (l *LiveFeed) teardown() {
	l.cancel()
	<-l.done
	l.cancel, l.done = nil, nil

	if l.opts.PreserveOnRestart && l.snapshots != nil {
		ctx, cancel := context.WithTimeout(context.Background(), l.opts.SinkTimeout)
		if err := l.snapshots.Save(ctx, l.ring.Snapshot()); err != nil {
			l.logger.Error("failed to save feed snapshot", zap.Error(err))
		}
		cancel()
	}
	l.ring.Clear()
	l.closeSubscribers()
}

// Active reports whether the ticker is running. It never waits on Start or Stop.
func (l *LiveFeed) Active() bool {
	return l.running.Load()
}

// Snapshot returns the visible collection, newest first. It is empty after Stop.
func (l *LiveFeed) Snapshot() []models.Transaction {
	return l.ring.Snapshot()
}

func (l *LiveFeed) Capacity() int {
	return l.ring.Capacity()
}

// Subscribe returns a channel receiving every ticked record. Records are
// dropped for a subscriber whose buffer is full. The channel is closed by
// the returned cancel func or when the feed stops.
func (l *LiveFeed) Subscribe(buffer int) (<-chan models.Transaction, func()) {
	l.subsMu.Lock()
	defer l.subsMu.Unlock()

	id := l.nextSub
	l.nextSub++
	sub := &subscription{ch: make(chan models.Transaction, buffer)}
	l.subs[id] = sub

	return sub.ch, func() {
		l.subsMu.Lock()
		delete(l.subs, id)
		l.subsMu.Unlock()
		sub.close()
	}
}

// run delivers the initial batch to sinks, then ticks until ctx is done.
func (l *LiveFeed) run(ctx context.Context, ticker Ticker, done chan struct{}, initial []models.Transaction) {
	defer close(done)
	defer l.running.Store(false)
	defer ticker.Stop()

	l.deliver(ctx, initial)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			if ctx.Err() != nil {
				return
			}
			rec := l.Tick(ctx)
			l.logger.Debug("live feed tick",
				zap.String("id", rec.ID),
				zap.String("status", string(rec.Status)),
				zap.Float64("risk_score", rec.RiskScore))
		}
	}
}

func (l *LiveFeed) restore(ctx context.Context) bool {
	if !l.opts.PreserveOnRestart || l.snapshots == nil {
		return false
	}

	loadCtx, cancel := context.WithTimeout(ctx, l.opts.SinkTimeout)
	defer cancel()

	records, err := l.snapshots.Load(loadCtx)
	if err != nil {
		l.logger.Warn("cannot restore feed snapshot, starting fresh", zap.Error(err))
		return false
	}
	if len(records) == 0 {
		return false
	}
	l.ring.Reset(records)
	return true
}

func (l *LiveFeed) broadcast(rec models.Transaction) {
	l.subsMu.Lock()
	defer l.subsMu.Unlock()

	for id, sub := range l.subs {
		select {
		case sub.ch <- rec:
		default:
			l.logger.Debug("dropping record for slow subscriber", zap.Int("subscriber", id))
		}
	}
}

func (l *LiveFeed) closeSubscribers() {
	l.subsMu.Lock()
	defer l.subsMu.Unlock()

	for id, sub := range l.subs {
		sub.close()
		delete(l.subs, id)
	}
}

func (l *LiveFeed) deliver(ctx context.Context, records []models.Transaction) {
	if len(l.sinks) == 0 || len(records) == 0 {
		return
	}

	for _, sink := range l.sinks {
		sinkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.opts.SinkTimeout)
		err := sink.Deliver(sinkCtx, records)
		cancel()
		if err == nil {
			continue
		}

		err = errors.SinkErr(sink.Name(), len(records), err)
		l.logger.Error("sink delivery failed", zap.String("sink", sink.Name()), zap.Error(err))
		l.deadLetter(ctx, sink.Name(), records)
	}
}

func (l *LiveFeed) deadLetter(ctx context.Context, topic string, records []models.Transaction) {
	if l.dlq == nil {
		return
	}

	failed := make([]models.Record, 0, len(records))
	for _, rec := range records {
		value, err := json.Marshal(rec)
		if err != nil {
			l.logger.Error("failed to marshal record", zap.String("id", rec.ID), zap.Error(err))
			continue
		}
		failed = append(failed, models.Record{Key: []byte(rec.ID), Value: value, Topic: topic})
	}

	dlqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.opts.SinkTimeout)
	defer cancel()
	if err := l.dlq.Send(dlqCtx, failed); err != nil {
		l.logger.Error("failed to dead-letter records", zap.Error(err))
	}
}
