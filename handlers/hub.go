package handlers

import (
	// Go Internal Packages
	"context"
	"sync"
	"sync/atomic"

	// Local Packages
	models "fraud-dash/models"

	// External Packages
	"go.uber.org/zap"
)

// LiveFeed is the part of feed.LiveFeed the transport needs.
type LiveFeed interface {
	Start(ctx context.Context)
	Stop()
	Active() bool
	Capacity() int
	Snapshot() []models.Transaction
	Subscribe(buffer int) (<-chan models.Transaction, func())
}

// Hub ties the feed's activation to its viewers: the first viewer to join
// starts the feed and the last one to leave stops it. With keepAlive the feed
// runs from Open until Close regardless of viewers.
type Hub struct {
	logger    *zap.Logger
	feed      LiveFeed
	base      context.Context
	keepAlive bool

	mu      sync.Mutex
	viewers atomic.Int32
	closed  bool
}

func NewHub(ctx context.Context, logger *zap.Logger, feed LiveFeed, keepAlive bool) *Hub {
	return &Hub{logger: logger, feed: feed, base: ctx, keepAlive: keepAlive}
}

// Open starts an always-on feed. It is a no-op otherwise.
func (h *Hub) Open() {
	if h.keepAlive {
		h.feed.Start(h.base)
	}
}

// Join registers a viewer and reports false once the hub is closed.
func (h *Hub) Join() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.join()
}

// Watch joins and subscribes in one step, so a Close racing the viewer either
// refuses it or closes its subscription. The viewer must call Leave after
// cancel.
func (h *Hub) Watch(buffer int) (<-chan models.Transaction, func(), bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.join() {
		return nil, nil, false
	}
	updates, cancel := h.feed.Subscribe(buffer)
	return updates, cancel, true
}

func (h *Hub) join() bool {
	if h.closed {
		return false
	}
	if h.viewers.Add(1) == 1 && !h.keepAlive {
		h.logger.Info("first viewer joined, activating live feed")
		h.feed.Start(h.base)
	}
	return true
}

// Leave unregisters a viewer.
func (h *Hub) Leave() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.viewers.Load() == 0 {
		return
	}
	if h.viewers.Add(-1) == 0 && !h.keepAlive {
		h.logger.Info("last viewer left, deactivating live feed")
		h.feed.Stop()
	}
}

// Close stops the feed for good; later joins are refused.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	h.feed.Stop()
}

// Viewers never waits on a feed transition in progress.
func (h *Hub) Viewers() int {
	return int(h.viewers.Load())
}

func (h *Hub) Feed() LiveFeed {
	return h.feed
}
