package feed

import (
	// Go Internal Packages
	"sync"

	// Local Packages
	models "fraud-dash/models"
)

// Ring is a bounded newest-first list of records. Insertion order is
// authoritative, timestamps are never compared.
type Ring struct {
	mu       sync.RWMutex
	records  []models.Transaction
	capacity int
}

func NewRing(capacity int) *Ring {
	return &Ring{capacity: capacity, records: make([]models.Transaction, 0, capacity)}
}

// Reset replaces the contents, keeping at most capacity records from the front.
func (r *Ring) Reset(records []models.Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(records) > r.capacity {
		records = records[:r.capacity]
	}
	r.records = append(make([]models.Transaction, 0, r.capacity), records...)
}

// Push prepends rec and drops whatever falls past capacity.
func (r *Ring) Push(rec models.Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	keep := len(r.records)
	if keep >= r.capacity {
		keep = r.capacity - 1
	}
	next := make([]models.Transaction, 0, r.capacity)
	next = append(next, rec)
	r.records = append(next, r.records[:keep]...)
}

// Clear empties the list.
func (r *Ring) Clear() {
	r.mu.Lock()
	r.records = r.records[:0]
	r.mu.Unlock()
}

// Snapshot returns a copy, newest first.
func (r *Ring) Snapshot() []models.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Transaction, len(r.records))
	copy(out, r.records)
	return out
}

func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

func (r *Ring) Capacity() int {
	return r.capacity
}
