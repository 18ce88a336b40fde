package queue

import (
	"sync"
	"time"

	"github.com/ariefcatur/go-order-desk.git/internal/clock"
)

// Entry is a queued order reference. The queue never looks at order content.
type Entry struct {
	OrderID    string    `json:"orderId"`
	EnqueuedAt time.Time `json:"addedAt"`
}

// Queue is a FIFO worklist of order ids. It performs no de-duplication;
// keeping at most one entry per order is the caller's job.
type Queue struct {
	mu      sync.RWMutex
	clock   clock.Clock
	entries []Entry
}

func New(clk clock.Clock) *Queue {
	return &Queue{clock: clk}
}

func (q *Queue) Enqueue(orderID string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = append(q.entries, Entry{OrderID: orderID, EnqueuedAt: q.clock.Now()})
}

// PeekNext returns the head without removing it.
func (q *Queue) PeekNext() (string, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if len(q.entries) == 0 {
		return "", false
	}
	return q.entries[0].OrderID, true
}

// Remove drops the first entry matching orderID and reports whether one was
// found. Removing an absent id is a no-op.
func (q *Queue) Remove(orderID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.entries {
		if e.OrderID == orderID {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (q *Queue) IsEmpty() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.entries) == 0
}

func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.entries)
}

// Snapshot returns the queued entries in FIFO order, for inspection.
func (q *Queue) Snapshot() []Entry {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return append([]Entry(nil), q.entries...)
}
