package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-order-desk.git/internal/clock"
)

var fixedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestQueue_FIFO(t *testing.T) {
	q := New(clock.NewFixed(fixedNow))

	assert.True(t, q.IsEmpty())
	_, ok := q.PeekNext()
	assert.False(t, ok)

	q.Enqueue("o1")
	q.Enqueue("o2")
	q.Enqueue("o3")

	id, ok := q.PeekNext()
	require.True(t, ok)
	assert.Equal(t, "o1", id)

	// peek does not remove
	id, _ = q.PeekNext()
	assert.Equal(t, "o1", id)
	assert.Equal(t, 3, q.Len())

	require.True(t, q.Remove("o1"))
	id, _ = q.PeekNext()
	assert.Equal(t, "o2", id)
}

func TestQueue_RemoveAbsentIsNoop(t *testing.T) {
	q := New(clock.NewFixed(fixedNow))
	q.Enqueue("o1")

	assert.False(t, q.Remove("missing"))
	assert.Equal(t, 1, q.Len())

	assert.True(t, q.Remove("o1"))
	assert.False(t, q.Remove("o1"))
	assert.True(t, q.IsEmpty())
}

func TestQueue_RemoveMiddleKeepsOrder(t *testing.T) {
	q := New(clock.NewFixed(fixedNow))
	q.Enqueue("o1")
	q.Enqueue("o2")
	q.Enqueue("o3")

	require.True(t, q.Remove("o2"))

	snap := q.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "o1", snap[0].OrderID)
	assert.Equal(t, "o3", snap[1].OrderID)
}

func TestQueue_SnapshotIsCopy(t *testing.T) {
	q := New(clock.NewFixed(fixedNow))
	q.Enqueue("o1")

	snap := q.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, fixedNow, snap[0].EnqueuedAt)

	snap[0].OrderID = "mutated"
	fresh := q.Snapshot()
	assert.Equal(t, "o1", fresh[0].OrderID)
}
