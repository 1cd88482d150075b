package priorityqueue

import (
	"math/rand"
	"sync/atomic"
)

// Item is one entry of a ConcurrentPQ: a value ordered by Score,
// descending (higher Score pops first).
type Item[T any] struct {
	Score int64
	Value T
}

// ConcurrentPQ is a bank of N = 2*parallelism independent
// BinaryHeap-backed max-heap shards, sharing a single atomic length
// counter. It trades strict best-first ordering for low contention under
// many concurrent pushers and poppers: Push picks a uniformly random
// shard, and TryPop draws two random shards and returns the larger of
// their two tops. This is the standard relaxed "two-choice" parallel
// heap: popped order is only approximately descending by Score.
//
// ConcurrentPQ is safe for concurrent use by any number of goroutines.
type ConcurrentPQ[T any] struct {
	shards []*BinaryHeap[Item[T]]
	length atomic.Int64
}

// New returns a ConcurrentPQ with 2*parallelism shards (at least 2).
// parallelism is typically runtime.GOMAXPROCS(0).
func New[T any](parallelism int) *ConcurrentPQ[T] {
	n := parallelism * 2
	if n < 2 {
		n = 2
	}
	shards := make([]*BinaryHeap[Item[T]], n)
	for i := range shards {
		shards[i] = NewBinaryHeapWithComparator(func(a, b Item[T]) bool {
			return a.Score > b.Score
		})
	}
	return &ConcurrentPQ[T]{shards: shards}
}

// Push inserts item into a uniformly randomly chosen shard.
//
// Complexity: O(log n) in the chosen shard's size.
func (q *ConcurrentPQ[T]) Push(item Item[T]) {
	shard := q.shards[rand.Intn(len(q.shards))]
	shard.Add(item)
	q.length.Add(1)
}

// randNonEmpty repeatedly draws a random shard until it finds one that is
// non-empty, or gives up once the queue's aggregate length has dropped to
// claimed or below (meaning there is nothing left worth finding). It
// returns the winning shard (still referenced, not locked — BinaryHeap
// guards its own state) or (nil, false).
func (q *ConcurrentPQ[T]) randNonEmpty(claimed int64) (*BinaryHeap[Item[T]], bool) {
	for {
		shard := q.shards[rand.Intn(len(q.shards))]
		if !shard.IsEmpty() {
			return shard, true
		}
		if q.length.Load() <= claimed {
			return nil, false
		}
	}
}

// TryPop removes and returns the higher-Score of two randomly drawn
// shards' tops, or reports false if the queue is (or appears to be)
// empty. Appearing empty under a race with a concurrent Push or Pop is
// expected and not an error: callers treat a false result as "possibly
// done" and rely on the scope-join of all workers to detect true
// completion.
//
// Complexity: O(log n) in the winning shard's size.
func (q *ConcurrentPQ[T]) TryPop() (Item[T], bool) {
	var zero Item[T]
	if q.length.Load() <= 0 {
		return zero, false
	}

	q1, ok1 := q.randNonEmpty(0)
	q2 := q.shards[rand.Intn(len(q.shards))]

	q1Empty := !ok1
	q2Empty := q2.IsEmpty()
	if q1Empty && q2Empty {
		return zero, false
	}

	winner := q2
	switch {
	case q1Empty:
		winner = q2
	case q2Empty:
		winner = q1
	default:
		top1, err1 := q1.Peek()
		top2, err2 := q2.Peek()
		if err1 == nil && (err2 != nil || top1.Score > top2.Score) {
			winner = q1
		} else {
			winner = q2
		}
	}

	item, err := winner.Poll()
	if err != nil {
		// Another goroutine won the race and drained winner between our
		// emptiness check and this poll; treat it the same as "possibly
		// done" rather than panicking.
		return zero, false
	}
	q.length.Add(-1)
	return item, true
}

// Clear drains every shard and resets the aggregate length counter.
// Used on early termination (see package search): after Clear, a
// subsequent TryPop observes an empty queue rather than spinning forever
// against a stale length counter.
//
// Complexity: O(N) shard clears.
func (q *ConcurrentPQ[T]) Clear() {
	for _, shard := range q.shards {
		shard.Clear()
	}
	q.length.Store(0)
}
