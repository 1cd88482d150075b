package priorityqueue

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

// scoredComparator is exactly the comparator ConcurrentPQ installs on
// every shard (see concurrent.go's New): higher Score pops first.
func scoredComparator[T any](a, b Item[T]) bool {
	return a.Score > b.Score
}

func TestBinaryHeapOperations(t *testing.T) {
	bh := NewBinaryHeap[int]()
	if !bh.IsEmpty() {
		t.Fatalf("expected empty heap")
	}

	for _, v := range []int{10, 5, 30, 20, 40, 35, 15} {
		bh.Add(v)
	}

	if size := bh.Size(); size != 7 {
		t.Fatalf("expected size 7, got %d", size)
	}

	if top, _ := bh.Peek(); top != 40 {
		t.Errorf("expected Peek 40, got %v", top)
	}
	if top, _ := bh.Poll(); top != 40 {
		t.Errorf("expected Poll 40, got %v", top)
	}

	bh.Clear()
	if size := bh.Size(); size != 0 {
		t.Errorf("expected size 0 after Clear, got %d", size)
	}

	if _, err := bh.Peek(); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected %v, got %v", ErrEmpty, err)
	}
	if _, err := bh.Poll(); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected %v, got %v", ErrEmpty, err)
	}
}

// TestBinaryHeapItemOrdering exercises the heap the way ConcurrentPQ's
// shards actually do: Item[T] values ordered by descending Score, as if
// they were priorityqueue.Item[queueItem[C]] entries the search driver pushed.
func TestBinaryHeapItemOrdering(t *testing.T) {
	bh := NewBinaryHeapWithComparator(scoredComparator[string])

	candidates := []Item[string]{
		{Score: 12, Value: "GOOD"},
		{Score: 48, Value: "GOODNESS"},
		{Score: 3, Value: "GO"},
		{Score: 48, Value: "GOODBYE"}, // ties with GOODNESS on Score
	}
	for _, c := range candidates {
		bh.Add(c)
	}

	top, err := bh.Poll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if top.Score != 48 {
		t.Errorf("expected the higher-scored item to pop first, got %+v", top)
	}

	second, err := bh.Poll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Score != 48 {
		t.Errorf("expected the other Score-48 item next, got %+v", second)
	}

	rest := bh.Sort()
	if len(rest) != 2 || rest[0].Value != "GOOD" || rest[1].Value != "GO" {
		t.Errorf("expected remaining items sorted [GOOD, GO], got %+v", rest)
	}
}

func TestBinaryHeapDuplicates(t *testing.T) {
	bh := NewBinaryHeapWithComparator(scoredComparator[string])
	entry := Item[string]{Score: 7, Value: "BYE"}
	for i := 0; i < 3; i++ {
		bh.Add(entry)
	}

	for i := 0; i < 3; i++ {
		val, err := bh.Poll()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if val != entry {
			t.Errorf("expected %+v, got %+v", entry, val)
		}
	}
	if !bh.IsEmpty() {
		t.Error("heap should be empty after polling all duplicates")
	}
}

func TestBinaryHeapSort(t *testing.T) {
	bh := NewBinaryHeap[int]()
	for _, v := range []int{10, 20, 30, 40, 50, 60} {
		bh.Add(v)
	}
	expected := []int{60, 50, 40, 30, 20, 10}
	if result := bh.Sort(); !reflect.DeepEqual(expected, result) {
		t.Errorf("expected %v, got %v", expected, result)
	}
}

// TestBinaryHeapConcurrentPushPop mirrors how a ConcurrentPQ shard is
// actually driven: many goroutines pushing Item[int] values and many
// goroutines draining them concurrently.
func TestBinaryHeapConcurrentPushPop(t *testing.T) {
	bh := NewBinaryHeapWithComparator(scoredComparator[int])
	const n = 1000

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bh.Add(Item[int]{Score: int64(i), Value: i})
		}(i)
	}
	wg.Wait()

	if size := bh.Size(); size != n {
		t.Errorf("expected size %d after concurrent adds, got %d", n, size)
	}

	var drained int
	var drainWg sync.WaitGroup
	var mu sync.Mutex
	for i := 0; i < 50; i++ {
		drainWg.Add(1)
		go func() {
			defer drainWg.Done()
			for {
				_, err := bh.Poll()
				if err != nil {
					return
				}
				mu.Lock()
				drained++
				mu.Unlock()
			}
		}()
	}
	drainWg.Wait()

	if drained != n {
		t.Errorf("expected to drain %d items, drained %d", n, drained)
	}
	if !bh.IsEmpty() {
		t.Error("heap should be empty after draining every pushed item")
	}
}

func TestBinaryHeapRemoveInEmptyHeap(t *testing.T) {
	bh := NewBinaryHeap[int]()
	if _, err := bh.removeAt(1); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected %v, got different error", ErrEmpty)
	}
}
