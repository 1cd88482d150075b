package search

import (
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pelanor/wordforge/priorityqueue"
	"github.com/pelanor/wordforge/trie"
	"golang.org/x/sync/errgroup"
)

// Callback is invoked at most once per accepted composed result.
// Returning true halts the search. Callbacks execute under a mutex and
// must not call back into the engine.
type Callback func(result string, cfg Config) bool

type queueItem[C any] struct {
	node   *trie.Node
	state  State
	cursor C
}

// Run performs the best-first parallel search described by the engine's
// design: a single scoped worker group walks root under starting,
// advancing via params.KeepGoing and scoring via params.Score, streaming
// accepted results to callback. Run blocks until every spawned worker
// has finished — the "scope joins all workers before the driver returns"
// guarantee — so by the time it returns, callback has already been
// invoked for every result it is ever going to see.
//
// Run never returns an error: a search with no matches simply invokes
// callback zero times.
func Run[C any](root *trie.Node, starting C, params Params[C], cfg Config, callback Callback) {
	pq := priorityqueue.New[queueItem[C]](runtime.GOMAXPROCS(0))
	var done atomic.Bool
	var cbMu sync.Mutex

	pq.Push(priorityqueue.Item[queueItem[C]]{
		Score: 0,
		Value: queueItem[C]{node: root, state: State{}, cursor: starting},
	})

	d := &driver[C]{
		root:     root,
		pq:       pq,
		cfg:      cfg,
		params:   params,
		done:     &done,
		cbMu:     &cbMu,
		callback: callback,
	}

	var g errgroup.Group
	g.Go(func() error {
		d.worker(&g)
		return nil
	})
	_ = g.Wait()
}

type driver[C any] struct {
	root     *trie.Node
	pq       *priorityqueue.ConcurrentPQ[queueItem[C]]
	cfg      Config
	params   Params[C]
	done     *atomic.Bool
	cbMu     *sync.Mutex
	callback Callback
}

// worker implements one per-item step of the search. It pops at most one
// item, processes it, and spawns one further worker per successor it
// pushes — the fork-join shape the spec's search driver describes.
func (d *driver[C]) worker(g *errgroup.Group) {
	if d.cfg.MaxResults != nil && d.done.Load() {
		return
	}

	item, ok := d.pq.TryPop()
	if !ok {
		return
	}
	node, state, cursor := item.Value.node, item.Value.state, item.Value.cursor

	if d.isAcceptedResult(node, state, cursor) {
		if d.emit(node, state) {
			d.done.Store(true)
			d.pq.Clear()
			return
		}
	}

	for it := node.Iterate(); ; {
		child, ok := it.Next()
		if !ok {
			break
		}
		if child.Weight < d.cfg.PruneFreq {
			continue
		}
		newCursor, ok := d.params.KeepGoing(cursor, child.Letter)
		if !ok {
			continue
		}
		score := d.params.Score(child, state) - state.PrevPenalty
		d.pq.Push(priorityqueue.Item[queueItem[C]]{
			Score: score,
			Value: queueItem[C]{node: child, state: state.SameWord(), cursor: newCursor},
		})
		g.Go(func() error {
			d.worker(g)
			return nil
		})
	}

	if d.cfg.SpacePenalty != nil &&
		node.IsTerminal &&
		node.Freq > d.cfg.PruneFreq &&
		state.NumSpaces < d.cfg.SpacesAllowed &&
		state.CurrentWordLen >= d.cfg.MinWordLen {
		penalty := *d.cfg.SpacePenalty
		score := d.params.Score(d.root, state) - state.PrevPenalty - penalty
		newState := state.NewWord(node, d.cfg)
		d.pq.Push(priorityqueue.Item[queueItem[C]]{
			Score: score,
			Value: queueItem[C]{node: d.root, state: newState, cursor: cursor},
		})
		g.Go(func() error {
			d.worker(g)
			return nil
		})
	}
}

func (d *driver[C]) isAcceptedResult(node *trie.Node, state State, cursor C) bool {
	return node.IsTerminal &&
		node.Freq > d.cfg.PruneFreq &&
		d.params.Accept(cursor) &&
		state.CurrentWordLen >= d.cfg.MinWordLen
}

// emit builds the composed result string for node/state and invokes the
// callback under cbMu, returning the callback's halt decision.
func (d *driver[C]) emit(node *trie.Node, state State) bool {
	parts := make([]string, 0, len(state.PrevWords)+1)
	for _, w := range state.PrevWords {
		parts = append(parts, w.Path)
	}
	parts = append(parts, node.Path)
	result := strings.Join(parts, " ")

	d.cbMu.Lock()
	defer d.cbMu.Unlock()
	return d.callback(result, d.cfg)
}
