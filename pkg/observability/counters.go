package observability

import (
	"sync"
	"time"
)

// Snapshot is a point-in-time copy of [Counters].
type Snapshot struct {
	Transitions  map[string]int `json:"transitions"`
	Resizes      int            `json:"resizes"`
	ColumnMoves  int            `json:"column_moves"`
	RowMoves     int            `json:"row_moves"`
	Requests     int            `json:"requests"`
	Errors       int            `json:"errors"`
	RequestTotal time.Duration  `json:"request_total_ns"`
}

// Counters tallies DnD and HTTP events. It is safe for concurrent use.
type Counters struct {
	mu sync.Mutex
	s  Snapshot
}

// NewCounters creates zeroed counters.
func NewCounters() *Counters {
	return &Counters{s: Snapshot{Transitions: make(map[string]int)}}
}

// OnOperation implements [DnDHooks]. Transitions are keyed by target state.
func (c *Counters) OnOperation(_, to string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.Transitions[to]++
}

// OnColumnResized implements [DnDHooks].
func (c *Counters) OnColumnResized(string, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.Resizes++
}

// OnColumnsMoved implements [DnDHooks].
func (c *Counters) OnColumnsMoved([]string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.ColumnMoves++
}

// OnRowsMoved implements [DnDHooks].
func (c *Counters) OnRowsMoved([]string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.RowMoves++
}

// OnRequest implements [HTTPHooks].
func (c *Counters) OnRequest(string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.Requests++
}

// OnResponse implements [HTTPHooks]. Status codes >= 400 count as errors.
func (c *Counters) OnResponse(_, _ string, status int, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if status >= 400 {
		c.s.Errors++
	}
	c.s.RequestTotal += d
}

// Snapshot returns a copy of the current counts.
func (c *Counters) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.s
	out.Transitions = make(map[string]int, len(c.s.Transitions))
	for k, v := range c.s.Transitions {
		out.Transitions[k] = v
	}
	return out
}

var (
	_ DnDHooks  = (*Counters)(nil)
	_ HTTPHooks = (*Counters)(nil)
)
