package anchor

import (
	"slices"
	"sync"
)

// Channel folds values reported by independent scopes into one value and
// pushes it to subscribers after every change.
type Channel[T any] struct {
	mu     sync.Mutex
	zero   func() T
	reduce func(acc, next T) T

	order     []int // scope ids in opening order
	values    map[int]T
	reported  map[int]bool
	nextScope int

	listeners    []listener[T] // in subscription order
	nextListener int
}

type listener[T any] struct {
	id int
	fn func(T)
}

// NewChannel creates a channel. zero returns the identity value; reduce folds
// the next scope's value into the accumulator.
func NewChannel[T any](zero func() T, reduce func(acc, next T) T) *Channel[T] {
	return &Channel[T]{
		zero:      zero,
		reduce:    reduce,
		values:   make(map[int]T),
		reported: make(map[int]bool),
	}
}

// NewAnchorChannel creates a channel of anchor positions merged by concatenation.
func NewAnchorChannel() *Channel[[]Point] {
	return NewChannel(
		func() []Point { return nil },
		func(acc, next []Point) []Point { return append(acc, next...) },
	)
}

// NewHeightChannel creates a channel of heights merged by summation.
func NewHeightChannel() *Channel[float64] {
	return NewChannel(
		func() float64 { return 0 },
		func(acc, next float64) float64 { return AggregateHeight(acc, next) },
	)
}

// Scope opens a new reporting scope. Its contribution comes after every
// scope opened earlier.
func (c *Channel[T]) Scope() *Scope[T] {
	c.mu.Lock()
	id := c.nextScope
	c.nextScope++
	c.order = append(c.order, id)
	c.mu.Unlock()
	return &Scope[T]{ch: c, id: id}
}

// Value returns the reduced value of all scopes.
func (c *Channel[T]) Value() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valueLocked()
}

// Reported reports whether any open scope has reported a value.
func (c *Channel[T]) Reported() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range c.order {
		if c.reported[id] {
			return true
		}
	}
	return false
}

// Subscribe registers fn for value changes. Subscribers are called in
// subscription order. If a value has already been
// reported, fn is called with it immediately. Returns an unsubscribe function.
func (c *Channel[T]) Subscribe(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	id := c.nextListener
	c.nextListener++
	c.listeners = append(c.listeners, listener[T]{id: id, fn: fn})
	c.mu.Unlock()

	if c.Reported() {
		fn(c.Value())
	}
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.listeners = slices.DeleteFunc(c.listeners, func(l listener[T]) bool { return l.id == id })
	}
}

func (c *Channel[T]) valueLocked() T {
	acc := c.zero()
	for _, id := range c.order {
		if c.reported[id] {
			acc = c.reduce(acc, c.values[id])
		}
	}
	return acc
}

func (c *Channel[T]) set(id int, update func(T) T) {
	c.mu.Lock()
	if !c.isOpen(id) {
		c.mu.Unlock()
		return
	}
	current, ok := c.values[id]
	if !ok {
		current = c.zero()
	}
	c.values[id] = update(current)
	c.reported[id] = true
	c.notifyUnlock()
}

func (c *Channel[T]) remove(id int) {
	c.mu.Lock()
	for i, open := range c.order {
		if open == id {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}
	hadValue := c.reported[id]
	delete(c.values, id)
	delete(c.reported, id)
	if !hadValue {
		c.mu.Unlock()
		return
	}
	c.notifyUnlock()
}

func (c *Channel[T]) isOpen(id int) bool {
	for _, open := range c.order {
		if open == id {
			return true
		}
	}
	return false
}

// notifyUnlock computes the value, releases the lock and then calls listeners.
func (c *Channel[T]) notifyUnlock() {
	value := c.valueLocked()
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()
	for _, l := range listeners {
		l.fn(value)
	}
}

// Scope is one reporting subtree of a Channel.
type Scope[T any] struct {
	ch *Channel[T]
	id int
}

// Report replaces this scope's contribution.
func (s *Scope[T]) Report(value T) {
	s.ch.set(s.id, func(T) T { return value })
}

// Update transforms this scope's contribution in place.
func (s *Scope[T]) Update(fn func(T) T) {
	s.ch.set(s.id, fn)
}

// Close removes this scope's contribution. Reports after Close are dropped.
func (s *Scope[T]) Close() {
	s.ch.remove(s.id)
}

// Register appends one anchor position to an anchor scope, in traversal order.
func Register(s *Scope[[]Point], p Point) {
	s.Update(func(ps []Point) []Point {
		out := make([]Point, len(ps), len(ps)+1)
		copy(out, ps)
		return append(out, p)
	})
}
