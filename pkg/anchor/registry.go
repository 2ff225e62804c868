package anchor

import "sync"

// Key namespaces anchor channels so several sheets can coexist.
type Key string

// DefaultKey is used by sheets and anchors that do not name a key.
const DefaultKey Key = "default"

// Registry owns one anchor channel per key.
type Registry struct {
	mu       sync.Mutex
	channels map[Key]*Channel[[]Point]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{channels: make(map[Key]*Channel[[]Point])}
}

// Anchors returns the channel for key, creating it on first use.
// An empty key maps to DefaultKey.
func (r *Registry) Anchors(key Key) *Channel[[]Point] {
	if key == "" {
		key = DefaultKey
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.channels[key]
	if !ok {
		ch = NewAnchorChannel()
		r.channels[key] = ch
	}
	return ch
}

// Keys returns the keys that have a channel, in no particular order.
func (r *Registry) Keys() []Key {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]Key, 0, len(r.channels))
	for k := range r.channels {
		keys = append(keys, k)
	}
	return keys
}
