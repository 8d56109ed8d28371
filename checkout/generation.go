package checkout

import "sync"

// generations tracks a monotonically increasing request generation per
// logical key. A network completion only commits if its generation is still
// the current one for its key, so superseded responses can never clobber
// newer state.
type generations struct {
	mu      sync.Mutex
	current map[string]uint64
}

func newGenerations() *generations {
	return &generations{current: make(map[string]uint64)}
}

// next marks a new in-flight request for key and returns its generation.
func (g *generations) next(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current[key]++
	return g.current[key]
}

// isCurrent reports whether gen is still the latest request for key.
func (g *generations) isCurrent(key string, gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current[key] == gen
}
