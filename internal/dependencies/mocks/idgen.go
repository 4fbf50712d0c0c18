package mocks

import (
	"fmt"
	"sync"

	"github.com/mcoot/clubregistry/internal/dependencies/idgen"
)

// MockIDGenerator is a deterministic Generator for testing
type MockIDGenerator struct {
	mu sync.Mutex

	// Queued is a queue of ids to return from NewID
	Queued []string
	index  int

	// counter numbers the fallback ids once the queue is drained
	counter int
}

// Ensure MockIDGenerator implements Generator
var _ idgen.Generator = (*MockIDGenerator)(nil)

// NewMockIDGenerator creates a new MockIDGenerator
func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

// NewID returns the next queued id, or a sequential "user-N" id if none remain
func (g *MockIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.index < len(g.Queued) {
		id := g.Queued[g.index]
		g.index++
		return id
	}
	g.counter++
	return fmt.Sprintf("user-%d", g.counter)
}

// Queue adds ids to the result queue
func (g *MockIDGenerator) Queue(ids ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Queued = append(g.Queued, ids...)
}

// Reset clears all queued ids and the fallback counter
func (g *MockIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Queued = nil
	g.index = 0
	g.counter = 0
}
