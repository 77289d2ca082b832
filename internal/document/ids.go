package document

import (
	"sync"

	"github.com/studiowebux/ispcli/internal/types"
)

// IDAllocator hands out identifiers that are distinct from every identifier
// it has been told about
type IDAllocator struct {
	mu   sync.Mutex
	next int64
}

// NewIDAllocator creates an allocator starting at 1
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

// Next returns a fresh identifier
func (a *IDAllocator) Next() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.next
	a.next++
	return id
}

// Observe moves the counter past every identifier used in the document
func (a *IDAllocator) Observe(doc types.Document) {
	a.mu.Lock()
	defer a.mu.Unlock()
	highest := MaxID(doc)
	if highest >= a.next {
		a.next = highest + 1
	}
}

// MaxID returns the largest identifier used anywhere in the document
func MaxID(doc types.Document) int64 {
	var highest int64
	for _, p := range doc {
		if p.ID > highest {
			highest = p.ID
		}
		for _, c := range p.Characteristics {
			if c.ID > highest {
				highest = c.ID
			}
			for _, part := range c.Partitions {
				if part.ID > highest {
					highest = part.ID
				}
			}
		}
	}
	return highest
}
