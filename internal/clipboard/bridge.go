// Package clipboard carries pixel regions between editor operations, and
// between applications, through a shared clipboard slot.
//
// A Bridge is a slot holding at most one Payload. Other processes may replace
// its contents at any moment, so callers read it once per operation and act
// on that snapshot rather than caching it.
//
// Two bridges are provided:
//   - MemoryBridge: a process-wide slot, used by tests and headless runs
//   - SystemBridge: the desktop clipboard, via github.com/atotto/clipboard
package clipboard

import "sync"

// Bridge is a shared slot holding zero or one Payload.
type Bridge interface {
	// Contents returns the current payload, or nil if the slot is empty.
	Contents() (*Payload, error)

	// SetContents replaces the current payload. A nil payload empties the slot.
	SetContents(p *Payload) error
}

// MemoryBridge is an in-process Bridge. It is safe for concurrent use.
type MemoryBridge struct {
	mu      sync.Mutex
	payload *Payload
}

var shared = &MemoryBridge{}

// Shared returns the process-wide MemoryBridge.
func Shared() *MemoryBridge {
	return shared
}

// NewMemoryBridge returns an empty bridge private to the caller.
func NewMemoryBridge() *MemoryBridge {
	return &MemoryBridge{}
}

// Contents implements Bridge.
func (b *MemoryBridge) Contents() (*Payload, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.payload, nil
}

// SetContents implements Bridge.
func (b *MemoryBridge) SetContents(p *Payload) error {
	b.mu.Lock()
	b.payload = p
	b.mu.Unlock()
	return nil
}

var _ Bridge = (*MemoryBridge)(nil)
