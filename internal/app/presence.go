package app

import "sync/atomic"

// Presence tracks the process-wide count of connected participants.
// Purely informational; nothing else depends on it.
type Presence struct {
	online atomic.Int64
}

func NewPresence() *Presence { return &Presence{} }

// Inc returns the count after the new connection is counted.
func (p *Presence) Inc() int64 { return p.online.Add(1) }

// Dec returns the count after the departed connection is removed.
func (p *Presence) Dec() int64 { return p.online.Add(-1) }

func (p *Presence) Online() int64 { return p.online.Load() }
