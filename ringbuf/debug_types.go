//go:build ringbufdebug

package ringbuf

import "sync/atomic"

// Stats holds counters since the last DebugReset.
type Stats struct {
	// Write side
	Writes     uint32 // bytes stored by Write/Put
	Overwrites uint32 // unread bytes dropped by Write on a full buffer
	Rejected   uint32 // Put calls refused on a full buffer

	// Read side
	Reads      uint32 // bytes returned by Read/Get
	Underflows uint32 // reads attempted on an empty buffer

	Resets  uint32 // Reset calls
	MaxUsed uint32 // high-water mark of Size()
}

func (rb *RingBuffer) DebugReset() {
	rb.stats = Stats{}
}

func (rb *RingBuffer) DebugStats() Stats {
	// Copy field by field; the writer may be an ISR updating concurrently.
	return Stats{
		Writes:     atomic.LoadUint32(&rb.stats.Writes),
		Overwrites: atomic.LoadUint32(&rb.stats.Overwrites),
		Rejected:   atomic.LoadUint32(&rb.stats.Rejected),

		Reads:      atomic.LoadUint32(&rb.stats.Reads),
		Underflows: atomic.LoadUint32(&rb.stats.Underflows),

		Resets:  atomic.LoadUint32(&rb.stats.Resets),
		MaxUsed: atomic.LoadUint32(&rb.stats.MaxUsed),
	}
}
