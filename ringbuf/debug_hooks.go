//go:build ringbufdebug

package ringbuf

import "sync/atomic"

// Called after every stored byte.
func (rb *RingBuffer) dbgWrite(overwrote bool) {
	atomic.AddUint32(&rb.stats.Writes, 1)
	if overwrote {
		atomic.AddUint32(&rb.stats.Overwrites, 1)
	}
	// track high-water mark
	used := uint32(rb.Size())
	for {
		max := atomic.LoadUint32(&rb.stats.MaxUsed)
		if used <= max {
			break
		}
		if atomic.CompareAndSwapUint32(&rb.stats.MaxUsed, max, used) {
			break
		}
	}
}

func (rb *RingBuffer) dbgReject() {
	atomic.AddUint32(&rb.stats.Rejected, 1)
}

func (rb *RingBuffer) dbgRead(ok bool) {
	if ok {
		atomic.AddUint32(&rb.stats.Reads, 1)
	} else {
		atomic.AddUint32(&rb.stats.Underflows, 1)
	}
}

func (rb *RingBuffer) dbgReset() {
	atomic.AddUint32(&rb.stats.Resets, 1)
}
