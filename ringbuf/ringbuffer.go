// ringbuf/ringbuffer.go

// Package ringbuf provides a fixed-capacity circular byte buffer for one writer
// and one reader, typically an interrupt handler that stores received bytes and
// a main loop that drains them.
//
// An explicit full flag disambiguates write == read, so all N slots are usable.
// Write never fails: writing into a full buffer discards the oldest unread byte.
// Put is the strict alternative and refuses the byte instead.
//
// The buffer does no locking. Exactly one context may call the write side
// (Write, Put, TryWrite, WriteAll) and exactly one the read side (Read, Get,
// TryRead, ReadInto). The caller must ensure the two never interleave in the
// middle of an update, for example by writing only from an ISR the reader
// cannot preempt, or by wrapping calls in a critical section or mutex. Reset
// touches both sides and must run while neither is active.
package ringbuf

import (
	"errors"
	"math"
)

// DefaultCapacity suits a short command line received over a UART.
const DefaultCapacity = 10

var (
	ErrFull  = errors.New("ringbuf: buffer full")
	ErrEmpty = errors.New("ringbuf: buffer empty")
)

// RingBuffer is a circular byte buffer with a capacity fixed at construction.
type RingBuffer struct {
	buf slots
	n   uint32

	w    cursor // next slot to write
	_    pad
	r    cursor // next slot to read
	full flag   // set iff n unread bytes are stored

	stats Stats
}

// New returns an empty ring buffer holding up to capacity bytes.
// It panics if capacity is not in [1, math.MaxUint32].
func New(capacity int) *RingBuffer {
	if capacity < 1 || uint64(capacity) > math.MaxUint32 {
		panic("ringbuf: capacity out of range")
	}
	return &RingBuffer{
		buf: make(slots, capacity),
		n:   uint32(capacity),
	}
}

func (rb *RingBuffer) next(i uint32) uint32 {
	i++
	if i >= rb.n {
		i = 0
	}
	return i
}

// Reset empties the buffer, discarding any unread bytes.
func (rb *RingBuffer) Reset() {
	rb.w.set(0)
	rb.r.set(0)
	rb.full.set(false)
	rb.dbgReset()
}

// Cap returns the capacity in bytes.
func (rb *RingBuffer) Cap() int { return int(rb.n) }

// Size returns the number of unread bytes.
func (rb *RingBuffer) Size() int {
	if rb.full.get() {
		return int(rb.n)
	}
	w, r := rb.w.get(), rb.r.get()
	if w >= r {
		return int(w - r)
	}
	return int(rb.n - (r - w))
}

// Free returns how many bytes can be written before the oldest is overwritten.
func (rb *RingBuffer) Free() int { return rb.Cap() - rb.Size() }

// IsFull reports whether the buffer holds Cap() unread bytes.
func (rb *RingBuffer) IsFull() bool { return rb.full.get() }

// IsEmpty reports whether the buffer holds no unread bytes.
func (rb *RingBuffer) IsEmpty() bool {
	return !rb.full.get() && rb.w.get() == rb.r.get()
}

// Write stores value. If the buffer was already full the oldest unread byte is
// dropped to make room. Write never fails.
func (rb *RingBuffer) Write(value byte) {
	wasFull := rb.full.get()

	w := rb.w.get()
	rb.buf.store(w, value) // 1) write data
	w = rb.next(w)
	rb.w.set(w) // 2) publish

	r := rb.r.get()
	if wasFull {
		r = rb.next(r)
		rb.r.set(r)
	}
	if w == r {
		rb.full.set(true)
	}
	rb.dbgWrite(wasFull)
}

// Put stores value unless the buffer is full, in which case it returns false
// and leaves the buffer unchanged.
func (rb *RingBuffer) Put(value byte) bool {
	if rb.full.get() {
		rb.dbgReject()
		return false
	}
	rb.Write(value)
	return true
}

// TryWrite is Put reporting ErrFull.
func (rb *RingBuffer) TryWrite(value byte) error {
	if !rb.Put(value) {
		return ErrFull
	}
	return nil
}

// WriteAll writes every byte of p in order and returns how many unread bytes
// were overwritten to make room.
func (rb *RingBuffer) WriteAll(p []byte) int {
	dropped := 0
	for _, b := range p {
		if rb.full.get() {
			dropped++
		}
		rb.Write(b)
	}
	return dropped
}

// Read moves the oldest unread byte into *out and reports true. On an empty
// buffer it returns false and leaves *out untouched. A nil out discards the
// byte.
func (rb *RingBuffer) Read(out *byte) bool {
	v, ok := rb.Get()
	if ok && out != nil {
		*out = v
	}
	return ok
}

// Get returns the oldest unread byte. If the buffer is empty, it returns (0, false).
func (rb *RingBuffer) Get() (byte, bool) {
	r := rb.r.get()
	if !rb.full.get() && rb.w.get() == r {
		rb.dbgRead(false)
		return 0, false
	}
	v := rb.buf.load(r)  // 1) read current element
	rb.r.set(rb.next(r)) // 2) publish consumption
	rb.full.set(false)
	rb.dbgRead(true)
	return v, true
}

// TryRead is Get reporting ErrEmpty.
func (rb *RingBuffer) TryRead() (byte, error) {
	v, ok := rb.Get()
	if !ok {
		return 0, ErrEmpty
	}
	return v, nil
}

// ReadInto copies up to len(p) unread bytes into p, oldest first, and returns
// the count. It stops early when the buffer runs dry.
func (rb *RingBuffer) ReadInto(p []byte) int {
	n := 0
	for n < len(p) && !rb.IsEmpty() {
		p[n], _ = rb.Get()
		n++
	}
	return n
}
