// Package serial models the receive path of an interrupt-driven UART on the
// host: an interrupt handler calls Receive for every byte it pulls off the
// wire, and the main loop polls with Read/ReadByte or blocks with the
// context-aware helpers.
//
// Received bytes land in a ringbuf.RingBuffer with its default drop-oldest
// policy, so a slow reader loses the oldest bytes, never the newest. The ring
// itself is unsynchronized; Port serializes access with a mutex and wakes
// blocked readers through a coalesced notify channel.
package serial

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jangala-dev/tinygo-ringbuf/ringbuf"
)

// DefaultBufferSize is the RX ring capacity used by NewPort when size <= 0.
const DefaultBufferSize = 512

var ErrBufferEmpty = errors.New("serial: rx buffer empty")

type Port struct {
	mu       sync.Mutex
	rx       *ringbuf.RingBuffer
	overruns uint64

	notify    chan struct{} // wake-up hint for blocking reads
	closed    chan struct{} // close signal
	closeOnce sync.Once
}

// NewPort returns an open port whose RX ring holds size bytes.
func NewPort(size int) *Port {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Port{
		rx:     ringbuf.New(size),
		notify: make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
}

// Receive stores one byte. It is the interrupt-handler side and never blocks;
// when the ring is full the oldest unread byte is dropped and counted as an
// overrun.
func (p *Port) Receive(b byte) {
	p.mu.Lock()
	wasEmpty := p.rx.IsEmpty()
	if p.rx.IsFull() {
		p.overruns++
	}
	p.rx.Write(b)
	p.mu.Unlock()

	if wasEmpty {
		p.tryNotify()
	}
}

// ReceiveBytes stores every byte of data as a single ISR drain would.
func (p *Port) ReceiveBytes(data []byte) {
	if len(data) == 0 {
		return
	}
	p.mu.Lock()
	wasEmpty := p.rx.IsEmpty()
	p.overruns += uint64(p.rx.WriteAll(data))
	p.mu.Unlock()

	if wasEmpty {
		p.tryNotify()
	}
}

// Readable returns a coalesced notification for RX readiness.
// Callers must re-check Buffered after waking.
func (p *Port) Readable() <-chan struct{} { return p.notify }

// Read copies up to len(b) buffered bytes without blocking. n == 0 means no
// data right now; it never returns io.EOF.
func (p *Port) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	p.mu.Lock()
	n := p.rx.ReadInto(b)
	p.mu.Unlock()
	return n, nil
}

// ReadByte returns one buffered byte or ErrBufferEmpty.
func (p *Port) ReadByte() (byte, error) {
	p.mu.Lock()
	v, ok := p.rx.Get()
	p.mu.Unlock()
	if !ok {
		return 0, ErrBufferEmpty
	}
	return v, nil
}

// Buffered returns the number of bytes waiting in the RX ring.
func (p *Port) Buffered() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rx.Size()
}

// Overruns returns how many received bytes were lost because the reader fell
// behind.
func (p *Port) Overruns() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.overruns
}

// Flush discards everything buffered and clears the overrun count.
func (p *Port) Flush() {
	p.mu.Lock()
	p.rx.Reset()
	p.overruns = 0
	p.mu.Unlock()
}

// WaitReadable blocks until data is buffered, the port is closed, or ctx is done.
func (p *Port) WaitReadable(ctx context.Context) error {
	if p.Buffered() > 0 {
		return nil
	}
	for {
		select {
		case <-p.notify:
			if p.Buffered() > 0 {
				return nil
			}
		case <-p.closed:
			return context.Canceled
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// ReadBlocking blocks until at least one byte is available, then reads up to len(b).
func (p *Port) ReadBlocking(ctx context.Context, b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	for {
		if n, _ := p.Read(b); n > 0 {
			return n, nil
		}
		if err := p.WaitReadable(ctx); err != nil {
			return 0, err
		}
	}
}

// ReadFullBlocking blocks until len(b) bytes have been read or ctx is done.
// On error it returns the bytes read so far.
func (p *Port) ReadFullBlocking(ctx context.Context, b []byte) (int, error) {
	read := 0
	for read < len(b) {
		if n, _ := p.Read(b[read:]); n > 0 {
			read += n
			continue
		}
		if err := p.WaitReadable(ctx); err != nil {
			return read, err
		}
	}
	return read, nil
}

// ReadByteBlocking blocks for a single byte or until ctx is done.
func (p *Port) ReadByteBlocking(ctx context.Context) (byte, error) {
	for {
		if v, err := p.ReadByte(); err == nil {
			return v, nil
		}
		if err := p.WaitReadable(ctx); err != nil {
			return 0, err
		}
	}
}

func (p *Port) ReadWithTimeout(b []byte, d time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return p.ReadBlocking(ctx, b)
}

// Close wakes all blocked readers with context.Canceled. Buffered bytes stay
// readable through the non-blocking calls.
func (p *Port) Close() error {
	p.closeOnce.Do(func() { close(p.closed) })
	return nil
}

// tryNotify simulates the ISR wake-up; a pending notification is kept, not
// duplicated.
func (p *Port) tryNotify() {
	select {
	case p.notify <- struct{}{}:
	default:
	}
}
