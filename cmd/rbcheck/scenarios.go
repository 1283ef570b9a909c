package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/eapache/queue"

	"github.com/jangala-dev/tinygo-ringbuf/ringbuf"
)

// scenario writes a fixed sequence into a fresh ring, performs a number of
// reads, and checks the bytes read and the final size.
type scenario struct {
	name     string
	capacity int
	writes   []byte
	reads    int
	want     []byte
	wantSize int
	wantFull bool
}

func seq(from, to byte) []byte {
	var out []byte
	for v := from; v <= to; v++ {
		out = append(out, v)
	}
	return out
}

var scenarios = []scenario{
	{
		name:     "partial drain",
		capacity: ringbuf.DefaultCapacity,
		writes:   []byte{1, 2, 3},
		reads:    2,
		want:     []byte{1, 2},
		wantSize: 1,
	},
	{
		name:     "overwrite when full",
		capacity: ringbuf.DefaultCapacity,
		writes:   seq(1, 11),
		reads:    10,
		want:     seq(2, 11),
	},
	{
		name:     "read empty",
		capacity: ringbuf.DefaultCapacity,
		reads:    1,
	},
	{
		name:     "full without reads",
		capacity: ringbuf.DefaultCapacity,
		writes:   seq(1, 10),
		wantSize: 10,
		wantFull: true,
	},
}

// expect computes the drain order from an unbounded FIFO that drops its head
// whenever it holds capacity entries and another arrives.
func (sc scenario) expect() []byte {
	model := queue.New()
	for _, v := range sc.writes {
		if model.Length() == sc.capacity {
			model.Remove()
		}
		model.Add(v)
	}
	var out []byte
	for i := 0; i < sc.reads && model.Length() > 0; i++ {
		out = append(out, model.Remove().(byte))
	}
	return out
}

func (sc scenario) run(verbose bool) error {
	rb := ringbuf.New(sc.capacity)
	rb.Reset()
	for _, v := range sc.writes {
		rb.Write(v)
		if verbose {
			log.Printf("  %s: write(%d) size=%d full=%t", sc.name, v, rb.Size(), rb.IsFull())
		}
	}

	var got []byte
	for i := 0; i < sc.reads; i++ {
		out := byte(0xEE)
		ok := rb.Read(&out)
		if verbose {
			log.Printf("  %s: read -> %t (%d)", sc.name, ok, out)
		}
		if !ok {
			if out != 0xEE {
				return fmt.Errorf("failed read modified output to %d", out)
			}
			continue
		}
		got = append(got, out)
	}

	if model := sc.expect(); !bytes.Equal(got, model) {
		return fmt.Errorf("read %v, model says %v", got, model)
	}
	if !bytes.Equal(got, sc.want) {
		return fmt.Errorf("read %v, want %v", got, sc.want)
	}
	if rb.Size() != sc.wantSize {
		return fmt.Errorf("size %d, want %d", rb.Size(), sc.wantSize)
	}
	if rb.IsFull() != sc.wantFull {
		return fmt.Errorf("full %t, want %t", rb.IsFull(), sc.wantFull)
	}
	if rb.IsEmpty() != (sc.wantSize == 0) {
		return fmt.Errorf("empty %t with size %d", rb.IsEmpty(), sc.wantSize)
	}
	return nil
}
