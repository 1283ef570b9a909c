//go:build tinygo

package ringbuf

import "runtime/volatile"

// Device storage: every access goes through volatile registers so an ISR
// writer and the main loop never see a value cached in a CPU register.

type pad struct{}

type slots []volatile.Register8

func (s slots) load(i uint32) byte     { return s[i].Get() }
func (s slots) store(i uint32, b byte) { s[i].Set(b) }

type cursor struct{ v volatile.Register32 }

func (c *cursor) get() uint32  { return c.v.Get() }
func (c *cursor) set(v uint32) { c.v.Set(v) }

type flag struct{ v volatile.Register8 }

func (f *flag) get() bool { return f.v.Get() != 0 }

func (f *flag) set(v bool) {
	if v {
		f.v.Set(1)
		return
	}
	f.v.Set(0)
}
