//go:build !tinygo

package ringbuf

import "golang.org/x/sys/cpu"

// Host storage: plain fields. The writer and reader cursors are kept on
// separate cache lines.

type pad = cpu.CacheLinePad

type slots []byte

func (s slots) load(i uint32) byte     { return s[i] }
func (s slots) store(i uint32, b byte) { s[i] = b }

type cursor struct{ v uint32 }

func (c *cursor) get() uint32  { return c.v }
func (c *cursor) set(v uint32) { c.v = v }

type flag struct{ v bool }

func (f *flag) get() bool  { return f.v }
func (f *flag) set(v bool) { f.v = v }
