//go:build !ringbufdebug

package ringbuf

func (rb *RingBuffer) dbgWrite(bool) {}
func (rb *RingBuffer) dbgReject()    {}
func (rb *RingBuffer) dbgRead(bool)  {}
func (rb *RingBuffer) dbgReset()     {}
