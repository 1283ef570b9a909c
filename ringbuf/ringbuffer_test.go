package ringbuf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jangala-dev/tinygo-ringbuf/ringbuf"
)

func drain(rb *ringbuf.RingBuffer) []byte {
	var out []byte
	var b byte
	for rb.Read(&b) {
		out = append(out, b)
	}
	return out
}

func TestNew_StartsEmpty(t *testing.T) {
	t.Parallel()
	rb := ringbuf.New(ringbuf.DefaultCapacity)

	assert.Equal(t, 10, rb.Cap())
	assert.Equal(t, 0, rb.Size())
	assert.Equal(t, 10, rb.Free())
	assert.True(t, rb.IsEmpty())
	assert.False(t, rb.IsFull())
}

func TestNew_PanicsOnBadCapacity(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { ringbuf.New(0) })
	assert.Panics(t, func() { ringbuf.New(-3) })
	assert.NotPanics(t, func() { ringbuf.New(1) })
}

func TestSize_TracksWritesUpToCapacity(t *testing.T) {
	t.Parallel()
	rb := ringbuf.New(10)

	for k := 1; k <= 10; k++ {
		rb.Write(byte(k))
		require.Equal(t, k, rb.Size(), "after %d writes", k)
		assert.Equal(t, k == 10, rb.IsFull())
		assert.False(t, rb.IsEmpty())
	}
}

func TestRoundTrip_PreservesOrder(t *testing.T) {
	t.Parallel()
	for k := 0; k <= 7; k++ {
		rb := ringbuf.New(7)
		want := make([]byte, k)
		for i := range want {
			want[i] = byte(0xA0 + i)
			rb.Write(want[i])
		}
		got := drain(rb)
		if k == 0 {
			assert.Empty(t, got)
		} else {
			assert.Equal(t, want, got, "k=%d", k)
		}
		assert.True(t, rb.IsEmpty())
	}
}

func TestWrite_OverwritesOldestWhenFull(t *testing.T) {
	t.Parallel()
	rb := ringbuf.New(4)

	for i := byte(0); i <= 4; i++ {
		rb.Write(i)
	}
	require.True(t, rb.IsFull())
	require.Equal(t, 4, rb.Size())
	assert.Equal(t, []byte{1, 2, 3, 4}, drain(rb))
}

func TestReset_FromAnyState(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		writes int
		reads  int
	}{
		{"empty", 0, 0},
		{"partial", 3, 1},
		{"full", 5, 0},
		{"wrapped", 9, 2},
		{"drained", 4, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rb := ringbuf.New(5)
			for i := 0; i < tc.writes; i++ {
				rb.Write(byte(i))
			}
			for i := 0; i < tc.reads; i++ {
				rb.Read(nil)
			}

			rb.Reset()

			assert.Equal(t, 0, rb.Size())
			assert.True(t, rb.IsEmpty())
			assert.False(t, rb.IsFull())
			var b byte
			assert.False(t, rb.Read(&b))

			// Usable again from slot zero.
			rb.Write(42)
			assert.Equal(t, []byte{42}, drain(rb))
		})
	}
}

func TestScenario_PartialDrain(t *testing.T) {
	t.Parallel()
	rb := ringbuf.New(10)
	rb.Reset()
	rb.Write(1)
	rb.Write(2)
	rb.Write(3)
	require.Equal(t, 3, rb.Size())

	var x, y byte
	require.True(t, rb.Read(&x))
	assert.Equal(t, byte(1), x)
	require.True(t, rb.Read(&y))
	assert.Equal(t, byte(2), y)

	assert.Equal(t, 1, rb.Size())
	assert.False(t, rb.IsEmpty())
}

func TestScenario_OverwriteWhenFull(t *testing.T) {
	t.Parallel()
	rb := ringbuf.New(10)
	rb.Reset()
	for v := byte(1); v <= 10; v++ {
		rb.Write(v)
	}
	require.True(t, rb.IsFull())

	rb.Write(11)
	assert.Equal(t, 10, rb.Size())
	assert.True(t, rb.IsFull())

	assert.Equal(t, []byte{2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, drain(rb))
}

func TestScenario_ReadEmptyLeavesOutput(t *testing.T) {
	t.Parallel()
	rb := ringbuf.New(10)
	rb.Reset()

	x := byte(0x5A)
	assert.False(t, rb.Read(&x))
	assert.Equal(t, byte(0x5A), x)

	v, ok := rb.Get()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestRead_NilDiscards(t *testing.T) {
	t.Parallel()
	rb := ringbuf.New(3)
	rb.Write('a')
	rb.Write('b')

	assert.True(t, rb.Read(nil))
	assert.Equal(t, []byte("b"), drain(rb))
	assert.False(t, rb.Read(nil))
}

func TestPut_RejectsWhenFull(t *testing.T) {
	t.Parallel()
	rb := ringbuf.New(3)
	for _, v := range []byte("xyz") {
		require.True(t, rb.Put(v))
	}

	assert.False(t, rb.Put('!'))
	require.ErrorIs(t, rb.TryWrite('!'), ringbuf.ErrFull)
	assert.Equal(t, 3, rb.Size())
	assert.True(t, rb.IsFull())

	assert.Equal(t, []byte("xyz"), drain(rb))
	require.NoError(t, rb.TryWrite('q'))
	assert.Equal(t, 1, rb.Size())
}

func TestTryRead(t *testing.T) {
	t.Parallel()
	rb := ringbuf.New(2)

	_, err := rb.TryRead()
	require.ErrorIs(t, err, ringbuf.ErrEmpty)

	rb.Write(7)
	v, err := rb.TryRead()
	require.NoError(t, err)
	assert.Equal(t, byte(7), v)
}

func TestWriteAll_ReportsOverwrites(t *testing.T) {
	t.Parallel()
	rb := ringbuf.New(4)

	assert.Equal(t, 0, rb.WriteAll([]byte("ab")))
	assert.Equal(t, 2, rb.WriteAll([]byte("cdef")))

	p := make([]byte, 8)
	n := rb.ReadInto(p)
	assert.Equal(t, 4, n)
	assert.Equal(t, "cdef", string(p[:n]))
}

func TestReadInto_StopsWhenDry(t *testing.T) {
	t.Parallel()
	rb := ringbuf.New(8)
	rb.WriteAll([]byte("hello"))

	p := make([]byte, 3)
	require.Equal(t, 3, rb.ReadInto(p))
	assert.Equal(t, "hel", string(p))

	require.Equal(t, 2, rb.ReadInto(p))
	assert.Equal(t, "lo", string(p[:2]))

	assert.Equal(t, 0, rb.ReadInto(p))
	assert.Equal(t, 0, rb.ReadInto(nil))
}

func TestSize_AfterWrap(t *testing.T) {
	t.Parallel()
	rb := ringbuf.New(5)
	rb.WriteAll([]byte{1, 2, 3, 4})
	for i := 0; i < 3; i++ {
		require.True(t, rb.Read(nil))
	}
	// write index wraps past the end while read index sits at 3
	rb.WriteAll([]byte{5, 6, 7})

	assert.Equal(t, 4, rb.Size())
	assert.Equal(t, 1, rb.Free())
	assert.False(t, rb.IsFull())
	assert.Equal(t, []byte{4, 5, 6, 7}, drain(rb))
}

func TestCapacityOne(t *testing.T) {
	t.Parallel()
	rb := ringbuf.New(1)

	rb.Write('a')
	require.True(t, rb.IsFull())
	rb.Write('b')
	require.True(t, rb.IsFull())
	assert.Equal(t, 1, rb.Size())

	assert.Equal(t, []byte("b"), drain(rb))
	assert.True(t, rb.IsEmpty())
}
