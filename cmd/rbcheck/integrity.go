package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jangala-dev/tinygo-ringbuf/serial"
)

// pattern is a period-256 sequence; each value occurs once per period, so a
// gap of fewer than 256 bytes can be measured from the next byte seen.
func pattern(i int) byte { return byte((i*31 + 0x55) & 0xFF) }

type result struct {
	received int
	overruns int
	skipped  int // bytes the reader saw missing, mod 256 per gap
	elapsed  time.Duration
}

func produce(ctx context.Context, port *serial.Port, cfg config) {
	chunk := make([]byte, cfg.chunk)
	for i := 0; i < cfg.total; {
		n := min(cfg.chunk, cfg.total-i)
		for j := 0; j < n; j++ {
			chunk[j] = pattern(i + j)
		}
		port.ReceiveBytes(chunk[:n])
		i += n

		if cfg.pace > 0 {
			time.Sleep(cfg.pace)
		}
		if ctx.Err() != nil {
			return
		}
	}
}

// runIntegrity streams cfg.total pattern bytes through a serial.Port and
// checks that every byte was either received in order or counted as an
// overrun.
func runIntegrity(cfg config) (result, error) {
	var res result
	port := serial.NewPort(cfg.capacity)
	defer port.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()

	start := time.Now()
	sent := make(chan struct{})
	go func() {
		defer close(sent)
		produce(ctx, port, cfg)
	}()

	k := 0 // next expected pattern index
	buf := make([]byte, recvChunk)
	for {
		if n, _ := port.Read(buf); n > 0 {
			for _, got := range buf[:n] {
				for pattern(k) != got {
					k++
					res.skipped++
				}
				k++
				res.received++
			}
			continue
		}
		select {
		case <-sent:
			if port.Buffered() > 0 {
				continue
			}
		case <-port.Readable():
			continue
		case <-ctx.Done():
			return res, fmt.Errorf("after %d bytes: %w", res.received, ctx.Err())
		}
		break
	}
	res.elapsed = time.Since(start)
	res.overruns = int(port.Overruns())

	if res.received+res.overruns != cfg.total {
		return res, fmt.Errorf("received %d + overruns %d != sent %d", res.received, res.overruns, cfg.total)
	}
	if res.skipped%256 != res.overruns%256 {
		return res, fmt.Errorf("order gap %d does not match overruns %d", res.skipped, res.overruns)
	}
	return res, nil
}
