// cmd/rbcheck/main.go
// Host-side integrity check for github.com/jangala-dev/tinygo-ringbuf.
// A producer goroutine plays the UART ISR and pushes a deterministic pattern
// into a serial.Port; the main goroutine plays the main loop and verifies
// ordering and overrun accounting. The fixed ring scenarios are replayed first.

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	flag "github.com/spf13/pflag"
)

/*** Tunables ***/
const (
	defaultCapacity = 256       // RX ring size in bytes
	defaultBytes    = 64 * 1024 // bytes pushed by the producer
	defaultChunk    = 32        // bytes per simulated ISR drain
	defaultPace     = 50 * time.Microsecond
	defaultTimeout  = 10 * time.Second

	recvChunk = 64 // bytes per main-loop Read
)

type config struct {
	capacity  int
	total     int
	chunk     int
	pace      time.Duration
	timeout   time.Duration
	scenarios bool
	verbose   bool
}

func (c config) validate() error {
	switch {
	case c.capacity < 1:
		return fmt.Errorf("capacity must be >= 1, got %d", c.capacity)
	case c.chunk < 1:
		return fmt.Errorf("chunk must be >= 1, got %d", c.chunk)
	case c.total < 0:
		return fmt.Errorf("bytes must be >= 0, got %d", c.total)
	case c.timeout <= 0:
		return errors.New("timeout must be positive")
	}
	return nil
}

func main() {
	var cfg config
	flag.IntVarP(&cfg.capacity, "capacity", "c", defaultCapacity, "RX ring capacity in bytes")
	flag.IntVarP(&cfg.total, "bytes", "n", defaultBytes, "bytes pushed by the producer")
	flag.IntVar(&cfg.chunk, "chunk", defaultChunk, "bytes per simulated ISR drain")
	flag.DurationVar(&cfg.pace, "pace", defaultPace, "delay between ISR drains (0 = flat out)")
	flag.DurationVarP(&cfg.timeout, "timeout", "t", defaultTimeout, "deadline for the integrity run")
	flag.BoolVar(&cfg.scenarios, "scenarios", true, "replay the fixed ring scenarios first")
	flag.BoolVarP(&cfg.verbose, "verbose", "v", false, "log every scenario step")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("rbcheck: ")

	if err := cfg.validate(); err != nil {
		log.Printf("invalid flags: %v", err)
		flag.Usage()
		os.Exit(2)
	}

	pass, fail := 0, 0
	report := func(name string, err error) {
		if err == nil {
			log.Printf("[PASS] %s", name)
			pass++
		} else {
			log.Printf("[FAIL] %s: %v", name, err)
			fail++
		}
	}

	if cfg.scenarios {
		for _, sc := range scenarios {
			report("scenario "+sc.name, sc.run(cfg.verbose))
		}
	}

	res, err := runIntegrity(cfg)
	if err == nil {
		log.Printf("received=%d overruns=%d skipped=%d in %v",
			res.received, res.overruns, res.skipped, res.elapsed.Round(time.Millisecond))
	}
	report(fmt.Sprintf("integrity cap=%d bytes=%d", cfg.capacity, cfg.total), err)

	log.Printf("done: %d passed, %d failed", pass, fail)
	if fail > 0 {
		os.Exit(1)
	}
}
