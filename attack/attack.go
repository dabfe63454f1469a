// Package attack recovers secrets from the oracles in package oracle using
// nothing but their outputs. No function here ever sees a key.
package attack

import (
	"crypto/aes"
	"errors"
	"io"
	"log"
)

// ErrOracleContract is returned when an oracle does not behave the way an
// attack assumes, for example an encryption oracle that is not ECB or a
// padding oracle for which no byte validates. Oracles are deterministic, so
// such a failure is never retried.
var ErrOracleContract = errors.New("oracle contract violated")

const blockSize = aes.BlockSize

type config struct {
	logger  *log.Logger
	workers int
}

// Option configures an attack.
type Option func(*config)

// WithLogger makes the attack report progress to l.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithWorkers bounds how many blocks DecryptCBC solves at once. The oracle
// must be safe for concurrent use when n > 1.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		logger:  log.New(io.Discard, "", 0),
		workers: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
