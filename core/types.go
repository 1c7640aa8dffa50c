// This file declares the sentinel errors, tuning constants, and the
// functional options accepted by NewManager.

package core

import (
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors for manager construction and expression wiring.
var (
	// ErrBadSigSize indicates a non-positive signature size.
	ErrBadSigSize = errors.New("core: signature size must be positive")

	// ErrNilExpr indicates MakeExpr received a nil expression tree.
	ErrNilExpr = errors.New("core: nil expression")

	// ErrInputIndex indicates an input or literal index out of range.
	ErrInputIndex = errors.New("core: input index out of range")
)

const (
	// initBucketCount is the starting bucket count of both hash tables.
	initBucketCount = 1024

	// growNum/growDen encode the 1.8 load factor that triggers
	// bucket-count doubling.
	growNum = 9
	growDen = 5

	// wordBits is the number of parallel patterns per simulation word.
	wordBits = 64

	// cexFlipPercent is the probability (in percent) that a
	// counter-example bit is flipped when widened to a full word.
	cexFlipPercent = 3

	// defaultLoopLimit bounds signature-hash retry rounds per lookup.
	defaultLoopLimit = 1000

	// defaultSeed feeds the pattern PRNG unless WithSeed/WithRand
	// overrides it.
	defaultSeed int64 = 1
)

// Option configures a Manager before first use.
type Option func(*config)

// config collects constructor settings; zero values mean defaults.
type config struct {
	rng       *rand.Rand
	logger    *zap.Logger
	timeout   time.Duration
	loopLimit int
}

func defaultConfig() config {
	return config{
		rng:       rand.New(rand.NewSource(defaultSeed)),
		loopLimit: defaultLoopLimit,
	}
}

// WithRand sets an explicit PRNG for simulation patterns.
// Passing nil has no effect.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithSeed seeds a fresh PRNG for simulation patterns, making graph
// construction reproducible for that seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger injects a caller-owned logger. SetLogLevel does not change
// its level; SetLogStream replaces it with a managed console logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSolverTimeout bounds each individual SAT query; queries that
// exceed it return Unknown and the engine stays conservative.
func WithSolverTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithLoopLimit bounds signature-hash retry rounds per lookup.
// Non-positive values have no effect.
func WithLoopLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.loopLimit = n
		}
	}
}
