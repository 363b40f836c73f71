package mupair

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"iter"
	"math/rand"
	"sync"

	"github.com/hepex/mupair/lorentz"
)

// Process is the capability a Generator needs from a concrete 2->2
// scattering process: the differential cross-section density and a
// per-energy upper bound on it over all angles.
type Process[T lorentz.Float] interface {
	// DiffXSec returns the differential cross-section at the given
	// beam energy and cosine of the polar angle. Must be defined,
	// finite and non-negative for all cosTheta in [-1, 1].
	DiffXSec(e, cosTheta T) T

	// MaxWeight returns an upper bound on DiffXSec(e, .) over all
	// angles. The bound need not be tight but must be true: accepted
	// samples are biased otherwise.
	MaxWeight(e T) T
}

// ProcessFuncs adapts a pair of plain functions to the Process
// interface.
type ProcessFuncs[T lorentz.Float] struct {
	XSec func(e, cosTheta T) T
	WMax func(e T) T
}

func (p ProcessFuncs[T]) DiffXSec(e, cosTheta T) T { return p.XSec(e, cosTheta) }
func (p ProcessFuncs[T]) MaxWeight(e T) T          { return p.WMax(e) }

// Config configures a Generator.
type Config[T lorentz.Float] struct {
	// Energy is the beam energy of each incoming particle.
	Energy T

	// Process supplies the cross-section and its weight bound.
	Process Process[T]

	// Seed is the master seed of the random schedule. Zero selects a
	// crypto/rand seed; the effective value is available from Seed.
	Seed int64

	// Workers is the number of goroutines evaluating a batch.
	// Values below 1 mean 1. The worker count only changes
	// scheduling, never the generated events or their order.
	Workers int

	// MaxBatches caps the number of batches a single Generate or
	// Events run may consume before giving up with
	// ErrTargetUnreachable. Zero means no cap.
	MaxBatches int
}

// Stats counts the work a Generator has done so far.
type Stats struct {
	Sampled  int64
	Accepted int64
	Batches  int64
}

// Efficiency returns the empirical acceptance rate Accepted/Sampled,
// or 0 before any sampling.
func (s Stats) Efficiency() float64 {
	if s.Sampled == 0 {
		return 0
	}
	return float64(s.Accepted) / float64(s.Sampled)
}

// Generator samples flat phase-space events at a fixed beam energy and
// unweights them against the process's weight bound.
//
// Every event has a global index; the draws for event i come from a
// dedicated source seeded by mixing the master seed with i, so results
// are reproducible for a given seed and independent of the worker
// count. A Generator is not safe for concurrent use; the parallelism
// lives inside a batch.
type Generator[T lorentz.Float] struct {
	cfg  Config[T]
	seed int64
	rng  *rand.Rand // sequential stream for Sample/Accept
	next int64      // global index of the next batched event
	stat Stats
}

// New validates cfg and returns a ready Generator.
func New[T lorentz.Float](cfg Config[T]) (*Generator[T], error) {
	if cfg.Process == nil {
		return nil, fmt.Errorf("mupair: nil process: %w", ErrConfig)
	}
	if !(cfg.Energy > 0) {
		return nil, fmt.Errorf("mupair: non-positive beam energy %v: %w", cfg.Energy, ErrConfig)
	}
	if wmax := cfg.Process.MaxWeight(cfg.Energy); !(wmax > 0) {
		return nil, fmt.Errorf("mupair: weight bound %v at energy %v: %w", wmax, cfg.Energy, ErrConfig)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	seed := cfg.Seed
	if seed == 0 {
		var err error
		seed, err = NewSeed()
		if err != nil {
			return nil, fmt.Errorf("mupair: seeding generator: %w", err)
		}
	}
	return &Generator[T]{
		cfg:  cfg,
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}, nil
}

// Seed returns the effective master seed.
func (g *Generator[T]) Seed() int64 { return g.seed }

// Stats returns a snapshot of the sampling counters.
func (g *Generator[T]) Stats() Stats { return g.stat }

// Generate accumulates accepted events in batches of chunk until their
// number exceeds target, and returns them in generation order (batch
// order, sampling order within a batch).
//
// The loop keeps batching while the accepted count is at most target,
// so the result holds more than target events and overshoots by at
// most one batch; callers needing an exact count truncate the slice.
// If MaxBatches is set and exhausted first, Generate returns the
// partial slice together with an error wrapping ErrTargetUnreachable.
func (g *Generator[T]) Generate(target, chunk int) ([]Event[T], error) {
	if target < 0 || chunk < 1 {
		return nil, fmt.Errorf("mupair: generate target=%d chunk=%d: %w", target, chunk, ErrConfig)
	}
	var (
		out     []Event[T]
		batches int
	)
	for len(out) <= target {
		if g.cfg.MaxBatches > 0 && batches == g.cfg.MaxBatches {
			return out, fmt.Errorf("mupair: %d of %d events after %d batches of %d: %w",
				len(out), target, batches, chunk, ErrTargetUnreachable)
		}
		out = append(out, g.batch(chunk)...)
		batches++
	}
	return out, nil
}

// Events returns the accepted events as a lazy stream, batching chunk
// flat samples at a time under the hood. The stream follows the same
// per-index randomness schedule as Generate, so for a fresh Generator
// with the same seed its prefix coincides with Generate's result.
//
// The stream ends only when the consumer stops or, if MaxBatches is
// set, when the cap is exhausted.
func (g *Generator[T]) Events(chunk int) iter.Seq[Event[T]] {
	if chunk < 1 {
		chunk = 1
	}
	return func(yield func(Event[T]) bool) {
		for batches := 0; g.cfg.MaxBatches == 0 || batches < g.cfg.MaxBatches; batches++ {
			for _, ev := range g.batch(chunk) {
				if !yield(ev) {
					return
				}
			}
		}
	}
}

// batch samples and tests n events concurrently and returns the
// accepted ones in sampling order (stable filter). Event i of the
// batch draws from its own source, so splitting the index range over
// workers cannot change the outcome.
func (g *Generator[T]) batch(n int) []Event[T] {
	type result struct {
		ev Event[T]
		ok bool
	}
	res := make([]result, n)

	nw := g.cfg.Workers
	if nw > n {
		nw = n
	}
	var wg sync.WaitGroup
	lo := 0
	per, rem := n/nw, n%nw
	for w := 0; w < nw; w++ {
		sz := per
		if w < rem {
			sz++
		}
		hi := lo + sz
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				rng := rand.New(rand.NewSource(mix(g.seed, g.next+int64(i))))
				res[i].ev, res[i].ok = g.sampleAccept(rng)
			}
		}(lo, hi)
		lo = hi
	}
	wg.Wait()
	g.next += int64(n)

	out := make([]Event[T], 0, n)
	for _, r := range res {
		if r.ok {
			out = append(out, r.ev)
		}
	}
	g.stat.Sampled += int64(n)
	g.stat.Accepted += int64(len(out))
	g.stat.Batches++
	return out
}

// mix derives the per-event seed from the master seed and the global
// event index, splitmix64-style, so neighbouring indices get
// well-separated streams.
func mix(seed, idx int64) int64 {
	z := uint64(seed) ^ (uint64(idx) * 0x9e3779b97f4a7c15)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

// NewSeed draws a high-entropy seed from crypto/rand, suitable for
// seeding a reproducible run that still differs between invocations.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
