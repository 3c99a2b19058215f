// Package generate produces random arrival sequences for stress-testing a
// solver together with the checker.
//
// Sequences are drawn from a seeded PCG source, so a seed reproduces the
// same file:
//
//	g := generate.New(generate.Options{Lines: 100, MaxID: 10, MaxLength: 50, Seed: 7})
//	for g.Next() {
//	    fmt.Println(pkgio.FormatArrivals(g.Sequence()))
//	}
package generate

import (
	"fmt"
	"math/rand/v2"
)

// Defaults used when an option is zero.
const (
	DefaultLines     = 100
	DefaultMaxID     = 10
	DefaultMaxLength = 20
	DefaultSeed      = uint64(42)
)

// Options bounds the generated sequences.
type Options struct {
	Lines     int    // number of sequences
	MaxID     int    // ids are drawn from [1, MaxID]
	MinLength int    // shortest sequence
	MaxLength int    // longest sequence
	Seed      uint64 // PCG seed
}

// SetDefaults fills zero fields with the package defaults.
func (o *Options) SetDefaults() {
	if o.Lines == 0 {
		o.Lines = DefaultLines
	}
	if o.MaxID == 0 {
		o.MaxID = DefaultMaxID
	}
	if o.MaxLength == 0 {
		o.MaxLength = DefaultMaxLength
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
}

// Validate checks that the bounds are consistent.
func (o Options) Validate() error {
	switch {
	case o.Lines < 0:
		return fmt.Errorf("lines must be non-negative, got %d", o.Lines)
	case o.MaxID < 1:
		return fmt.Errorf("max id must be at least 1, got %d", o.MaxID)
	case o.MinLength < 0:
		return fmt.Errorf("min length must be non-negative, got %d", o.MinLength)
	case o.MaxLength < o.MinLength:
		return fmt.Errorf("max length %d is below min length %d", o.MaxLength, o.MinLength)
	}
	return nil
}

// Generator yields sequences one at a time.
type Generator struct {
	opts    Options
	rng     *rand.Rand
	emitted int
	cur     []int
}

// New returns a generator for opts. Zero fields take their defaults; call
// Options.Validate first to reject inconsistent bounds.
func New(opts Options) *Generator {
	opts.SetDefaults()
	return &Generator{
		opts: opts,
		rng:  rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef)),
	}
}

// Next advances to the next sequence. It returns false once Lines
// sequences have been produced.
func (g *Generator) Next() bool {
	if g.emitted >= g.opts.Lines {
		return false
	}
	g.emitted++

	n := g.opts.MinLength + g.rng.IntN(g.opts.MaxLength-g.opts.MinLength+1)
	g.cur = make([]int, n)
	for i := range g.cur {
		g.cur[i] = 1 + g.rng.IntN(g.opts.MaxID)
	}
	return true
}

// Sequence returns the current sequence. The slice is not reused.
func (g *Generator) Sequence() []int { return g.cur }

// All returns every remaining sequence.
func (g *Generator) All() [][]int {
	var out [][]int
	for g.Next() {
		out = append(out, g.Sequence())
	}
	return out
}
