// Package trial provides the Bernoulli trial primitives the raid engine draws
// all of its randomness through.
package trial

import (
	"raid/utils"

	"golang.org/x/exp/rand"
)

// Source yields uniform samples in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a seeded PCG-backed source.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Binomial counts successes among n independent trials with probability p.
// Each trial consumes one sample; p of exactly 0 or 1 consumes none.
func Binomial(src Source, n int, p float64) int {
	if n <= 0 {
		return 0
	}
	p = utils.Clamp(p, 0, 1)
	if p == 0 {
		return 0
	}
	if p == 1 {
		return n
	}
	count := 0
	for i := 0; i < n; i++ {
		if src.Float64() < p {
			count++
		}
	}
	return count
}

// Bernoulli performs a single trial with the same boundary rules as Binomial.
func Bernoulli(src Source, p float64) bool {
	return Binomial(src, 1, p) == 1
}

// Sequence replays a fixed list of samples, wrapping around at the end.
// The zero value always yields 0.
type Sequence struct {
	Samples []float64
	next    int
}

func NewSequence(samples ...float64) *Sequence {
	return &Sequence{Samples: samples}
}

func (s *Sequence) Float64() float64 {
	if len(s.Samples) == 0 {
		return 0
	}
	v := s.Samples[s.next%len(s.Samples)]
	s.next++
	return v
}

// Drawn reports how many samples have been consumed.
func (s *Sequence) Drawn() int {
	return s.next
}
