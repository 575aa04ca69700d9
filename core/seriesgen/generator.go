// Package seriesgen produces the per-vehicle synthetic history series backing
// the trend, thermal and correlation views. Each generator is independent per
// vehicle; reimplementations preserve distributional shape, not exact values.
package seriesgen

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Generator creates synthetic per-vehicle series from a shared random source.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator. A zero seed falls back to a time-based source.
func New(cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// numericSuffix extracts the trailing vehicle number from ids like BAT-042.
// Unparsable ids yield 0.
func numericSuffix(id string) int {
	idx := strings.LastIndex(id, "-")
	if idx < 0 || idx+1 >= len(id) {
		return 0
	}
	n, err := strconv.Atoi(id[idx+1:])
	if err != nil {
		return 0
	}
	return n
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// noise returns a uniform value in [-amp, amp).
func (g *Generator) noise(amp float64) float64 {
	return g.rng.Float64()*2*amp - amp
}
