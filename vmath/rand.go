package vmath

// FastRand is a xorshift64 generator, deterministic for a given seed
// Not safe for concurrent use; each simulation owns one
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0, 1) using the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [min, max)
func (r *FastRand) Range(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Rand is the randomness source consumed by simulation code
// FastRand satisfies it; tests substitute scripted sequences
type Rand interface {
	Float64() float64
	// Range returns a value in [min, max), consuming one Float64 draw
	Range(min, max float64) float64
}
