package gen

import "math/rand"

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 321321

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// between returns a uniform integer in [lo, hi]. hi < lo returns lo.
func between(r *rand.Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}

	return lo + r.Int63n(hi-lo+1)
}

// DeriveSeed mixes a base seed and a stream number into an independent seed, so
// batch generation can give every case its own reproducible stream.
func DeriveSeed(base int64, stream uint64) int64 {
	// SplitMix64 finalizer.
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
