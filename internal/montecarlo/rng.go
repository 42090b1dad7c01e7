package montecarlo

import "math/rand/v2"

// FreshSeed draws a seed from the runtime's entropy-seeded global source.
// A zero seed is never returned since zero means "pick one for me".
// Callers record the result so the run can be replayed.
func FreshSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

// deriveSeed mixes a run seed and a worker index with a SplitMix64 finalizer
// so neighbouring workers get uncorrelated streams.
func deriveSeed(seed uint64, stream uint64) uint64 {
	x := seed ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// workerRand returns the deterministic stream for one worker of a run.
func workerRand(seed uint64, worker int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, deriveSeed(seed, uint64(worker))))
}
