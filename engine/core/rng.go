package core

// Rand is the random source injected into spawners and entity factories.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Perm(n int) []int
}

// RandRange returns a uniform int in [lo, hi]. hi below lo yields lo.
func RandRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// RandSign returns -1 or +1 with equal probability
func RandSign(r Rand) float64 {
	if r.Intn(2) == 0 {
		return -1
	}
	return 1
}
