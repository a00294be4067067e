package pathfind

import "math/rand"

// RandSource is the randomness a BridgeGenerator draws from.
// *rand.Rand satisfies it. It need not be safe for concurrent use; give
// every concurrent search its own source.
type RandSource interface {
	Intn(n int) int
}

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}
