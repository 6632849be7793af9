package sim

import (
	"hash/fnv"
	"math/rand"
)

// DefaultSeed is used when a world is built without an explicit seed.
const DefaultSeed = "village-default"

// DeterministicSeedValue derives a stable 64-bit seed from a root seed and a
// subsystem label, so independent random streams stay reproducible.
func DeterministicSeedValue(rootSeed, label string) int64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(rootSeed))
	hasher.Write([]byte{0})
	hasher.Write([]byte(label))
	sum := hasher.Sum64()
	if sum == 0 {
		sum = 1
	}
	return int64(sum)
}

// NewDeterministicRNG builds a seeded stream for one subsystem.
func NewDeterministicRNG(rootSeed, label string) *rand.Rand {
	return rand.New(rand.NewSource(DeterministicSeedValue(rootSeed, label)))
}
