package sim

import (
	"math/rand"

	"villager-tasks/tasklayer/host"
)

// Drop records a block broken with drops enabled.
type Drop struct {
	Pos   host.BlockPos
	State host.BlockState
}

// World is a minimal in-memory host world: a sparse block grid, a tick
// counter, and label-seeded random streams. It implements host.World for
// tests and the diagnostic viewer.
type World struct {
	seed     string
	blocks   map[host.BlockPos]host.BlockState
	tick     uint64
	rng      *rand.Rand
	griefing bool
	drops    []Drop
}

func NewWorld(seed string) *World {
	if seed == "" {
		seed = DefaultSeed
	}
	return &World{
		seed:     seed,
		blocks:   map[host.BlockPos]host.BlockState{},
		rng:      NewDeterministicRNG(seed, "world"),
		griefing: true,
	}
}

func (w *World) BlockState(pos host.BlockPos) host.BlockState {
	return w.blocks[pos]
}

func (w *World) SetBlockState(pos host.BlockPos, state host.BlockState) {
	if state == nil {
		delete(w.blocks, pos)
		return
	}
	w.blocks[pos] = state
}

func (w *World) BreakBlock(pos host.BlockPos, drop bool) {
	state, ok := w.blocks[pos]
	if !ok {
		return
	}
	if drop {
		w.drops = append(w.drops, Drop{Pos: pos, State: state})
	}
	delete(w.blocks, pos)
}

func (w *World) GriefingAllowed() bool {
	return w.griefing
}

// SetGriefing toggles the block-destruction rule, mirroring the host's game
// rule.
func (w *World) SetGriefing(allowed bool) {
	w.griefing = allowed
}

func (w *World) Rand() *rand.Rand {
	return w.rng
}

func (w *World) Tick() uint64 {
	return w.tick
}

// Advance moves the clock one tick and returns the new value.
func (w *World) Advance() uint64 {
	w.tick++
	return w.tick
}

// SetTick jumps the clock, for tests that start mid-timeline.
func (w *World) SetTick(tick uint64) {
	w.tick = tick
}

// SubsystemRNG derives an independent deterministic stream.
func (w *World) SubsystemRNG(label string) *rand.Rand {
	return NewDeterministicRNG(w.seed, label)
}

// Drops lists blocks broken with drops enabled, in break order.
func (w *World) Drops() []Drop {
	return append([]Drop(nil), w.drops...)
}
