package host

import "math/rand"

// BlockState is an opaque handle to the host's block data. Hosts report empty
// cells as nil; behaviors inspect non-nil states through their own narrow
// interfaces (see the tasks package for examples).
type BlockState any

// World is the surface this layer consumes from the host engine. All calls
// happen synchronously inside the host's tick loop.
type World interface {
	// BlockState returns the state at pos, or nil for an empty cell.
	BlockState(pos BlockPos) BlockState
	// SetBlockState replaces the state at pos.
	SetBlockState(pos BlockPos, state BlockState)
	// BreakBlock clears the cell at pos, optionally dropping its contents.
	BreakBlock(pos BlockPos, drop bool)
	// GriefingAllowed reports whether block-destroying behaviors may run.
	GriefingAllowed() bool
	// Rand is the engine's global random source.
	Rand() *rand.Rand
	// Tick is the current game tick.
	Tick() uint64
}

// Inventory exposes the item checks behaviors need. Item identifiers are host
// vocabulary.
type Inventory interface {
	Contains(item string) bool
	Count(item string) int
	// Remove takes up to n of item, reporting whether any were removed.
	Remove(item string, n int) bool
}

// Villager is the acting entity surface consumed by behaviors.
type Villager interface {
	ID() string
	Pos() Vec3
	BlockPos() BlockPos
	Profession() Profession
	Baby() bool
	Inventory() Inventory
	Brain() Brain
}

// Behavior is one entry in a composed task list. The host's own scheduler
// decides which behavior runs each tick; this layer only defines the
// lifecycle contract. "Refusing to start" is routine, not an error.
type Behavior interface {
	ShouldStart(w World, v Villager, tick uint64) bool
	Run(w World, v Villager, tick uint64)
	KeepRunning(w World, v Villager, tick uint64)
	ShouldKeepRunning(w World, v Villager, tick uint64) bool
	FinishRunning(w World, v Villager, tick uint64)
}
