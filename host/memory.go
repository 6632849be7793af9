package host

// MemorySlot names a brain memory module. This layer only ever touches the
// look and walk intent slots; pathing itself stays in the host.
type MemorySlot string

const (
	MemoryLookTarget MemorySlot = "look_target"
	MemoryWalkTarget MemorySlot = "walk_target"
)

// WalkIntent is the value written to MemoryWalkTarget. CompletionRange is in
// cells, matching the host's navigation contract.
type WalkIntent struct {
	Pos             BlockPos
	Speed           float64
	CompletionRange int
}

// Brain is the memory/intent surface used to hand movement goals to the
// host's navigation.
type Brain interface {
	Remember(slot MemorySlot, value any)
	Forget(slot MemorySlot)
}
