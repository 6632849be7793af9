package worker

import "villager-tasks/tasklayer/host"

// SuitabilityCheck decides whether a cell is a viable target.
type SuitabilityCheck interface {
	SuitableTarget(pos host.BlockPos, w host.World) bool
}

type SuitabilityFunc func(pos host.BlockPos, w host.World) bool

func (f SuitabilityFunc) SuitableTarget(pos host.BlockPos, w host.World) bool {
	return f(pos, w)
}

// RunConditions gates a start attempt on environment or actor state, e.g.
// daylight, age, or profession checks.
type RunConditions interface {
	CheckRunConditions(w host.World, v host.Villager) bool
}

type ConditionsFunc func(w host.World, v host.Villager) bool

func (f ConditionsFunc) CheckRunConditions(w host.World, v host.Villager) bool {
	return f(w, v)
}

// WorldAction is the behavior-specific payload applied to the current target
// once the villager is close enough and past the response delay.
type WorldAction interface {
	DoWorldActions(target host.BlockPos, w host.World, v host.Villager, tick uint64)
}

type ActionFunc func(target host.BlockPos, w host.World, v host.Villager, tick uint64)

func (f ActionFunc) DoWorldActions(target host.BlockPos, w host.World, v host.Villager, tick uint64) {
	f(target, w, v, tick)
}

// Scanner enumerates candidate cells for one scan pass. Implementations call
// emit once per candidate; the default scanner walks the 3x3x3 neighborhood
// around the villager.
type Scanner interface {
	Scan(w host.World, v host.Villager, emit func(pos host.BlockPos))
}

type ScanFunc func(w host.World, v host.Villager, emit func(pos host.BlockPos))

func (f ScanFunc) Scan(w host.World, v host.Villager, emit func(pos host.BlockPos)) {
	f(w, v, emit)
}
