package worker

import (
	"errors"
	"fmt"

	"villager-tasks/tasklayer/host"
)

const (
	// DefaultEndDelay is the post-finish cooldown before the host scheduler
	// may reconsider the behavior.
	DefaultEndDelay = 40
	// DefaultSpeed is the walk-intent speed handed to the host navigation.
	DefaultSpeed = 0.5

	// proximityThreshold is how close, in world units, the villager must be
	// to the target before the world action fires.
	proximityThreshold = 1.0
)

var (
	errNilSuitability = errors.New("definition needs a suitability check")
	errNilAction      = errors.New("definition needs a world action")
	errBadDuration    = errors.New("duration must be positive")
)

// Definition is the static description of a worker behavior. The lifecycle
// is generic; everything behavior-specific enters through the capability
// hooks.
type Definition struct {
	// Suitable and Action are required.
	Suitable SuitabilityCheck
	Action   WorldAction
	// Conditions defaults to always-true.
	Conditions RunConditions
	// Scan defaults to the 3x3x3 neighborhood scan.
	Scan Scanner
	// Duration is how many ticks one run lasts.
	Duration int
	// EndDelay is the cooldown after a run; DefaultEndDelay when zero.
	EndDelay uint64
	// Speed is the walk-intent speed; DefaultSpeed when zero.
	Speed float64
	// RequiresGriefing suppresses the behavior entirely while the host's
	// griefing rule is off. Needed by anything that breaks blocks.
	RequiresGriefing bool
}

// Worker is the per-(definition, actor) state machine instance. The host
// instantiates one per actor and drives it from that actor's tick callback;
// instances are never shared across actors.
type Worker struct {
	def Definition

	target     host.BlockPos
	hasTarget  bool
	candidates []host.BlockPos

	nextResponse uint64
	ticksRan     int
}

// New validates the definition and applies defaults.
func New(def Definition) (*Worker, error) {
	if def.Suitable == nil {
		return nil, fmt.Errorf("worker: %w", errNilSuitability)
	}
	if def.Action == nil {
		return nil, fmt.Errorf("worker: %w", errNilAction)
	}
	if def.Duration <= 0 {
		return nil, fmt.Errorf("worker: %w (%d)", errBadDuration, def.Duration)
	}
	if def.EndDelay == 0 {
		def.EndDelay = DefaultEndDelay
	}
	if def.Speed == 0 {
		def.Speed = DefaultSpeed
	}
	if def.Scan == nil {
		def.Scan = ScanFunc(neighborhoodScan(def.Suitable))
	}
	return &Worker{def: def}, nil
}

// MustNew is New for init-time wiring.
func MustNew(def Definition) *Worker {
	w, err := New(def)
	if err != nil {
		panic(err)
	}
	return w
}

// ShouldStart decides whether a run begins. Target state is mutated here on
// purpose: failing to find a target and not starting are the same outcome and
// must be decided eagerly, so the scan happens as part of the start check.
func (t *Worker) ShouldStart(w host.World, v host.Villager, tick uint64) bool {
	if t.def.RequiresGriefing && !w.GriefingAllowed() {
		return false
	}
	if t.def.Conditions != nil && !t.def.Conditions.CheckRunConditions(w, v) {
		return false
	}
	t.setCurrentTarget(w, v)
	return t.hasTarget
}

// Run records the look/walk intent once per response window. Walking there is
// the host navigation's job.
func (t *Worker) Run(w host.World, v host.Villager, tick uint64) {
	if tick > t.nextResponse && t.hasTarget {
		t.addLookWalkIntent(v)
	}
}

// KeepRunning advances one tick of the run. Until the villager is within the
// proximity threshold only the elapsed counter moves; once close and past the
// response delay the world action fires.
func (t *Worker) KeepRunning(w host.World, v host.Villager, tick uint64) {
	if t.hasTarget && t.target.WithinDistance(v.Pos(), proximityThreshold) {
		if tick > t.nextResponse {
			t.def.Action.DoWorldActions(t.target, w, v, tick)
		}
	}
	t.ticksRan++
}

// ShouldKeepRunning bounds the run by the definition's duration.
func (t *Worker) ShouldKeepRunning(w host.World, v host.Villager, tick uint64) bool {
	return t.ticksRan < t.def.Duration
}

// FinishRunning clears the movement intent and arms the cooldown. Safe to
// call once per run regardless of how the run ended.
func (t *Worker) FinishRunning(w host.World, v host.Villager, tick uint64) {
	v.Brain().Forget(host.MemoryLookTarget)
	v.Brain().Forget(host.MemoryWalkTarget)
	t.ticksRan = 0
	t.nextResponse = tick + t.def.EndDelay
}

// CurrentTarget reports the cell selected by the last scan, if any.
func (t *Worker) CurrentTarget() (host.BlockPos, bool) {
	return t.target, t.hasTarget
}

// setCurrentTarget clears prior candidates, rescans, and reservoir-samples
// the new target in the same pass the candidates are collected.
func (t *Worker) setCurrentTarget(w host.World, v host.Villager) {
	t.candidates = t.candidates[:0]
	t.hasTarget = false

	rng := w.Rand()
	seen := 0
	t.def.Scan.Scan(w, v, func(pos host.BlockPos) {
		t.candidates = append(t.candidates, pos)
		seen++
		if rng.Intn(seen) == 0 {
			t.target = pos
		}
	})
	t.hasTarget = seen > 0
}

func (t *Worker) addLookWalkIntent(v host.Villager) {
	v.Brain().Remember(host.MemoryWalkTarget, host.WalkIntent{
		Pos:             t.target,
		Speed:           t.def.Speed,
		CompletionRange: 1,
	})
	v.Brain().Remember(host.MemoryLookTarget, t.target)
}

// neighborhoodScan examines every cell in the 3x3x3 block around the
// villager.
func neighborhoodScan(suitable SuitabilityCheck) func(w host.World, v host.Villager, emit func(pos host.BlockPos)) {
	return func(w host.World, v host.Villager, emit func(pos host.BlockPos)) {
		origin := v.BlockPos()
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					pos := origin.Offset(dx, dy, dz)
					if suitable.SuitableTarget(pos, w) {
						emit(pos)
					}
				}
			}
		}
	}
}
