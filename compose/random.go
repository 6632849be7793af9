package compose

import "villager-tasks/tasklayer/host"

type weightedBehavior struct {
	behavior host.Behavior
	weight   int
}

// randomSelector is the single synthetic constant entry wrapping a category's
// random pool. Each start attempt rolls one pool member by weight using the
// engine's global RNG and delegates the lifecycle to it; a refusing member
// means the selector refuses this attempt, which the host treats as routine.
type randomSelector struct {
	pool    []weightedBehavior
	current host.Behavior
}

func (s *randomSelector) ShouldStart(w host.World, v host.Villager, tick uint64) bool {
	s.current = s.pick(w)
	if s.current == nil {
		return false
	}
	return s.current.ShouldStart(w, v, tick)
}

func (s *randomSelector) Run(w host.World, v host.Villager, tick uint64) {
	if s.current != nil {
		s.current.Run(w, v, tick)
	}
}

func (s *randomSelector) KeepRunning(w host.World, v host.Villager, tick uint64) {
	if s.current != nil {
		s.current.KeepRunning(w, v, tick)
	}
}

func (s *randomSelector) ShouldKeepRunning(w host.World, v host.Villager, tick uint64) bool {
	if s.current == nil {
		return false
	}
	return s.current.ShouldKeepRunning(w, v, tick)
}

func (s *randomSelector) FinishRunning(w host.World, v host.Villager, tick uint64) {
	if s.current != nil {
		s.current.FinishRunning(w, v, tick)
	}
}

// pick rolls the pool by total weight. Weights were validated positive at
// registration.
func (s *randomSelector) pick(w host.World) host.Behavior {
	total := 0
	for _, member := range s.pool {
		total += member.weight
	}
	if total <= 0 {
		return nil
	}
	roll := w.Rand().Intn(total)
	for _, member := range s.pool {
		roll -= member.weight
		if roll < 0 {
			return member.behavior
		}
	}
	return s.pool[len(s.pool)-1].behavior
}
