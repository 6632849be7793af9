package task

import "villager-tasks/tasklayer/host"

// Factory builds a fresh behavior instance for one composition call. The same
// factory is invoked once per actor, so it must be a pure function of its
// arguments with no mutable capture shared across calls.
type Factory func(profession host.Profession, speed float64) host.Behavior

// PlayFactory builds a behavior for the play list, which carries no
// profession.
type PlayFactory func(speed float64) host.Behavior

// ConstantEntry is an always-considered candidate. Priority is opaque
// ordering data interpreted by the host's scheduler; this layer only keeps
// registration order stable.
type ConstantEntry struct {
	Priority int
	Build    Factory
}

// RandomEntry is a candidate reachable only through the single synthetic
// weighted-random selector appended during composition. Weight must be
// positive.
type RandomEntry struct {
	Build  Factory
	Weight int
}

func wrapPlay(f PlayFactory) Factory {
	return func(_ host.Profession, speed float64) host.Behavior {
		return f(speed)
	}
}
