package compose

import (
	"context"

	"villager-tasks/tasklayer/host"
	"villager-tasks/tasklayer/logging"
	"villager-tasks/tasklayer/task"
)

// RandomSelectorPriority is the fixed priority given to the synthetic
// weighted-random entry appended during composition.
const RandomSelectorPriority = 3

// Scored pairs a realized behavior with its priority. Priority is opaque to
// this layer; the host's scheduler interprets it.
type Scored struct {
	Priority int
	Behavior host.Behavior
}

// Defaults supplies the host's built-in entries for a construction point.
// The implementation pre-exists in the host and is not part of this layer.
type Defaults interface {
	DefaultEntries(cat task.Category, profession host.Profession, speed float64) []Scored
}

// DefaultsFunc adapts a function to the Defaults interface.
type DefaultsFunc func(cat task.Category, profession host.Profession, speed float64) []Scored

func (f DefaultsFunc) DefaultEntries(cat task.Category, profession host.Profession, speed float64) []Scored {
	if f == nil {
		return nil
	}
	return f(cat, profession, speed)
}

// Engine composes per-category task lists from host defaults, base entries,
// and profession-specific entries. It reads only the frozen registry
// snapshot, so composition is deterministic and safe to repeat.
type Engine struct {
	registry       *task.Frozen
	defaults       Defaults
	randomPriority int
	pub            logging.Publisher
}

// Option adjusts engine construction.
type Option func(*Engine)

// WithRandomPriority overrides the priority of the synthetic random selector
// entry.
func WithRandomPriority(priority int) Option {
	return func(e *Engine) { e.randomPriority = priority }
}

// WithPublisher attaches an event publisher.
func WithPublisher(pub logging.Publisher) Option {
	return func(e *Engine) { e.pub = logging.OrNop(pub) }
}

// NewEngine builds an engine over a frozen registry. A nil defaults
// collaborator contributes no built-in entries.
func NewEngine(registry *task.Frozen, defaults Defaults, opts ...Option) *Engine {
	e := &Engine{
		registry:       registry,
		defaults:       defaults,
		randomPriority: RandomSelectorPriority,
		pub:            logging.NopPublisher(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ComposeCategory returns the ordered task list for one construction point:
// host defaults, then base constant entries, then profession constant
// entries, then at most one synthetic random-selector entry wrapping every
// random-pool entry registered for the category. The result is never nil and
// never sorted or deduplicated; order as composed is the contract.
//
// Absent and explicitly-empty contributor categories compose identically:
// defaults are always included. Play composes the same way with the
// profession left empty.
func (e *Engine) ComposeCategory(cat task.Category, profession host.Profession, speed float64) []Scored {
	out := make([]Scored, 0, 8)

	if e.defaults != nil {
		out = append(out, e.defaults.DefaultEntries(cat, profession, speed)...)
	}

	base := e.registry.Base()
	provider := e.registry.Lookup(profession)

	if constant, ok := base.Constant(cat); ok {
		out = appendRealized(out, constant, profession, speed)
	}
	if constant, ok := provider.Constant(cat); ok {
		out = appendRealized(out, constant, profession, speed)
	}

	pool := make([]weightedBehavior, 0)
	if random, ok := base.Random(cat); ok {
		pool = appendPool(pool, random, profession, speed)
	}
	if random, ok := provider.Random(cat); ok {
		pool = appendPool(pool, random, profession, speed)
	}
	if len(pool) > 0 {
		out = append(out, Scored{Priority: e.randomPriority, Behavior: &randomSelector{pool: pool}})
	}

	e.pub.Publish(context.Background(), logging.Event{
		Type:     logging.EventCompositionServed,
		Severity: logging.SeverityDebug,
		Category: logging.CategoryCompose,
		Actor:    logging.EntityRef{ID: string(profession), Kind: logging.EntityKindRegistry},
		Payload: map[string]any{
			"category": cat.String(),
			"entries":  len(out),
			"pool":     len(pool),
		},
	})
	return out
}

func appendRealized(out []Scored, entries []task.ConstantEntry, profession host.Profession, speed float64) []Scored {
	for _, entry := range entries {
		out = append(out, Scored{Priority: entry.Priority, Behavior: entry.Build(profession, speed)})
	}
	return out
}

func appendPool(pool []weightedBehavior, entries []task.RandomEntry, profession host.Profession, speed float64) []weightedBehavior {
	for _, entry := range entries {
		pool = append(pool, weightedBehavior{
			behavior: entry.Build(profession, speed),
			weight:   entry.Weight,
		})
	}
	return pool
}
