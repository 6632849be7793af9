package task

import (
	"context"
	"errors"
	"fmt"

	"villager-tasks/tasklayer/host"
	"villager-tasks/tasklayer/logging"
)

var (
	// ErrFrozen is returned for any write after Freeze. Registration is an
	// init-phase activity; late writes are programming errors.
	ErrFrozen = errors.New("registry is frozen")

	errNilProvider  = errors.New("provider must not be nil")
	errNoProfession = errors.New("profession must not be empty")
	errBasePlayOnly = errors.New("play entries use the play-specific adders")
)

// Registry collects contributed providers during the host's
// module-initialization phase. It is write-once-then-frozen: the host calls
// Freeze exactly once before spawning actors and composes against the
// returned snapshot.
type Registry struct {
	providers map[host.Profession]*Provider
	order     []host.Profession
	base      *Provider
	frozen    *Frozen
	pub       logging.Publisher
}

// NewRegistry returns an empty registry. A nil publisher disables event
// reporting.
func NewRegistry(pub logging.Publisher) *Registry {
	return &Registry{
		providers: map[host.Profession]*Provider{},
		base:      EmptyProvider(),
		pub:       logging.OrNop(pub),
	}
}

// Register stores provider for profession, merging with any provider already
// registered for it. Merging concatenates per-category lists in registration
// order and never replaces earlier contributions.
func (r *Registry) Register(profession host.Profession, provider *Provider) error {
	if r.frozen != nil {
		r.pub.Publish(context.Background(), logging.Event{
			Type:     logging.EventLateRegistration,
			Severity: logging.SeverityError,
			Category: logging.CategoryRegistry,
			Actor:    logging.EntityRef{ID: string(profession), Kind: logging.EntityKindRegistry},
		})
		return fmt.Errorf("task: register %q: %w", profession, ErrFrozen)
	}
	if profession == host.NoProfession {
		return fmt.Errorf("task: %w", errNoProfession)
	}
	if provider == nil {
		return fmt.Errorf("task: register %q: %w", profession, errNilProvider)
	}

	existing, ok := r.providers[profession]
	if ok {
		r.providers[profession] = merge(existing, provider)
	} else {
		r.providers[profession] = provider
		r.order = append(r.order, profession)
	}

	r.pub.Publish(context.Background(), logging.Event{
		Type:     logging.EventProviderRegistered,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryRegistry,
		Actor:    logging.EntityRef{ID: string(profession), Kind: logging.EntityKindRegistry},
		Payload:  map[string]int{"entries": provider.EntryCount()},
	})
	return nil
}

// MustRegister is Register for init-time wiring.
func (r *Registry) MustRegister(profession host.Profession, provider *Provider) {
	if err := r.Register(profession, provider); err != nil {
		panic(err)
	}
}

// Base exposes the profession-independent table. Entries added here apply to
// every villager in addition to profession-specific entries and host
// defaults.
func (r *Registry) Base() *BaseTable {
	return &BaseTable{registry: r}
}

// Freeze produces the immutable snapshot composition reads from. Freeze is
// idempotent; repeated calls return the same snapshot.
func (r *Registry) Freeze() *Frozen {
	if r.frozen != nil {
		return r.frozen
	}
	r.frozen = &Frozen{
		providers: r.providers,
		order:     append([]host.Profession(nil), r.order...),
		base:      r.base,
		empty:     EmptyProvider(),
	}
	r.pub.Publish(context.Background(), logging.Event{
		Type:     logging.EventRegistryFrozen,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryRegistry,
		Payload:  map[string]int{"professions": len(r.order)},
	})
	return r.frozen
}

// Frozen is the read-only registry snapshot. All lookups are pure; composing
// against the same snapshot with the same arguments yields the same result.
type Frozen struct {
	providers map[host.Profession]*Provider
	order     []host.Profession
	base      *Provider
	empty     *Provider
}

// Lookup returns the merged provider for profession, or an empty provider
// when none registered. Never nil.
func (f *Frozen) Lookup(profession host.Profession) *Provider {
	if f == nil {
		return EmptyProvider()
	}
	if provider, ok := f.providers[profession]; ok {
		return provider
	}
	return f.empty
}

// Base returns the profession-independent table.
func (f *Frozen) Base() *Provider {
	if f == nil {
		return EmptyProvider()
	}
	return f.base
}

// Professions lists registered professions in first-registration order.
func (f *Frozen) Professions() []host.Profession {
	if f == nil {
		return nil
	}
	return append([]host.Profession(nil), f.order...)
}

// BaseTable is the contributor-facing adder for every-villager entries. Play
// entries live here because baby villagers have no profession.
type BaseTable struct {
	registry *Registry
}

// AddConstant adds an always-considered entry for all professions.
func (t *BaseTable) AddConstant(cat Category, priority int, build Factory) error {
	if err := t.check(cat, build == nil); err != nil {
		return err
	}
	lists := t.registry.base.lists(cat)
	lists.constant = append(lists.constant, ConstantEntry{Priority: priority, Build: build})
	t.published(cat)
	return nil
}

// AddRandom adds a weighted random-pool entry for all professions.
func (t *BaseTable) AddRandom(cat Category, build Factory, weight int) error {
	if err := t.check(cat, build == nil); err != nil {
		return err
	}
	if weight <= 0 {
		return fmt.Errorf("task: base random %s: %w (%d)", cat, errInvalidWeight, weight)
	}
	lists := t.registry.base.lists(cat)
	lists.random = append(lists.random, RandomEntry{Build: build, Weight: weight})
	t.published(cat)
	return nil
}

// AddPlayConstant adds an always-considered play entry.
func (t *BaseTable) AddPlayConstant(priority int, build PlayFactory) error {
	if t.registry.frozen != nil {
		return fmt.Errorf("task: base play: %w", ErrFrozen)
	}
	if build == nil {
		return fmt.Errorf("task: base play: %w", errNilFactory)
	}
	lists := t.registry.base.lists(Play)
	lists.constant = append(lists.constant, ConstantEntry{Priority: priority, Build: wrapPlay(build)})
	t.published(Play)
	return nil
}

// AddPlayRandom adds a weighted random-pool play entry.
func (t *BaseTable) AddPlayRandom(build PlayFactory, weight int) error {
	if t.registry.frozen != nil {
		return fmt.Errorf("task: base play: %w", ErrFrozen)
	}
	if build == nil {
		return fmt.Errorf("task: base play: %w", errNilFactory)
	}
	if weight <= 0 {
		return fmt.Errorf("task: base play: %w (%d)", errInvalidWeight, weight)
	}
	lists := t.registry.base.lists(Play)
	lists.random = append(lists.random, RandomEntry{Build: wrapPlay(build), Weight: weight})
	t.published(Play)
	return nil
}

func (t *BaseTable) check(cat Category, nilFactory bool) error {
	if t.registry.frozen != nil {
		return fmt.Errorf("task: base %s: %w", cat, ErrFrozen)
	}
	if !cat.Valid() {
		return fmt.Errorf("task: base: %w (%d)", errInvalidCategory, cat)
	}
	if cat == Play {
		return fmt.Errorf("task: base: %w", errBasePlayOnly)
	}
	if nilFactory {
		return fmt.Errorf("task: base %s: %w", cat, errNilFactory)
	}
	return nil
}

func (t *BaseTable) published(cat Category) {
	t.registry.pub.Publish(context.Background(), logging.Event{
		Type:     logging.EventBaseEntryAdded,
		Severity: logging.SeverityDebug,
		Category: logging.CategoryRegistry,
		Payload:  map[string]string{"category": cat.String()},
	})
}
