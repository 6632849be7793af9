package task

import (
	"errors"
	"fmt"
)

var (
	errNoEntries       = errors.New("builder holds no entries; professions without custom tasks need no provider")
	errNilFactory      = errors.New("factory must not be nil")
	errInvalidWeight   = errors.New("random entry weight must be positive")
	errInvalidCategory = errors.New("unknown category")
	errPlayProvider    = errors.New("play entries are profession-independent; register them on the base table")
)

// Builder accumulates a contributor's entries into a Provider. Misuse is a
// programming error and surfaces from Build rather than later at composition
// time.
type Builder struct {
	provider *Provider
	errs     []error
}

func NewBuilder() *Builder {
	return &Builder{provider: EmptyProvider()}
}

// Constant adds an always-considered entry for cat.
func (b *Builder) Constant(cat Category, priority int, build Factory) *Builder {
	if err := b.checkCategory(cat); err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	if build == nil {
		b.errs = append(b.errs, fmt.Errorf("task: constant %s: %w", cat, errNilFactory))
		return b
	}
	lists := b.provider.lists(cat)
	lists.constant = append(lists.constant, ConstantEntry{Priority: priority, Build: build})
	return b
}

// Random adds a weighted random-pool entry for cat.
func (b *Builder) Random(cat Category, build Factory, weight int) *Builder {
	if err := b.checkCategory(cat); err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	if build == nil {
		b.errs = append(b.errs, fmt.Errorf("task: random %s: %w", cat, errNilFactory))
		return b
	}
	if weight <= 0 {
		b.errs = append(b.errs, fmt.Errorf("task: random %s: %w (%d)", cat, errInvalidWeight, weight))
		return b
	}
	lists := b.provider.lists(cat)
	lists.random = append(lists.random, RandomEntry{Build: build, Weight: weight})
	return b
}

// Touch registers cat with an explicitly empty list. Host defaults still
// apply for empty categories; Touch only makes the registration observable.
func (b *Builder) Touch(cat Category) *Builder {
	if err := b.checkCategory(cat); err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.provider.lists(cat)
	return b
}

// Build finalizes the provider. A builder that never received an entry is
// rejected loudly; silently registering nothing always indicates API misuse.
func (b *Builder) Build() (*Provider, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("task: %w", errors.Join(b.errs...))
	}
	if b.provider.EntryCount() == 0 {
		return nil, fmt.Errorf("task: %w", errNoEntries)
	}
	return b.provider, nil
}

// MustBuild is Build for init-time wiring where failure should halt the
// process.
func (b *Builder) MustBuild() *Provider {
	provider, err := b.Build()
	if err != nil {
		panic(err)
	}
	return provider
}

func (b *Builder) checkCategory(cat Category) error {
	if !cat.Valid() {
		return fmt.Errorf("task: %w (%d)", errInvalidCategory, cat)
	}
	if cat == Play {
		return fmt.Errorf("task: %w", errPlayProvider)
	}
	return nil
}
