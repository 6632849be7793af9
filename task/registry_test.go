package task

import (
	"errors"
	"testing"

	"villager-tasks/tasklayer/host"
)

type stubBehavior struct {
	label string
}

func (stubBehavior) ShouldStart(host.World, host.Villager, uint64) bool       { return false }
func (stubBehavior) Run(host.World, host.Villager, uint64)                    {}
func (stubBehavior) KeepRunning(host.World, host.Villager, uint64)            {}
func (stubBehavior) ShouldKeepRunning(host.World, host.Villager, uint64) bool { return false }
func (stubBehavior) FinishRunning(host.World, host.Villager, uint64)          {}

func factory(label string) Factory {
	return func(host.Profession, float64) host.Behavior {
		return stubBehavior{label: label}
	}
}

func labels(entries []ConstantEntry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Build("", 0).(stubBehavior).label)
	}
	return out
}

func randomLabels(entries []RandomEntry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Build("", 0).(stubBehavior).label)
	}
	return out
}

func TestRegisterMergesInRegistrationOrder(t *testing.T) {
	registry := NewRegistry(nil)

	first := NewBuilder().
		Constant(Work, 5, factory("a1")).
		Random(Work, factory("r1"), 2).
		MustBuild()
	second := NewBuilder().
		Constant(Work, 4, factory("b1")).
		Constant(Idle, 1, factory("b2")).
		Random(Work, factory("r2"), 3).
		MustBuild()

	if err := registry.Register("farmer", first); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := registry.Register("farmer", second); err != nil {
		t.Fatalf("second register failed: %v", err)
	}

	merged := registry.Freeze().Lookup("farmer")

	constant, ok := merged.Constant(Work)
	if !ok {
		t.Fatal("expected work category to be registered")
	}
	got := labels(constant)
	want := []string{"a1", "b1"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected constant order %v, got %v", want, got)
	}

	random, ok := merged.Random(Work)
	if !ok {
		t.Fatal("expected work random pool to be registered")
	}
	gotRandom := randomLabels(random)
	if len(gotRandom) != 2 || gotRandom[0] != "r1" || gotRandom[1] != "r2" {
		t.Fatalf("expected random order [r1 r2], got %v", gotRandom)
	}

	idle, ok := merged.Constant(Idle)
	if !ok || len(idle) != 1 {
		t.Fatalf("expected idle entry from second contributor, got %v ok=%v", idle, ok)
	}
}

func TestRegisterDoesNotReplaceEarlierContributors(t *testing.T) {
	// Registering B after A must keep all of A's entries; order flips when
	// registration order flips, but content never changes.
	providerA := func() *Provider { return NewBuilder().Constant(Work, 1, factory("a")).MustBuild() }
	providerB := func() *Provider { return NewBuilder().Constant(Work, 2, factory("b")).MustBuild() }

	ab := NewRegistry(nil)
	ab.MustRegister("farmer", providerA())
	ab.MustRegister("farmer", providerB())

	ba := NewRegistry(nil)
	ba.MustRegister("farmer", providerB())
	ba.MustRegister("farmer", providerA())

	abEntries, _ := ab.Freeze().Lookup("farmer").Constant(Work)
	baEntries, _ := ba.Freeze().Lookup("farmer").Constant(Work)

	if got := labels(abEntries); got[0] != "a" || got[1] != "b" {
		t.Fatalf("a-then-b order wrong: %v", got)
	}
	if got := labels(baEntries); got[0] != "b" || got[1] != "a" {
		t.Fatalf("b-then-a order wrong: %v", got)
	}
}

func TestLookupUnregisteredReturnsEmptyNeverNil(t *testing.T) {
	frozen := NewRegistry(nil).Freeze()

	provider := frozen.Lookup("cleric")
	if provider == nil {
		t.Fatal("lookup must never return nil")
	}
	for _, cat := range Categories() {
		if provider.Has(cat) {
			t.Fatalf("unregistered profession should have no categories, found %s", cat)
		}
	}
}

func TestAbsentVersusEmptyCategory(t *testing.T) {
	registry := NewRegistry(nil)
	provider := NewBuilder().
		Constant(Work, 1, factory("w")).
		Touch(Idle).
		MustBuild()
	registry.MustRegister("farmer", provider)
	merged := registry.Freeze().Lookup("farmer")

	if merged.Has(Meet) {
		t.Fatal("meet was never touched and must read as absent")
	}
	if !merged.Has(Idle) {
		t.Fatal("idle was explicitly registered empty and must read as present")
	}
	idle, ok := merged.Constant(Idle)
	if !ok || len(idle) != 0 {
		t.Fatalf("idle should be present with zero entries, got %v ok=%v", idle, ok)
	}
}

func TestRegisterAfterFreezeFails(t *testing.T) {
	registry := NewRegistry(nil)
	registry.Freeze()

	err := registry.Register("farmer", NewBuilder().Constant(Work, 1, factory("w")).MustBuild())
	if !errors.Is(err, ErrFrozen) {
		t.Fatalf("expected ErrFrozen, got %v", err)
	}
	if err := registry.Base().AddConstant(Work, 1, factory("w")); !errors.Is(err, ErrFrozen) {
		t.Fatalf("expected ErrFrozen from base adder, got %v", err)
	}
}

func TestFreezeIsIdempotent(t *testing.T) {
	registry := NewRegistry(nil)
	a := registry.Freeze()
	b := registry.Freeze()
	if a != b {
		t.Fatal("repeated freeze must return the same snapshot")
	}
}

func TestBuilderRejectsEmptyBuild(t *testing.T) {
	if _, err := NewBuilder().Build(); err == nil {
		t.Fatal("expected empty builder to fail")
	}
}

func TestBuilderRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*Provider, error)
	}{
		{"nil constant factory", func() (*Provider, error) {
			return NewBuilder().Constant(Work, 1, nil).Build()
		}},
		{"nil random factory", func() (*Provider, error) {
			return NewBuilder().Random(Work, nil, 1).Build()
		}},
		{"zero weight", func() (*Provider, error) {
			return NewBuilder().Random(Work, factory("w"), 0).Build()
		}},
		{"negative weight", func() (*Provider, error) {
			return NewBuilder().Random(Work, factory("w"), -3).Build()
		}},
		{"play constant", func() (*Provider, error) {
			return NewBuilder().Constant(Play, 1, factory("p")).Build()
		}},
		{"play random", func() (*Provider, error) {
			return NewBuilder().Random(Play, factory("p"), 1).Build()
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.build(); err == nil {
				t.Fatal("expected build to fail")
			}
		})
	}
}

func TestBaseTablePlayEntries(t *testing.T) {
	registry := NewRegistry(nil)
	err := registry.Base().AddPlayConstant(5, func(speed float64) host.Behavior {
		return stubBehavior{label: "tag"}
	})
	if err != nil {
		t.Fatalf("play constant add failed: %v", err)
	}
	if err := registry.Base().AddConstant(Play, 5, factory("bad")); err == nil {
		t.Fatal("category-specific base adder must reject play")
	}

	base := registry.Freeze().Base()
	entries, ok := base.Constant(Play)
	if !ok || len(entries) != 1 {
		t.Fatalf("expected one play entry, got %v ok=%v", entries, ok)
	}
	behavior := entries[0].Build("ignored", 0.5)
	if behavior.(stubBehavior).label != "tag" {
		t.Fatalf("unexpected behavior %v", behavior)
	}
}

func TestCategoryStrings(t *testing.T) {
	if got := Work.String(); got != "work" {
		t.Fatalf("expected work, got %q", got)
	}
	if got := Category(200).String(); got != "unknown" {
		t.Fatalf("expected unknown, got %q", got)
	}
	if len(Categories()) != int(categoryCount) {
		t.Fatalf("Categories() must enumerate all %d categories", categoryCount)
	}
}
