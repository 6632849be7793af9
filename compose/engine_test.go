package compose_test

import (
	"testing"

	"villager-tasks/tasklayer/compose"
	"villager-tasks/tasklayer/host"
	"villager-tasks/tasklayer/internal/sim"
	"villager-tasks/tasklayer/task"
)

// recorder is a test behavior that reports its label and counts starts.
type recorder struct {
	label  string
	starts *int
}

func (r *recorder) ShouldStart(host.World, host.Villager, uint64) bool {
	if r.starts != nil {
		*r.starts++
	}
	return true
}
func (r *recorder) Run(host.World, host.Villager, uint64)                    {}
func (r *recorder) KeepRunning(host.World, host.Villager, uint64)            {}
func (r *recorder) ShouldKeepRunning(host.World, host.Villager, uint64) bool { return false }
func (r *recorder) FinishRunning(host.World, host.Villager, uint64)          {}

func labeled(label string) task.Factory {
	return func(host.Profession, float64) host.Behavior {
		return &recorder{label: label}
	}
}

func entryLabel(s compose.Scored) string {
	switch b := s.Behavior.(type) {
	case sim.Builtin:
		return "builtin:" + b.Label
	case *recorder:
		return "custom:" + b.label
	default:
		return "selector"
	}
}

func buildEngine(t *testing.T, wire func(*task.Registry)) *compose.Engine {
	t.Helper()
	registry := task.NewRegistry(nil)
	if wire != nil {
		wire(registry)
	}
	return compose.NewEngine(registry.Freeze(), sim.BuiltinDefaults{})
}

func TestComposeWorkScenarioOrdering(t *testing.T) {
	// WORK for a farmer at speed 0.5 must compose as: builtin farmer work
	// defaults, base work entries, farmer-specific entries, then the single
	// synthetic random selector last.
	engine := buildEngine(t, func(registry *task.Registry) {
		if err := registry.Base().AddConstant(task.Work, 2, labeled("hold_trade_offer")); err != nil {
			t.Fatalf("base add failed: %v", err)
		}
		if err := registry.Base().AddConstant(task.Work, 2, labeled("find_interaction")); err != nil {
			t.Fatalf("base add failed: %v", err)
		}
		if err := registry.Base().AddRandom(task.Work, labeled("base_pool"), 1); err != nil {
			t.Fatalf("base random add failed: %v", err)
		}
		registry.MustRegister("farmer", task.NewBuilder().
			Constant(task.Work, 6, labeled("tend_crops")).
			Random(task.Work, labeled("farmer_pool"), 2).
			MustBuild())
	})

	out := engine.ComposeCategory(task.Work, "farmer", 0.5)

	want := []string{
		"builtin:villager_work",
		"builtin:farm_nearby_land",
		"custom:hold_trade_offer",
		"custom:find_interaction",
		"custom:tend_crops",
		"selector",
	}
	if len(out) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(out))
	}
	for i, entry := range out {
		if got := entryLabel(entry); got != want[i] {
			t.Fatalf("entry %d: expected %s, got %s", i, want[i], got)
		}
	}
	if out[len(out)-1].Priority != compose.RandomSelectorPriority {
		t.Fatalf("selector priority = %d, expected %d", out[len(out)-1].Priority, compose.RandomSelectorPriority)
	}
}

func TestComposeDeterministic(t *testing.T) {
	engine := buildEngine(t, func(registry *task.Registry) {
		registry.MustRegister("farmer", task.NewBuilder().
			Constant(task.Work, 6, labeled("tend_crops")).
			Constant(task.Work, 9, labeled("inspect_fields")).
			Random(task.Work, labeled("pool"), 1).
			MustBuild())
	})

	first := engine.ComposeCategory(task.Work, "farmer", 0.5)
	second := engine.ComposeCategory(task.Work, "farmer", 0.5)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Priority != second[i].Priority {
			t.Fatalf("entry %d priority differs: %d vs %d", i, first[i].Priority, second[i].Priority)
		}
		if entryLabel(first[i]) != entryLabel(second[i]) {
			t.Fatalf("entry %d label differs: %s vs %s", i, entryLabel(first[i]), entryLabel(second[i]))
		}
	}
}

func TestComposeFreshBehaviorInstancesPerCall(t *testing.T) {
	engine := buildEngine(t, func(registry *task.Registry) {
		registry.MustRegister("farmer", task.NewBuilder().
			Constant(task.Work, 6, labeled("tend_crops")).
			MustBuild())
	})

	first := engine.ComposeCategory(task.Work, "farmer", 0.5)
	second := engine.ComposeCategory(task.Work, "farmer", 0.5)

	a := first[len(first)-1].Behavior.(*recorder)
	b := second[len(second)-1].Behavior.(*recorder)
	if a == b {
		t.Fatal("each composition call must realize fresh behavior instances")
	}
}

func TestComposeEmptyEverywhere(t *testing.T) {
	registry := task.NewRegistry(nil)
	engine := compose.NewEngine(registry.Freeze(), nil)

	out := engine.ComposeCategory(task.Raid, "farmer", 0.5)
	if out == nil {
		t.Fatal("composition must never return nil")
	}
	if len(out) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(out))
	}
}

func TestComposeAbsentAndEmptyCategoryKeepDefaults(t *testing.T) {
	engine := buildEngine(t, func(registry *task.Registry) {
		registry.MustRegister("farmer", task.NewBuilder().
			Constant(task.Idle, 1, labeled("chat")).
			Touch(task.Work).
			MustBuild())
	})

	// Work registered explicitly empty: defaults only.
	explicit := engine.ComposeCategory(task.Work, "farmer", 0.5)
	// Meet never registered: defaults only.
	absent := engine.ComposeCategory(task.Meet, "farmer", 0.5)

	for _, entry := range explicit {
		if _, ok := entry.Behavior.(sim.Builtin); !ok {
			t.Fatalf("explicit-empty work should compose only defaults, found %s", entryLabel(entry))
		}
	}
	if len(absent) != 1 {
		t.Fatalf("absent meet should compose only the single default, got %d", len(absent))
	}
}

func TestRandomPoolFoldsToSingleSelector(t *testing.T) {
	engine := buildEngine(t, func(registry *task.Registry) {
		if err := registry.Base().AddRandom(task.Work, labeled("p1"), 1); err != nil {
			t.Fatalf("base random add failed: %v", err)
		}
		registry.MustRegister("farmer", task.NewBuilder().
			Random(task.Work, labeled("p2"), 2).
			Random(task.Work, labeled("p3"), 3).
			MustBuild())
		registry.MustRegister("farmer", task.NewBuilder().
			Random(task.Work, labeled("p4"), 4).
			MustBuild())
	})

	out := engine.ComposeCategory(task.Work, "farmer", 0.5)

	selectors := 0
	for _, entry := range out {
		if entryLabel(entry) == "selector" {
			selectors++
			if entry.Priority != compose.RandomSelectorPriority {
				t.Fatalf("selector priority = %d, expected %d", entry.Priority, compose.RandomSelectorPriority)
			}
		}
	}
	if selectors != 1 {
		t.Fatalf("expected exactly one synthetic selector, got %d", selectors)
	}
}

func TestRandomSelectorWeightedPick(t *testing.T) {
	lightStarts, heavyStarts := 0, 0
	registry := task.NewRegistry(nil)
	registry.MustRegister("farmer", task.NewBuilder().
		Random(task.Work, func(host.Profession, float64) host.Behavior {
			return &recorder{label: "light", starts: &lightStarts}
		}, 1).
		Random(task.Work, func(host.Profession, float64) host.Behavior {
			return &recorder{label: "heavy", starts: &heavyStarts}
		}, 3).
		MustBuild())
	engine := compose.NewEngine(registry.Freeze(), nil)

	out := engine.ComposeCategory(task.Work, "farmer", 0.5)
	if len(out) != 1 {
		t.Fatalf("expected lone selector entry, got %d", len(out))
	}
	selector := out[0].Behavior

	world := sim.NewWorld("selector-test")
	villager := sim.NewVillager("farmer", host.Vec3{})

	const trials = 4000
	for i := 0; i < trials; i++ {
		if !selector.ShouldStart(world, villager, world.Tick()) {
			t.Fatal("pool members always accept; selector must start")
		}
	}
	if lightStarts+heavyStarts != trials {
		t.Fatalf("start counts %d+%d do not cover %d trials", lightStarts, heavyStarts, trials)
	}
	ratio := float64(heavyStarts) / float64(trials)
	if ratio < 0.70 || ratio > 0.80 {
		t.Fatalf("weight-3 member picked %.3f of trials, expected about 0.75", ratio)
	}
}

func TestBindingNeverReturnsNil(t *testing.T) {
	registry := task.NewRegistry(nil)
	binding := compose.NewBinding(compose.NewEngine(registry.Freeze(), nil))

	lists := [][]compose.Scored{
		binding.CoreTasks("farmer", 0.5),
		binding.WorkTasks("farmer", 0.5),
		binding.RestTasks("farmer", 0.5),
		binding.MeetTasks("farmer", 0.5),
		binding.IdleTasks("farmer", 0.5),
		binding.PanicTasks("farmer", 0.5),
		binding.PreRaidTasks("farmer", 0.5),
		binding.RaidTasks("farmer", 0.5),
		binding.HideTasks("farmer", 0.5),
		binding.PlayTasks(0.5),
	}
	for i, list := range lists {
		if list == nil {
			t.Fatalf("construction point %d returned nil", i)
		}
	}
}

func TestPlayComposesWithoutProfession(t *testing.T) {
	registry := task.NewRegistry(nil)
	if err := registry.Base().AddPlayConstant(5, func(speed float64) host.Behavior {
		return &recorder{label: "tag"}
	}); err != nil {
		t.Fatalf("play add failed: %v", err)
	}
	engine := compose.NewEngine(registry.Freeze(), sim.BuiltinDefaults{})
	binding := compose.NewBinding(engine)

	out := binding.PlayTasks(0.6)
	if len(out) != 2 {
		t.Fatalf("expected default + custom play entries, got %d", len(out))
	}
	if entryLabel(out[0]) != "builtin:play_tag" {
		t.Fatalf("play defaults must come first, got %s", entryLabel(out[0]))
	}
	if entryLabel(out[1]) != "custom:tag" {
		t.Fatalf("custom play entry missing, got %s", entryLabel(out[1]))
	}
}
