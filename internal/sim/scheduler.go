package sim

import (
	"context"
	"sort"

	"villager-tasks/tasklayer/compose"
	"villager-tasks/tasklayer/host"
	"villager-tasks/tasklayer/logging"
	"villager-tasks/tasklayer/task"
)

// Agent drives one villager with a minimal priority scheduler standing in for
// the host brain. Task lists are composed once at construction, the way the
// host composes during brain initialization, then walked every tick.
type Agent struct {
	villager *Villager
	lists    map[task.Category][]compose.Scored

	running      host.Behavior
	runningSince uint64
	pub          logging.Publisher
}

// NewAgent composes the villager's task lists through the interception
// binding. Babies get the play list; everyone gets core plus the activity
// categories the scheduler rotates through.
func NewAgent(v *Villager, binding *compose.Binding, speed float64, pub logging.Publisher) *Agent {
	lists := map[task.Category][]compose.Scored{}
	if v.Baby() {
		lists[task.Play] = binding.PlayTasks(speed)
	} else {
		profession := v.Profession()
		lists[task.Core] = binding.CoreTasks(profession, speed)
		lists[task.Work] = binding.WorkTasks(profession, speed)
		lists[task.Meet] = binding.MeetTasks(profession, speed)
		lists[task.Idle] = binding.IdleTasks(profession, speed)
		lists[task.Rest] = binding.RestTasks(profession, speed)
	}
	return &Agent{
		villager: v,
		lists:    lists,
		pub:      logging.OrNop(pub),
	}
}

// Villager returns the driven entity.
func (a *Agent) Villager() *Villager { return a.villager }

// Running reports whether a behavior is active this tick.
func (a *Agent) Running() bool { return a.running != nil }

// Tick advances the agent one game tick: continue the active behavior or try
// to start one from the current activity's list.
func (a *Agent) Tick(w *World) {
	tick := w.Tick()

	if a.running != nil {
		if a.running.ShouldKeepRunning(w, a.villager, tick) {
			a.running.Run(w, a.villager, tick)
			a.running.KeepRunning(w, a.villager, tick)
			a.villager.MoveTick()
			return
		}
		a.running.FinishRunning(w, a.villager, tick)
		a.pub.Publish(context.Background(), logging.Event{
			Type:     logging.EventWorkerFinished,
			Tick:     tick,
			Severity: logging.SeverityInfo,
			Category: logging.CategoryWorker,
			Actor:    logging.EntityRef{ID: a.villager.ID(), Kind: logging.EntityKindVillager},
			Payload:  map[string]uint64{"startedAt": a.runningSince},
		})
		a.running = nil
	}

	for _, candidate := range a.candidates(tick) {
		if candidate.Behavior.ShouldStart(w, a.villager, tick) {
			a.running = candidate.Behavior
			a.runningSince = tick
			a.running.Run(w, a.villager, tick)
			a.pub.Publish(context.Background(), logging.Event{
				Type:     logging.EventWorkerStarted,
				Tick:     tick,
				Severity: logging.SeverityInfo,
				Category: logging.CategoryWorker,
				Actor:    logging.EntityRef{ID: a.villager.ID(), Kind: logging.EntityKindVillager},
				Payload:  map[string]int{"priority": candidate.Priority},
			})
			break
		}
	}
	a.villager.MoveTick()
}

// candidates merges the core list with the current activity list and orders
// by priority. The stable sort keeps composed order within equal priorities,
// matching the determinism the composition layer guarantees.
func (a *Agent) candidates(tick uint64) []compose.Scored {
	activity := a.activity(tick)
	merged := make([]compose.Scored, 0,
		len(a.lists[task.Core])+len(a.lists[activity]))
	merged = append(merged, a.lists[task.Core]...)
	if activity != task.Core {
		merged = append(merged, a.lists[activity]...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Priority < merged[j].Priority
	})
	return merged
}

// activity picks the schedule phase from the time of day, a rough cut of the
// host's daily villager schedule.
func (a *Agent) activity(tick uint64) task.Category {
	if a.villager.Baby() {
		return task.Play
	}
	switch phase := tick % 24000; {
	case phase < 2000:
		return task.Idle
	case phase < 9000:
		return task.Work
	case phase < 11000:
		return task.Meet
	case phase < 12000:
		return task.Idle
	default:
		return task.Rest
	}
}
