package sim

import (
	"villager-tasks/tasklayer/compose"
	"villager-tasks/tasklayer/host"
	"villager-tasks/tasklayer/task"
)

// Builtin stands in for a host built-in behavior the simulation does not
// model. It never starts, so composed custom entries get their turn, but it
// keeps default lists realistically populated for ordering assertions.
type Builtin struct {
	Label string
}

func (Builtin) ShouldStart(host.World, host.Villager, uint64) bool  { return false }
func (Builtin) Run(host.World, host.Villager, uint64)               {}
func (Builtin) KeepRunning(host.World, host.Villager, uint64)       {}
func (Builtin) ShouldKeepRunning(host.World, host.Villager, uint64) bool {
	return false
}
func (Builtin) FinishRunning(host.World, host.Villager, uint64) {}

// BuiltinDefaults supplies the stand-in default entries per construction
// point, in the host's fixed order.
type BuiltinDefaults struct{}

func (BuiltinDefaults) DefaultEntries(cat task.Category, profession host.Profession, speed float64) []compose.Scored {
	switch cat {
	case task.Core:
		return []compose.Scored{
			builtin(0, "stay_above_water"),
			builtin(0, "open_doors"),
			builtin(0, "look_around"),
			builtin(1, "wander_around"),
		}
	case task.Work:
		entries := []compose.Scored{builtin(5, "villager_work")}
		if profession == "farmer" {
			entries = append(entries, builtin(7, "farm_nearby_land"))
		}
		return entries
	case task.Rest:
		return []compose.Scored{builtin(3, "sleep_at_home")}
	case task.Meet:
		return []compose.Scored{builtin(2, "meet_at_bell")}
	case task.Idle:
		return []compose.Scored{builtin(2, "find_interaction_target")}
	case task.Panic:
		return []compose.Scored{builtin(1, "flee_from_hostiles")}
	case task.PreRaid:
		return []compose.Scored{builtin(5, "ring_bell")}
	case task.Raid:
		return []compose.Scored{builtin(5, "seek_shelter")}
	case task.Hide:
		return []compose.Scored{builtin(0, "go_indoors")}
	case task.Play:
		return []compose.Scored{builtin(5, "play_tag")}
	default:
		return nil
	}
}

func builtin(priority int, label string) compose.Scored {
	return compose.Scored{Priority: priority, Behavior: Builtin{Label: label}}
}
