package compose

import (
	"villager-tasks/tasklayer/host"
	"villager-tasks/tasklayer/task"
)

// Binding is the boundary the host calls at each of its fixed construction
// points during actor brain setup. One typed method per category; results are
// never nil. This shim is intentionally thin: when the host's construction
// points change shape, only this file needs regenerating.
type Binding struct {
	engine *Engine
}

func NewBinding(engine *Engine) *Binding {
	return &Binding{engine: engine}
}

func (b *Binding) CoreTasks(profession host.Profession, speed float64) []Scored {
	return b.engine.ComposeCategory(task.Core, profession, speed)
}

func (b *Binding) WorkTasks(profession host.Profession, speed float64) []Scored {
	return b.engine.ComposeCategory(task.Work, profession, speed)
}

func (b *Binding) RestTasks(profession host.Profession, speed float64) []Scored {
	return b.engine.ComposeCategory(task.Rest, profession, speed)
}

func (b *Binding) MeetTasks(profession host.Profession, speed float64) []Scored {
	return b.engine.ComposeCategory(task.Meet, profession, speed)
}

func (b *Binding) IdleTasks(profession host.Profession, speed float64) []Scored {
	return b.engine.ComposeCategory(task.Idle, profession, speed)
}

func (b *Binding) PanicTasks(profession host.Profession, speed float64) []Scored {
	return b.engine.ComposeCategory(task.Panic, profession, speed)
}

func (b *Binding) PreRaidTasks(profession host.Profession, speed float64) []Scored {
	return b.engine.ComposeCategory(task.PreRaid, profession, speed)
}

func (b *Binding) RaidTasks(profession host.Profession, speed float64) []Scored {
	return b.engine.ComposeCategory(task.Raid, profession, speed)
}

func (b *Binding) HideTasks(profession host.Profession, speed float64) []Scored {
	return b.engine.ComposeCategory(task.Hide, profession, speed)
}

// PlayTasks carries no profession; baby villagers have none.
func (b *Binding) PlayTasks(speed float64) []Scored {
	return b.engine.ComposeCategory(task.Play, host.NoProfession, speed)
}
