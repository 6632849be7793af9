package tasks

import (
	"villager-tasks/tasklayer/host"
	"villager-tasks/tasklayer/task"
	"villager-tasks/tasklayer/worker"
)

const (
	defaultBoneMealItem     = "bone_meal"
	defaultBoneMealDuration = 80
)

// BoneMealerConfig describes a fertilizing behavior: apply an item from the
// villager's inventory to immature crops. Only modifies blocks, so it runs
// with griefing disabled.
type BoneMealerConfig struct {
	// Item consumed per application; defaultBoneMealItem when empty.
	Item string
	// Duration in ticks; defaultBoneMealDuration when zero.
	Duration int
	// EndDelay is the post-run cooldown; the worker default when zero.
	EndDelay uint64
	// Speed for the walk intent; the worker default when zero.
	Speed float64
}

// NewBoneMealer builds one fertilizing worker instance.
func NewBoneMealer(cfg BoneMealerConfig) (*worker.Worker, error) {
	if cfg.Item == "" {
		cfg.Item = defaultBoneMealItem
	}
	if cfg.Duration == 0 {
		cfg.Duration = defaultBoneMealDuration
	}
	return worker.New(worker.Definition{
		Suitable: worker.SuitabilityFunc(fertilizable),
		Conditions: worker.ConditionsFunc(func(_ host.World, v host.Villager) bool {
			return v.Inventory().Contains(cfg.Item)
		}),
		Action:   worker.ActionFunc(cfg.fertilize),
		Duration: cfg.Duration,
		EndDelay: cfg.EndDelay,
		Speed:    cfg.Speed,
	})
}

// BoneMealerFactory adapts the config to a registration factory.
func BoneMealerFactory(cfg BoneMealerConfig) task.Factory {
	return func(_ host.Profession, speed float64) host.Behavior {
		c := cfg
		c.Speed = speed
		w, err := NewBoneMealer(c)
		if err != nil {
			panic(err)
		}
		return w
	}
}

func fertilizable(pos host.BlockPos, w host.World) bool {
	state := w.BlockState(pos)
	crop, ok := state.(Crop)
	if !ok || crop.Mature() {
		return false
	}
	_, ok = state.(Fertilizable)
	return ok
}

func (cfg BoneMealerConfig) fertilize(target host.BlockPos, w host.World, v host.Villager, tick uint64) {
	state := w.BlockState(target)
	fert, ok := state.(Fertilizable)
	if !ok {
		return
	}
	if crop, isCrop := state.(Crop); isCrop && crop.Mature() {
		return
	}
	if v.Inventory().Remove(cfg.Item, 1) {
		fert.Grow()
	}
}
