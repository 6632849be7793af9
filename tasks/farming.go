package tasks

import (
	"errors"
	"fmt"

	"villager-tasks/tasklayer/host"
	"villager-tasks/tasklayer/task"
	"villager-tasks/tasklayer/worker"
)

const (
	defaultTendDuration = 200
)

var (
	errNoSeedItem = errors.New("seed item must be set")
	errNoPlanted  = errors.New("planted state factory must be set")
)

// CropTenderConfig describes a crop-tending behavior: harvest mature crops,
// replant seeds from the villager's inventory on open farmland.
type CropTenderConfig struct {
	// Seed is the inventory item consumed when planting.
	Seed string
	// Planted builds the freshly planted block state.
	Planted func() host.BlockState
	// Duration in ticks; defaultTendDuration when zero.
	Duration int
	// EndDelay is the post-run cooldown; the worker default when zero.
	EndDelay uint64
	// Speed for the walk intent; the worker default when zero.
	Speed float64
}

// NewCropTender builds one crop-tending worker instance. Harvesting breaks
// blocks, so the behavior is griefing-dependent.
func NewCropTender(cfg CropTenderConfig) (*worker.Worker, error) {
	if cfg.Seed == "" {
		return nil, fmt.Errorf("tasks: crop tender: %w", errNoSeedItem)
	}
	if cfg.Planted == nil {
		return nil, fmt.Errorf("tasks: crop tender: %w", errNoPlanted)
	}
	if cfg.Duration == 0 {
		cfg.Duration = defaultTendDuration
	}
	return worker.New(worker.Definition{
		Suitable:         worker.SuitabilityFunc(tendable),
		Action:           worker.ActionFunc(cfg.tend),
		Duration:         cfg.Duration,
		EndDelay:         cfg.EndDelay,
		Speed:            cfg.Speed,
		RequiresGriefing: true,
	})
}

// CropTenderFactory adapts the config to a registration factory. Each
// composition call gets a fresh worker; the contributed speed parameter wins
// over any configured one.
func CropTenderFactory(cfg CropTenderConfig) task.Factory {
	return func(_ host.Profession, speed float64) host.Behavior {
		c := cfg
		c.Speed = speed
		w, err := NewCropTender(c)
		if err != nil {
			panic(err)
		}
		return w
	}
}

// tendable matches a mature crop, or an empty cell directly above farmland.
func tendable(pos host.BlockPos, w host.World) bool {
	state := w.BlockState(pos)
	if crop, ok := state.(Crop); ok {
		return crop.Mature()
	}
	if state == nil {
		_, ok := w.BlockState(pos.Down()).(Farmland)
		return ok
	}
	return false
}

func (cfg CropTenderConfig) tend(target host.BlockPos, w host.World, v host.Villager, tick uint64) {
	state := w.BlockState(target)
	if crop, ok := state.(Crop); ok && crop.Mature() {
		w.BreakBlock(target, true)
		return
	}
	if state == nil {
		if _, ok := w.BlockState(target.Down()).(Farmland); !ok {
			return
		}
		if v.Inventory().Remove(cfg.Seed, 1) {
			w.SetBlockState(target, cfg.Planted())
		}
	}
}
