package sim

import (
	"math"

	"github.com/google/uuid"

	"villager-tasks/tasklayer/host"
)

// Inventory is a simple item-count bag.
type Inventory struct {
	items map[string]int
}

func NewInventory() *Inventory {
	return &Inventory{items: map[string]int{}}
}

func (inv *Inventory) Add(item string, n int) {
	if n <= 0 {
		return
	}
	inv.items[item] += n
}

func (inv *Inventory) Contains(item string) bool {
	return inv.items[item] > 0
}

func (inv *Inventory) Count(item string) int {
	return inv.items[item]
}

func (inv *Inventory) Remove(item string, n int) bool {
	if n <= 0 || inv.items[item] <= 0 {
		return false
	}
	if inv.items[item] < n {
		n = inv.items[item]
	}
	inv.items[item] -= n
	if inv.items[item] == 0 {
		delete(inv.items, item)
	}
	return true
}

// Brain is a slot-keyed memory store.
type Brain struct {
	memories map[host.MemorySlot]any
}

func NewBrain() *Brain {
	return &Brain{memories: map[host.MemorySlot]any{}}
}

func (b *Brain) Remember(slot host.MemorySlot, value any) {
	b.memories[slot] = value
}

func (b *Brain) Forget(slot host.MemorySlot) {
	delete(b.memories, slot)
}

// Recall returns the stored value for slot, if any.
func (b *Brain) Recall(slot host.MemorySlot) (any, bool) {
	value, ok := b.memories[slot]
	return value, ok
}

// Villager implements host.Villager over the simulation world.
type Villager struct {
	id         string
	pos        host.Vec3
	profession host.Profession
	baby       bool
	inventory  *Inventory
	brain      *Brain
}

func NewVillager(profession host.Profession, pos host.Vec3) *Villager {
	return &Villager{
		id:         uuid.NewString(),
		pos:        pos,
		profession: profession,
		inventory:  NewInventory(),
		brain:      NewBrain(),
	}
}

// NewBabyVillager builds a professionless baby.
func NewBabyVillager(pos host.Vec3) *Villager {
	v := NewVillager(host.NoProfession, pos)
	v.baby = true
	return v
}

func (v *Villager) ID() string { return v.id }

func (v *Villager) Pos() host.Vec3 { return v.pos }

func (v *Villager) BlockPos() host.BlockPos {
	return host.BlockPos{
		X: int(math.Floor(v.pos.X)),
		Y: int(math.Floor(v.pos.Y)),
		Z: int(math.Floor(v.pos.Z)),
	}
}

func (v *Villager) Profession() host.Profession { return v.profession }

func (v *Villager) Baby() bool { return v.baby }

func (v *Villager) Inventory() host.Inventory { return v.inventory }

func (v *Villager) Brain() host.Brain { return v.brain }

// SetPos teleports the villager, for test setup.
func (v *Villager) SetPos(pos host.Vec3) {
	v.pos = pos
}

// Items exposes the concrete inventory for seeding and assertions.
func (v *Villager) Items() *Inventory { return v.inventory }

// Memories exposes the concrete brain for assertions.
func (v *Villager) Memories() *Brain { return v.brain }

// MoveTick is the stand-in for host navigation: one straight-line step toward
// the current walk intent, stopping at its completion range.
func (v *Villager) MoveTick() {
	value, ok := v.brain.Recall(host.MemoryWalkTarget)
	if !ok {
		return
	}
	intent, ok := value.(host.WalkIntent)
	if !ok {
		return
	}
	goal := intent.Pos.Center()
	dx := goal.X - v.pos.X
	dy := goal.Y - v.pos.Y
	dz := goal.Z - v.pos.Z
	dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
	reach := float64(intent.CompletionRange)
	if reach <= 0 {
		reach = 1
	}
	if dist <= reach {
		return
	}
	step := intent.Speed
	if step <= 0 || step > dist {
		step = dist
	}
	v.pos.X += dx / dist * step
	v.pos.Y += dy / dist * step
	v.pos.Z += dz / dist * step
}
