package host

import "math"

// Profession identifies a villager's role. The values are host vocabulary;
// this layer treats them as opaque keys.
type Profession string

// NoProfession is passed where a construction point carries no profession,
// such as the play task list built for baby villagers.
const NoProfession Profession = ""

// Vec3 is a position in world units.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// BlockPos addresses a single world cell.
type BlockPos struct {
	X int
	Y int
	Z int
}

// Offset returns the position shifted by the given deltas.
func (p BlockPos) Offset(dx, dy, dz int) BlockPos {
	return BlockPos{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// Down returns the cell directly below.
func (p BlockPos) Down() BlockPos {
	return p.Offset(0, -1, 0)
}

// Center returns the world-unit center of the cell.
func (p BlockPos) Center() Vec3 {
	return Vec3{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5, Z: float64(p.Z) + 0.5}
}

// WithinDistance reports whether the cell center lies within dist world units
// of pos.
func (p BlockPos) WithinDistance(pos Vec3, dist float64) bool {
	c := p.Center()
	dx := c.X - pos.X
	dy := c.Y - pos.Y
	dz := c.Z - pos.Z
	return math.Sqrt(dx*dx+dy*dy+dz*dz) <= dist
}
