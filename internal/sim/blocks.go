package sim

// Block states understood by the simulation. They satisfy the narrow
// interfaces the illustration behaviors assert against.

// CropState is a growing crop.
type CropState struct {
	Kind   string
	Age    int
	MaxAge int
}

func (c *CropState) Mature() bool {
	return c.Age >= c.MaxAge
}

func (c *CropState) Grow() {
	if c.Age < c.MaxAge {
		c.Age++
	}
}

// FarmlandState is tilled soil.
type FarmlandState struct{}

func (FarmlandState) Tilled() bool {
	return true
}

// StoneState is an inert filler block.
type StoneState struct{}
