package tasks

// Narrow block interfaces the illustration behaviors assert against. Hosts
// report empty cells as nil block states; anything else is matched
// structurally, so engines keep their own block representations.

// Crop is a growing plant.
type Crop interface {
	Mature() bool
}

// Fertilizable can be advanced a growth stage.
type Fertilizable interface {
	Grow()
}

// Farmland is tilled soil a crop can be planted on.
type Farmland interface {
	Tilled() bool
}
