package task

// Category names a phase of the villager behavior tree. The set is closed;
// the host has exactly one construction point per category.
type Category uint8

const (
	Core Category = iota
	Work
	Rest
	Meet
	Idle
	Panic
	PreRaid
	Raid
	Hide
	// Play is built for baby villagers only and never receives a
	// profession; profession providers cannot register Play entries.
	Play

	categoryCount
)

var categoryNames = [categoryCount]string{
	Core:    "core",
	Work:    "work",
	Rest:    "rest",
	Meet:    "meet",
	Idle:    "idle",
	Panic:   "panic",
	PreRaid: "preraid",
	Raid:    "raid",
	Hide:    "hide",
	Play:    "play",
}

func (c Category) String() string {
	if c >= categoryCount {
		return "unknown"
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	return c < categoryCount
}

// Categories returns all categories in their fixed declaration order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}
