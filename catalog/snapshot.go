package catalog

import (
	"villager-tasks/tasklayer/compose"
	"villager-tasks/tasklayer/task"
)

// Document is the machine-readable snapshot of a frozen registry. It is
// shared with the schema generator so tooling can validate exported
// snapshots.
type Document struct {
	RandomTaskPriority int                  `json:"randomTaskPriority" jsonschema:"title=Random selector priority,description=Priority of the synthetic random entry appended during composition"`
	Base               ProviderDocument     `json:"base" jsonschema:"description=Entries applied to every villager regardless of profession"`
	Professions        []ProfessionDocument `json:"professions" jsonschema:"description=Profession-specific contributions in first-registration order"`
}

// ProfessionDocument describes one profession's merged provider.
type ProfessionDocument struct {
	Profession string           `json:"profession" jsonschema:"title=Profession id"`
	Provider   ProviderDocument `json:"provider"`
}

// ProviderDocument lists registered categories only; a category a contributor
// never touched is omitted, while an explicitly empty registration appears
// with zero entries.
type ProviderDocument struct {
	Categories []CategoryDocument `json:"categories"`
}

// CategoryDocument describes one category's entry lists in registration
// order.
type CategoryDocument struct {
	Category string             `json:"category" jsonschema:"title=Category name,pattern=^[a-z]+$"`
	Constant []ConstantDocument `json:"constant,omitempty"`
	Random   []RandomDocument   `json:"random,omitempty"`
}

// ConstantDocument records an always-considered entry. Behaviors themselves
// are opaque factories; only ordering data is exportable.
type ConstantDocument struct {
	Priority int `json:"priority"`
}

// RandomDocument records one random-pool entry.
type RandomDocument struct {
	Weight int `json:"weight" jsonschema:"description=Positive selection weight within the category pool"`
}

// Snapshot exports the frozen registry. Output is deterministic: professions
// in first-registration order, categories in declaration order, entries in
// registration order.
func Snapshot(frozen *task.Frozen, randomPriority int) Document {
	doc := Document{
		RandomTaskPriority: randomPriority,
		Base:               snapshotProvider(frozen.Base()),
		Professions:        make([]ProfessionDocument, 0),
	}
	for _, profession := range frozen.Professions() {
		doc.Professions = append(doc.Professions, ProfessionDocument{
			Profession: string(profession),
			Provider:   snapshotProvider(frozen.Lookup(profession)),
		})
	}
	return doc
}

// SnapshotEngineDefaults is Snapshot with the engine's default selector
// priority.
func SnapshotEngineDefaults(frozen *task.Frozen) Document {
	return Snapshot(frozen, compose.RandomSelectorPriority)
}

func snapshotProvider(provider *task.Provider) ProviderDocument {
	out := ProviderDocument{Categories: make([]CategoryDocument, 0)}
	for _, cat := range task.Categories() {
		if !provider.Has(cat) {
			continue
		}
		catDoc := CategoryDocument{Category: cat.String()}
		if constant, ok := provider.Constant(cat); ok {
			for _, entry := range constant {
				catDoc.Constant = append(catDoc.Constant, ConstantDocument{Priority: entry.Priority})
			}
		}
		if random, ok := provider.Random(cat); ok {
			for _, entry := range random {
				catDoc.Random = append(catDoc.Random, RandomDocument{Weight: entry.Weight})
			}
		}
		out.Categories = append(out.Categories, catDoc)
	}
	return out
}
