package task

// categoryLists holds one category's registered entries for a single
// contributor or merged set of contributors.
type categoryLists struct {
	constant []ConstantEntry
	random   []RandomEntry
}

// Provider is one contributor's category table. Map presence carries the
// absent-versus-empty distinction: a category a contributor never touched is
// missing from the map, while an explicitly registered empty list is present
// with zero entries. Composition treats both the same way for host defaults,
// but the distinction is preserved through the API so the policy stays
// observable.
type Provider struct {
	cats map[Category]*categoryLists
}

// EmptyProvider returns a provider with no categories registered.
func EmptyProvider() *Provider {
	return &Provider{cats: map[Category]*categoryLists{}}
}

// Has reports whether the category was registered at all.
func (p *Provider) Has(cat Category) bool {
	if p == nil {
		return false
	}
	_, ok := p.cats[cat]
	return ok
}

// Constant returns the constant entries for cat and whether the category was
// registered. The returned slice must not be mutated.
func (p *Provider) Constant(cat Category) ([]ConstantEntry, bool) {
	if p == nil {
		return nil, false
	}
	lists, ok := p.cats[cat]
	if !ok {
		return nil, false
	}
	return lists.constant, true
}

// Random returns the random-pool entries for cat and whether the category was
// registered.
func (p *Provider) Random(cat Category) ([]RandomEntry, bool) {
	if p == nil {
		return nil, false
	}
	lists, ok := p.cats[cat]
	if !ok {
		return nil, false
	}
	return lists.random, true
}

// EntryCount returns the total number of entries across all categories.
func (p *Provider) EntryCount() int {
	if p == nil {
		return 0
	}
	total := 0
	for _, lists := range p.cats {
		total += len(lists.constant) + len(lists.random)
	}
	return total
}

func (p *Provider) lists(cat Category) *categoryLists {
	if p.cats == nil {
		p.cats = map[Category]*categoryLists{}
	}
	lists, ok := p.cats[cat]
	if !ok {
		lists = &categoryLists{}
		p.cats[cat] = lists
	}
	return lists
}

// merge concatenates other's entries after p's, per category and separately
// for constant and random lists. Concatenation keeps merging associative and
// registration order deterministic across arbitrarily many contributors.
func merge(a, b *Provider) *Provider {
	out := EmptyProvider()
	for c := Category(0); c < categoryCount; c++ {
		aLists, aOK := a.cats[c]
		bLists, bOK := b.cats[c]
		if !aOK && !bOK {
			continue
		}
		lists := out.lists(c)
		if aOK {
			lists.constant = append(lists.constant, aLists.constant...)
			lists.random = append(lists.random, aLists.random...)
		}
		if bOK {
			lists.constant = append(lists.constant, bLists.constant...)
			lists.random = append(lists.random, bLists.random...)
		}
	}
	return out
}
