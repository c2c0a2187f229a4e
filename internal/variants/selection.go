package variants

// Selection tracks a shopper's choice against one catalog: at most one
// option name per group, or a single index into a flat list.
type Selection struct {
	catalog *Catalog
	chosen  map[int]string
	flat    *int
}

// NewSelection returns an empty selection bound to c.
func NewSelection(c *Catalog) *Selection {
	return &Selection{
		catalog: c,
		chosen:  make(map[int]string),
	}
}

// Catalog returns the catalog the selection is bound to.
func (s *Selection) Catalog() *Catalog {
	return s.catalog
}

// Toggle selects name in group, or clears the group if name is already the
// current choice. Unknown options and options without stock are refused and
// leave the selection unchanged. It reports whether the selection changed.
func (s *Selection) Toggle(group int, name string) bool {
	opt, ok := s.catalog.Option(group, name)
	if !ok {
		return false
	}

	if current, ok := s.chosen[group]; ok && current == name {
		delete(s.chosen, group)
		return true
	}

	if opt.Stock <= 0 {
		return false
	}

	s.chosen[group] = name
	return true
}

// ToggleFlat is Toggle for flat products, addressing options by index.
func (s *Selection) ToggleFlat(index int) bool {
	opt, ok := s.catalog.FlatOption(index)
	if !ok {
		return false
	}

	if s.flat != nil && *s.flat == index {
		s.flat = nil
		return true
	}

	if opt.Stock <= 0 {
		return false
	}

	s.flat = &index
	return true
}

// Chosen returns the option name selected for group.
func (s *Selection) Chosen(group int) (string, bool) {
	name, ok := s.chosen[group]
	return name, ok
}

// FlatIndex returns the selected flat index.
func (s *Selection) FlatIndex() (int, bool) {
	if s.flat == nil {
		return 0, false
	}
	return *s.flat, true
}

// Len is the number of groups with a choice (0 or 1 for flat products).
func (s *Selection) Len() int {
	if s.catalog != nil && !s.catalog.HasGroups {
		if s.flat != nil {
			return 1
		}
		return 0
	}
	return len(s.chosen)
}

// IsComplete reports whether every group has a choice. Flat products are
// always complete since choosing a flat variant is optional.
func (s *Selection) IsComplete() bool {
	if s.catalog == nil || !s.catalog.HasGroups {
		return true
	}
	for i := range s.catalog.Groups {
		if _, ok := s.chosen[i]; !ok {
			return false
		}
	}
	return true
}

// Missing lists the labels of groups still waiting for a choice, in group order.
func (s *Selection) Missing() []string {
	if s.catalog == nil || !s.catalog.HasGroups {
		return nil
	}
	var labels []string
	for i, g := range s.catalog.Groups {
		if _, ok := s.chosen[i]; !ok {
			labels = append(labels, g.Label)
		}
	}
	return labels
}

// Snapshot copies the current choices keyed by group index.
func (s *Selection) Snapshot() map[int]string {
	out := make(map[int]string, len(s.chosen))
	for k, v := range s.chosen {
		out[k] = v
	}
	return out
}

// Rebind attaches the selection to a rebuilt catalog. Choices whose group or
// option no longer exists are dropped.
func (s *Selection) Rebind(c *Catalog) {
	s.catalog = c

	for group, name := range s.chosen {
		if _, ok := c.Option(group, name); !ok {
			delete(s.chosen, group)
		}
	}

	if s.flat != nil {
		if _, ok := c.FlatOption(*s.flat); !ok {
			s.flat = nil
		}
	}
}

// Reset clears every choice.
func (s *Selection) Reset() {
	s.chosen = make(map[int]string)
	s.flat = nil
}
