package variants

import "strings"

// UngroupedLabel names the synthetic group that collects unlabeled options
// on a product that otherwise uses attribute groups.
const UngroupedLabel = "Variante"

// Option is one purchasable variant leaf of a product.
type Option struct {
	ID         string
	GroupLabel string
	Name       string
	Price      *float64 // nil means "use the product base price"
	Stock      int
	ColorHex   *string
}

// PriceOr returns the option's own price, or fallback when it has none.
func (o Option) PriceOr(fallback float64) float64 {
	if o.Price == nil {
		return fallback
	}
	return *o.Price
}

// Group is an attribute axis (size, color, ...) and its options.
type Group struct {
	Label   string
	Options []Option
}

// Find returns the option with the given name in the group.
func (g Group) Find(name string) (Option, bool) {
	for _, opt := range g.Options {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// Catalog is the normalized variant structure of one product. A product is
// either grouped (Groups is populated) or flat (Flat holds the raw list).
type Catalog struct {
	HasGroups bool
	Groups    []Group
	Flat      []Option
}

// NewCatalog groups the options by label in first-seen order.
func NewCatalog(options []Option) *Catalog {
	c := &Catalog{}

	for _, opt := range options {
		if strings.TrimSpace(opt.GroupLabel) != "" {
			c.HasGroups = true
			break
		}
	}

	if !c.HasGroups {
		c.Flat = append([]Option(nil), options...)
		return c
	}

	index := make(map[string]int)
	var ungrouped []Option
	for _, opt := range options {
		label := strings.TrimSpace(opt.GroupLabel)
		if label == "" {
			ungrouped = append(ungrouped, opt)
			continue
		}
		i, ok := index[label]
		if !ok {
			i = len(c.Groups)
			index[label] = i
			c.Groups = append(c.Groups, Group{Label: label})
		}
		c.Groups[i].Options = append(c.Groups[i].Options, opt)
	}

	if len(ungrouped) > 0 {
		c.Groups = append(c.Groups, Group{Label: UngroupedLabel, Options: ungrouped})
	}

	return c
}

// Option resolves an option by group index and name. Out-of-range indexes
// and unknown names report false.
func (c *Catalog) Option(group int, name string) (Option, bool) {
	if c == nil || group < 0 || group >= len(c.Groups) {
		return Option{}, false
	}
	return c.Groups[group].Find(name)
}

// GroupIndex returns the index of the group with the given label.
func (c *Catalog) GroupIndex(label string) (int, bool) {
	if c == nil {
		return 0, false
	}
	label = strings.TrimSpace(label)
	for i, g := range c.Groups {
		if g.Label == label {
			return i, true
		}
	}
	return 0, false
}

// FlatOption returns the flat option at index i.
func (c *Catalog) FlatOption(i int) (Option, bool) {
	if c == nil || c.HasGroups || i < 0 || i >= len(c.Flat) {
		return Option{}, false
	}
	return c.Flat[i], true
}
