package variants

// VariantDetail records one group's contribution to a grouped line item.
type VariantDetail struct {
	Group     string  `json:"group"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	VariantID string  `json:"variant_id"`
	ColorHex  *string `json:"color_hex,omitempty"`
}

// LineItem is the immutable cart/order line produced from a selection.
// For grouped products VariantsDetail is authoritative; VariantID only
// carries the last resolved group's option.
type LineItem struct {
	ProductID      string          `json:"product_id"`
	VariantID      *string         `json:"variant_id"`
	Quantity       int             `json:"quantity"`
	UnitPrice      float64         `json:"unit_price"`
	VariantsDetail []VariantDetail `json:"variants_detail,omitempty"`
}

// BuildLineItem converts a selection into a line item. The quote must have
// been resolved from the same selection immediately before the call. A nil
// selection yields a line item without variant data.
func BuildLineItem(productID string, s *Selection, q Quote, quantity int) (LineItem, error) {
	if quantity < 1 {
		return LineItem{}, ErrInvalidQuantity
	}

	item := LineItem{
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: q.Price,
	}

	if s == nil || s.Catalog() == nil {
		return item, nil
	}
	c := s.Catalog()

	if !c.HasGroups {
		if i, ok := s.FlatIndex(); ok {
			if opt, ok := c.FlatOption(i); ok {
				id := opt.ID
				item.VariantID = &id
			}
		}
		return item, nil
	}

	if !s.IsComplete() {
		return LineItem{}, &IncompleteSelectionError{Missing: s.Missing()}
	}

	for i, g := range c.Groups {
		name, ok := s.Chosen(i)
		if !ok {
			continue
		}
		opt, ok := g.Find(name)
		if !ok {
			continue
		}
		id := opt.ID
		item.VariantID = &id
		item.VariantsDetail = append(item.VariantsDetail, VariantDetail{
			Group:     g.Label,
			Name:      opt.Name,
			Price:     opt.PriceOr(0),
			VariantID: opt.ID,
			ColorHex:  opt.ColorHex,
		})
	}

	return item, nil
}
