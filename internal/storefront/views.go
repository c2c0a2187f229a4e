package storefront

import "storefront/internal/variants"

// Choice picks one option by group label, as sent by storefront clients.
type Choice struct {
	Group  string `json:"group" binding:"required"`
	Option string `json:"option" binding:"required"`
}

// SelectionRequest describes a shopper's configuration. Grouped products use
// Selections; flat products use VariantID or VariantIndex.
type SelectionRequest struct {
	Selections   []Choice `json:"selections"`
	VariantID    string   `json:"variant_id"`
	VariantIndex *int     `json:"variant_index"`
}

// AddToCartRequest is the body of an add-to-cart call.
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	SelectionRequest
}

// OptionView is one selectable option with its stock state.
type OptionView struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price"`
	Stock     int      `json:"stock"`
	ColorHex  *string  `json:"color_hex,omitempty"`
	Available bool     `json:"available"`
}

// GroupView is an attribute group and its options.
type GroupView struct {
	Label   string       `json:"label"`
	Options []OptionView `json:"options"`
}

// CatalogView is the variant structure returned to storefront clients.
type CatalogView struct {
	ProductID      string       `json:"product_id"`
	Price          float64      `json:"price"`
	CompareAtPrice *float64     `json:"compare_at_price"`
	Stock          int          `json:"stock"`
	HasGroups      bool         `json:"has_groups"`
	Groups         []GroupView  `json:"groups,omitempty"`
	Variants       []OptionView `json:"variants,omitempty"`
}

// InstallmentsView is the installment split shown next to the price.
type InstallmentsView struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// QuoteView is the priced state of a selection.
type QuoteView struct {
	ProductID       string            `json:"product_id"`
	Price           float64           `json:"price"`
	CompareAtPrice  *float64          `json:"compare_at_price"`
	DiscountPercent int               `json:"discount_percent"`
	Stock           int               `json:"stock"`
	InStock         bool              `json:"in_stock"`
	PerGroupStock   []int             `json:"per_group_stock,omitempty"`
	PixPrice        *float64          `json:"pix_price,omitempty"`
	Installments    InstallmentsView  `json:"installments"`
	Complete        bool              `json:"complete"`
	Missing         []string          `json:"missing,omitempty"`
	Selected        map[string]string `json:"selected,omitempty"`
	VariantID       *string           `json:"variant_id,omitempty"`
}

func optionView(o variants.Option) OptionView {
	return OptionView{
		ID:        o.ID,
		Name:      o.Name,
		Price:     o.Price,
		Stock:     o.Stock,
		ColorHex:  o.ColorHex,
		Available: o.Stock > 0,
	}
}

func optionViews(opts []variants.Option) []OptionView {
	out := make([]OptionView, len(opts))
	for i, o := range opts {
		out[i] = optionView(o)
	}
	return out
}

func newQuoteView(productID string, sel *variants.Selection, q variants.Quote) *QuoteView {
	view := &QuoteView{
		ProductID:       productID,
		Price:           q.Price,
		CompareAtPrice:  q.CompareAtPrice,
		DiscountPercent: q.DiscountPercent,
		Stock:           q.Stock,
		InStock:         q.InStock,
		PerGroupStock:   q.PerGroupStock,
		PixPrice:        q.PixPrice,
		Installments:    InstallmentsView{Count: q.Installments.Count, Amount: q.Installments.Amount},
		Complete:        sel.IsComplete(),
		Missing:         sel.Missing(),
	}

	c := sel.Catalog()
	if c.HasGroups {
		view.Selected = make(map[string]string)
		for i, g := range c.Groups {
			if name, ok := sel.Chosen(i); ok {
				view.Selected[g.Label] = name
			}
		}
	} else if i, ok := sel.FlatIndex(); ok {
		id := c.Flat[i].ID
		view.VariantID = &id
	}

	return view
}
