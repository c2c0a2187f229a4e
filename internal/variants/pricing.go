package variants

import "math"

// Base holds the product-level values used when no variant overrides them.
type Base struct {
	Price          float64
	CompareAtPrice *float64
	Stock          int
}

// PricingConfig carries the storefront pricing flags. It is passed in
// explicitly so Resolve stays a pure function of its arguments.
type PricingConfig struct {
	PixDiscountEnabled  bool
	PixDiscountPercent  float64
	MaxInstallments     int
	MinInstallmentValue float64
}

// Installments is an interest-free split of the quoted price.
type Installments struct {
	Count  int
	Amount float64
}

// Quote is the pricing and availability view of a selection.
type Quote struct {
	Price           float64
	CompareAtPrice  *float64
	DiscountPercent int
	Stock           int
	InStock         bool
	PerGroupStock   []int

	PixPrice     *float64
	Installments Installments
}

// Resolve computes the quote for the current selection. Incomplete or empty
// selections fall back to the product base values.
func Resolve(c *Catalog, s *Selection, base Base, cfg PricingConfig) Quote {
	q := Quote{
		Price:          base.Price,
		CompareAtPrice: base.CompareAtPrice,
		Stock:          base.Stock,
		InStock:        base.Stock > 0,
	}

	switch {
	case c != nil && c.HasGroups:
		resolveGrouped(&q, c, s)
	case c != nil:
		resolveFlat(&q, c, s, base)
	}

	if q.CompareAtPrice != nil {
		q.DiscountPercent = DiscountPercent(*q.CompareAtPrice, q.Price)
	}

	if cfg.PixDiscountEnabled && cfg.PixDiscountPercent > 0 {
		pix := roundCents(q.Price * (1 - cfg.PixDiscountPercent/100))
		if pix < 0 {
			pix = 0
		}
		q.PixPrice = &pix
	}
	q.Installments = SplitInstallments(q.Price, cfg.MaxInstallments, cfg.MinInstallmentValue)

	return q
}

func resolveGrouped(q *Quote, c *Catalog, s *Selection) {
	q.PerGroupStock = make([]int, len(c.Groups))

	var (
		sum      float64
		minStock int
		resolved int
		inStock  = true
	)
	for i := range c.Groups {
		if s == nil {
			break
		}
		name, ok := s.Chosen(i)
		if !ok {
			continue
		}
		opt, ok := c.Option(i, name)
		if !ok {
			continue
		}

		// Grouped totals add each chosen option's own price, not a delta over base.
		sum += opt.PriceOr(0)
		q.PerGroupStock[i] = opt.Stock
		if resolved == 0 || opt.Stock < minStock {
			minStock = opt.Stock
		}
		if opt.Stock <= 0 {
			inStock = false
		}
		resolved++
	}

	if resolved == 0 {
		return
	}
	q.Price = sum
	q.Stock = minStock
	q.InStock = inStock
}

func resolveFlat(q *Quote, c *Catalog, s *Selection, base Base) {
	if s == nil {
		return
	}
	i, ok := s.FlatIndex()
	if !ok {
		return
	}
	opt, ok := c.FlatOption(i)
	if !ok {
		return
	}
	q.Price = opt.PriceOr(base.Price)
	q.Stock = opt.Stock
	q.InStock = opt.Stock > 0
}

// DiscountPercent is the rounded percentage saved against compareAt, within [0, 100].
func DiscountPercent(compareAt, price float64) int {
	if compareAt <= 0 || compareAt <= price {
		return 0
	}
	pct := math.Round((compareAt - price) / compareAt * 100)
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return int(pct)
}

// SplitInstallments picks the largest installment count up to max whose
// amount stays at or above minValue. It always returns at least one installment.
func SplitInstallments(price float64, max int, minValue float64) Installments {
	if max < 1 {
		max = 1
	}
	count := 1
	for n := max; n > 1; n-- {
		if price/float64(n) >= minValue {
			count = n
			break
		}
	}
	return Installments{Count: count, Amount: roundCents(price / float64(count))}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
