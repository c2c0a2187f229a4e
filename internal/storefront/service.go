package storefront

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/cache"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/store"
	"storefront/internal/variants"
)

// Service connects the variant engine to product storage, the product
// cache and the event stream. Every call builds a fresh catalog and
// selection, so no engine state is shared between requests.
type Service struct {
	store     store.Store
	cache     cache.ProductCache
	publisher events.Publisher
	pricing   variants.PricingConfig
	logger    *logger.Logger
}

func NewService(st store.Store, c cache.ProductCache, pub events.Publisher, pricing variants.PricingConfig, log *logger.Logger) *Service {
	if c == nil {
		c = cache.Nop{}
	}
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &Service{
		store:     st,
		cache:     c,
		publisher: pub,
		pricing:   pricing,
		logger:    log,
	}
}

// Product loads a product with its variants, preferring the cache.
func (s *Service) Product(ctx context.Context, id string) (*models.Product, error) {
	if p, ok, err := s.cache.Get(ctx, id); err != nil {
		s.logger.Warn("product cache read failed for %s: %v", id, err)
	} else if ok {
		return p, nil
	}

	p, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, p); err != nil {
		s.logger.Warn("product cache write failed for %s: %v", id, err)
	}
	return p, nil
}

// Catalog returns the selectable variant structure of a product.
func (s *Service) Catalog(ctx context.Context, productID string) (*CatalogView, error) {
	p, err := s.Product(ctx, productID)
	if err != nil {
		return nil, err
	}

	c := variants.NewCatalog(p.Options())
	view := &CatalogView{
		ProductID:      p.ID,
		Price:          p.Price,
		CompareAtPrice: p.CompareAtPrice,
		Stock:          p.Stock,
		HasGroups:      c.HasGroups,
	}
	if c.HasGroups {
		for _, g := range c.Groups {
			view.Groups = append(view.Groups, GroupView{Label: g.Label, Options: optionViews(g.Options)})
		}
	} else {
		view.Variants = optionViews(c.Flat)
	}
	return view, nil
}

// Quote prices a selection without committing it.
func (s *Service) Quote(ctx context.Context, productID string, req SelectionRequest) (*QuoteView, error) {
	p, err := s.Product(ctx, productID)
	if err != nil {
		return nil, err
	}

	sel, err := s.selection(p, req)
	if err != nil {
		return nil, err
	}

	q := variants.Resolve(sel.Catalog(), sel, p.Base(), s.pricing)
	return newQuoteView(p.ID, sel, q), nil
}

// AddToCart builds a line item from the request and stores it in the cart.
// Products are read from storage, not the cache, so the stock check uses
// the latest committed values.
func (s *Service) AddToCart(ctx context.Context, cartID string, req AddToCartRequest) (*models.CartItem, error) {
	p, err := s.store.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	sel, err := s.selection(p, req.SelectionRequest)
	if err != nil {
		return nil, err
	}

	// Pricing is recomputed here, right before the line item is built.
	q := variants.Resolve(sel.Catalog(), sel, p.Base(), s.pricing)

	item, err := variants.BuildLineItem(p.ID, sel, q, req.Quantity)
	if err != nil {
		return nil, err
	}

	if !q.InStock {
		return nil, ErrOutOfStock
	}
	if req.Quantity > q.Stock {
		return nil, fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, req.Quantity, q.Stock)
	}

	cartItem := models.NewCartItem(cartID, item)
	if err := s.store.AddCartItem(ctx, cartItem); err != nil {
		return nil, err
	}

	event, err := events.NewEvent(events.TypeCartItemAdded, p.ID, cartItem)
	if err == nil {
		err = s.publisher.Publish(ctx, event)
	}
	if err != nil {
		s.logger.Error("failed to publish %s for cart %s: %v", events.TypeCartItemAdded, cartID, err)
	}

	s.logger.Debug("added product %s x%d to cart %s", p.ID, req.Quantity, cartID)
	return cartItem, nil
}

// CartItems lists the line items stored for a cart.
func (s *Service) CartItems(ctx context.Context, cartID string) ([]models.CartItem, error) {
	return s.store.ListCartItems(ctx, cartID)
}

// ApplyStockChange records a new stock level for a variant and drops the
// cached product so the next catalog rebuild sees it.
func (s *Service) ApplyStockChange(ctx context.Context, productID string, change events.StockChanged) error {
	if change.Stock < 0 {
		change.Stock = 0
	}
	if err := s.store.SetVariantStock(ctx, productID, change.VariantID, change.Stock); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, productID); err != nil {
		s.logger.Warn("product cache invalidation failed for %s: %v", productID, err)
	}
	return nil
}

// selection replays a request's choices onto an empty selection.
func (s *Service) selection(p *models.Product, req SelectionRequest) (*variants.Selection, error) {
	c := variants.NewCatalog(p.Options())
	sel := variants.NewSelection(c)

	if c.HasGroups {
		if req.VariantID != "" || req.VariantIndex != nil {
			return nil, fmt.Errorf("%w: product %s uses attribute groups", ErrUnknownOption, p.ID)
		}
		for _, choice := range req.Selections {
			i, ok := c.GroupIndex(choice.Group)
			if !ok {
				return nil, fmt.Errorf("%w: group %q", ErrUnknownOption, choice.Group)
			}
			if _, ok := c.Option(i, choice.Option); !ok {
				return nil, fmt.Errorf("%w: %q in group %q", ErrUnknownOption, choice.Option, choice.Group)
			}
			if current, ok := sel.Chosen(i); ok && current == choice.Option {
				continue
			}
			// An option that dropped to zero stock is refused here, before
			// Resolve would report InStock=false for it.
			if !sel.Toggle(i, choice.Option) {
				return nil, fmt.Errorf("%w: %q in group %q", ErrOptionUnavailable, choice.Option, choice.Group)
			}
		}
		return sel, nil
	}

	if len(req.Selections) > 0 {
		return nil, fmt.Errorf("%w: product %s has no attribute groups", ErrUnknownOption, p.ID)
	}

	index := -1
	switch {
	case req.VariantID != "":
		for i, opt := range c.Flat {
			if opt.ID == req.VariantID {
				index = i
				break
			}
		}
		if index < 0 {
			return nil, fmt.Errorf("%w: variant %s", ErrUnknownOption, req.VariantID)
		}
	case req.VariantIndex != nil:
		index = *req.VariantIndex
		if _, ok := c.FlatOption(index); !ok {
			return nil, fmt.Errorf("%w: variant index %d", ErrUnknownOption, index)
		}
	default:
		return sel, nil
	}

	if !sel.ToggleFlat(index) {
		return nil, fmt.Errorf("%w: variant %s", ErrOptionUnavailable, c.Flat[index].ID)
	}
	return sel, nil
}

// IsNotFound reports whether err means the product or variant is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
