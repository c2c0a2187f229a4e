package store

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a product or variant does not exist.
var ErrNotFound = errors.New("not found")

// Store is the persistence boundary the storefront service depends on.
type Store interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	SetVariantStock(ctx context.Context, productID, variantID string, stock int) error
	AddCartItem(ctx context.Context, item *models.CartItem) error
	ListCartItems(ctx context.Context, cartID string) ([]models.CartItem, error)
}

type ProductFilter struct {
	Search       string
	Availability string
	Page         int
	Limit        int
}

// Normalize applies the default page and limit used when listing.
func (f ProductFilter) Normalize() ProductFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	return f
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	return &product, nil
}

func (s *GormStore) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error) {
	filter = filter.Normalize()

	query := s.db.WithContext(ctx).Model(&models.Product{})

	if filter.Availability != "" {
		query = query.Where("availability = ?", filter.Availability)
	}

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(sku) LIKE LOWER(?)", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := query.Preload("Variants").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *GormStore) CreateProduct(ctx context.Context, p *models.Product) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (s *GormStore) SetVariantStock(ctx context.Context, productID, variantID string, stock int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ProductVariant{}).
			Where("id = ? AND product_id = ?", variantID, productID).
			Update("stock", stock)
		if res.Error != nil {
			return fmt.Errorf("failed to update variant stock: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("variant %s of product %s: %w", variantID, productID, ErrNotFound)
		}

		// Refresh the product's availability flag from its rows.
		var product models.Product
		if err := tx.Preload("Variants").First(&product, "id = ?", productID).Error; err != nil {
			return fmt.Errorf("failed to reload product: %w", err)
		}
		return tx.Model(&models.Product{}).
			Where("id = ?", productID).
			UpdateColumn("availability", string(product.ComputeAvailability())).Error
	})
}

func (s *GormStore) AddCartItem(ctx context.Context, item *models.CartItem) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

func (s *GormStore) ListCartItems(ctx context.Context, cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.WithContext(ctx).Where("cart_id = ?", cartID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cart items: %w", err)
	}
	return items, nil
}
