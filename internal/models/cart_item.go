package models

import (
	"time"

	"storefront/internal/variants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem persists a line item handed over by the variant engine.
type CartItem struct {
	ID             string                   `json:"id" gorm:"type:uuid;primaryKey"`
	CartID         string                   `json:"cart_id" gorm:"index;not null"`
	ProductID      string                   `json:"product_id" gorm:"type:uuid;not null"`
	VariantID      *string                  `json:"variant_id"`
	Quantity       int                      `json:"quantity" gorm:"not null"`
	UnitPrice      float64                  `json:"unit_price" gorm:"type:decimal(10,2)"`
	VariantsDetail []variants.VariantDetail `json:"variants_detail,omitempty" gorm:"serializer:json"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

func NewCartItem(cartID string, item variants.LineItem) *CartItem {
	return &CartItem{
		CartID:         cartID,
		ProductID:      item.ProductID,
		VariantID:      item.VariantID,
		Quantity:       item.Quantity,
		UnitPrice:      item.UnitPrice,
		VariantsDetail: item.VariantsDetail,
	}
}

func (c *CartItem) LineTotal() float64 {
	return c.UnitPrice * float64(c.Quantity)
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
