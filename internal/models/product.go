package models

import (
	"sort"
	"time"

	"storefront/internal/variants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID             string           `json:"id" gorm:"type:uuid;primaryKey"`
	SKU            string           `json:"sku" gorm:"uniqueIndex;not null"`
	Title          string           `json:"title" gorm:"not null"`
	Description    *string          `json:"description"`
	Brand          *string          `json:"brand"`
	Category       *string          `json:"category"`
	Price          float64          `json:"price" gorm:"type:decimal(10,2)"`
	CompareAtPrice *float64         `json:"compare_at_price" gorm:"type:decimal(10,2)"`
	Stock          int              `json:"stock" gorm:"default:0"`
	Currency       string           `json:"currency" gorm:"default:BRL"`
	Availability   string           `json:"availability" gorm:"default:IN_STOCK"`
	Images         []string         `json:"images" gorm:"serializer:json"`
	Variants       []ProductVariant `json:"variants" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ProductVariant is one stored variant row. GroupLabel groups rows into
// attribute axes; rows without one form a flat variant list.
type ProductVariant struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID  string    `json:"product_id" gorm:"type:uuid;index;not null"`
	Name       string    `json:"name" gorm:"not null"`
	GroupLabel *string   `json:"group_label"`
	Price      *float64  `json:"price" gorm:"type:decimal(10,2)"`
	Stock      int       `json:"stock" gorm:"default:0"`
	ColorHex   *string   `json:"color_hex"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ProductAvailability string

const (
	AvailabilityInStock    ProductAvailability = "IN_STOCK"
	AvailabilityOutOfStock ProductAvailability = "OUT_OF_STOCK"
)

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.Availability = string(p.ComputeAvailability())
	return nil
}

func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

// ComputeAvailability reports IN_STOCK when the product or any of its
// variants has stock left.
func (p *Product) ComputeAvailability() ProductAvailability {
	if p.Stock > 0 {
		return AvailabilityInStock
	}
	for _, v := range p.Variants {
		if v.Stock > 0 {
			return AvailabilityInStock
		}
	}
	return AvailabilityOutOfStock
}

// Options converts the stored variant rows, in position order, into the
// variant engine's input.
func (p *Product) Options() []variants.Option {
	rows := append([]ProductVariant(nil), p.Variants...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })

	options := make([]variants.Option, len(rows))
	for i, v := range rows {
		options[i] = v.Option()
	}
	return options
}

func (p *Product) Base() variants.Base {
	return variants.Base{
		Price:          p.Price,
		CompareAtPrice: p.CompareAtPrice,
		Stock:          p.Stock,
	}
}

func (v ProductVariant) Option() variants.Option {
	opt := variants.Option{
		ID:       v.ID,
		Name:     v.Name,
		Price:    v.Price,
		Stock:    v.Stock,
		ColorHex: v.ColorHex,
	}
	if v.GroupLabel != nil {
		opt.GroupLabel = *v.GroupLabel
	}
	if opt.Stock < 0 {
		opt.Stock = 0
	}
	return opt
}
