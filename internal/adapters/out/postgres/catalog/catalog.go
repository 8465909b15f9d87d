// Package catalog implements the catalog port over the menu_items table.
// The order flow only reads from it; menu management belongs to another
// system that owns writes to the table.
package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// MenuItemDTO represents the database structure for menu items.
type MenuItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MerchantID uuid.UUID       `gorm:"type:uuid;index"`
	Name       string          `gorm:"type:varchar(200)"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// GormCatalog implements the Catalog port using GORM.
type GormCatalog struct {
	db *gorm.DB
}

// NewGormCatalog creates a new GORM-backed catalog.
func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// GetItem retrieves a menu item by its identifier.
func (c *GormCatalog) GetItem(ctx context.Context, itemID kernel.UUID) (ports.CatalogItem, error) {
	if err := itemID.Validate(); err != nil {
		return ports.CatalogItem{}, err
	}

	var dto MenuItemDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", itemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CatalogItem{}, errs.NewObjectNotFoundError("menu item", itemID.String())
		}
		return ports.CatalogItem{}, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.CatalogItem{}, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return ports.CatalogItem{}, err
	}

	price, err := kernel.NewMoneyFromDecimal(dto.Price)
	if err != nil {
		return ports.CatalogItem{}, err
	}

	return ports.CatalogItem{
		ID:         id,
		MerchantID: merchantID,
		Name:       dto.Name,
		Price:      price,
	}, nil
}
