package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// CatalogItem is what the catalog knows about a purchasable menu item.
type CatalogItem struct {
	ID         kernel.UUID
	MerchantID kernel.UUID
	Name       string
	Price      kernel.Money
}

// Catalog resolves menu items at order placement. Orders snapshot the
// resolved name and price, so later catalog edits never touch placed orders.
type Catalog interface {
	// GetItem retrieves a menu item by its identifier.
	// Returns errs.ObjectNotFoundError when the item does not exist.
	GetItem(ctx context.Context, itemID kernel.UUID) (CatalogItem, error)
}
