package request

import "github.com/stationops/fuelpos-api/internal/domain/enum"

// AddCartItemRequest represents the add-to-cart request. Quantity is
// liters for fuel; it is ignored for services, which always charge one
// unit.
type AddCartItemRequest struct {
	ItemKind enum.ItemKind `json:"item_kind"`
	ItemID   string        `json:"item_id" binding:"required"`
	Quantity float64       `json:"quantity"`
}

// RemoveCartItemRequest represents removal by (kind, item) reference
type RemoveCartItemRequest struct {
	ItemKind enum.ItemKind `json:"item_kind"`
	ItemID   string        `json:"item_id" binding:"required"`
}
