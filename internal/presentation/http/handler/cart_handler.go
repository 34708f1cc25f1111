package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stationops/fuelpos-api/internal/application/service"
	"github.com/stationops/fuelpos-api/internal/presentation/http/dto/request"
	"github.com/stationops/fuelpos-api/internal/presentation/http/dto/response"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// cartView is the cart as shown to the terminal: lines in insertion
// order plus the current total.
type cartView struct {
	Items interface{} `json:"items"`
	Total float64     `json:"total"`
}

// Get handles retrieving a customer's cart with its total
func (h *CartHandler) Get(c *gin.Context) {
	customerID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	items, err := h.cartService.Items(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	total, err := h.cartService.Total(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved successfully", cartView{Items: items, Total: total})
}

// AddItem handles adding a line to a customer's cart
func (h *CartHandler) AddItem(c *gin.Context) {
	customerID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Item reference is required")
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.cartService.Add(c.Request.Context(), &service.AddInput{
		CustomerID: customerID,
		ItemKind:   req.ItemKind,
		ItemID:     itemID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item added to cart", item)
}

// RemoveItem handles removing a line by its ID
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid cart item ID")
		return
	}

	if err := h.cartService.Remove(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// RemoveByItem handles removing a line by its catalog reference
func (h *CartHandler) RemoveByItem(c *gin.Context) {
	customerID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Item reference is required")
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.cartService.RemoveByItem(c.Request.Context(), customerID, req.ItemKind, itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Clear handles emptying a customer's cart
func (h *CartHandler) Clear(c *gin.Context) {
	customerID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.cartService.Clear(c.Request.Context(), customerID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
