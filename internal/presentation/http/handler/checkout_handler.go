package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stationops/fuelpos-api/internal/application/service"
	"github.com/stationops/fuelpos-api/internal/presentation/http/dto/request"
	"github.com/stationops/fuelpos-api/internal/presentation/http/dto/response"
)

// CheckoutHandler handles checkout and payment HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	paymentService  *service.PaymentService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService, paymentService *service.PaymentService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		paymentService:  paymentService,
	}
}

// Status handles retrieving total, paid and remaining for a customer
func (h *CheckoutHandler) Status(c *gin.Context) {
	customerID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	status, err := h.checkoutService.GetStatus(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout status retrieved successfully", status)
}

// PartialPayment handles a partial payment against the remaining balance
func (h *CheckoutHandler) PartialPayment(c *gin.Context) {
	customerID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.PartialPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Payment amount is required")
		return
	}

	if err := h.checkoutService.RecordPartialPayment(c.Request.Context(), customerID, req.Source, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	status, err := h.checkoutService.GetStatus(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Partial payment recorded", status)
}

// FullCheckout handles settling the remaining balance from one source
func (h *CheckoutHandler) FullCheckout(c *gin.Context) {
	customerID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.FullCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Payment source is required")
		return
	}

	if err := h.checkoutService.CheckoutFull(c.Request.Context(), customerID, req.Source); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout completed", nil)
}

// FullCheckoutCombined handles settling the remaining balance drawing
// cash, then card, then bonus
func (h *CheckoutHandler) FullCheckoutCombined(c *gin.Context) {
	customerID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.checkoutService.CheckoutFullCombined(c.Request.Context(), customerID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout completed", nil)
}

// PaymentHistory handles listing a customer's payment records
func (h *CheckoutHandler) PaymentHistory(c *gin.Context) {
	customerID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	payments, err := h.paymentService.PaymentHistory(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", payments)
}
