package request

import "github.com/stationops/fuelpos-api/internal/domain/enum"

// PartialPaymentRequest represents a partial payment against the
// remaining cart balance
type PartialPaymentRequest struct {
	Source enum.PaymentSource `json:"source"`
	Amount float64            `json:"amount" binding:"required"`
}

// FullCheckoutRequest represents a single-source full settlement
type FullCheckoutRequest struct {
	Source enum.PaymentSource `json:"source"`
}
