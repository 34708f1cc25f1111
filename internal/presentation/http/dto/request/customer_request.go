package request

// CreateCustomerRequest represents the create customer request
type CreateCustomerRequest struct {
	Name        string  `json:"name" binding:"required"`
	CashBalance float64 `json:"cash_balance"`
	CardBalance float64 `json:"card_balance"`
	BonusPoints float64 `json:"bonus_points"`
}
