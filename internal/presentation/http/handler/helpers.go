package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetOperatorID extracts the operator ID from the Gin context
func GetOperatorID(c *gin.Context) *uuid.UUID {
	operatorIDVal, exists := c.Get("operator_id")
	if !exists {
		return nil
	}
	operatorID, ok := operatorIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &operatorID
}

// parseUUIDParam parses a UUID path parameter, returning false when
// the value is malformed.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
