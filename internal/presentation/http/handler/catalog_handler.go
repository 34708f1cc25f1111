package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stationops/fuelpos-api/internal/application/service"
	"github.com/stationops/fuelpos-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles fuel and service catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListFuel handles listing all fuel products
func (h *CatalogHandler) ListFuel(c *gin.Context) {
	fuels, err := h.catalogService.ListFuel(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Fuel products retrieved successfully", fuels)
}

// GetFuel handles retrieving one fuel product
func (h *CatalogHandler) GetFuel(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid fuel product ID")
		return
	}

	fuel, err := h.catalogService.GetFuel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Fuel product retrieved successfully", fuel)
}

// ListServices handles listing all station services
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Services retrieved successfully", services)
}

// GetService handles retrieving one station service
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	svc, err := h.catalogService.GetService(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Service retrieved successfully", svc)
}
