package handlers

import (
	"net/http"

	"loan-pricing/internal/registry"

	"github.com/gin-gonic/gin"
)

// PricingHandler exposes the loaded pricing artifact's metadata
type PricingHandler struct {
	registry *registry.Registry
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(reg *registry.Registry) *PricingHandler {
	return &PricingHandler{registry: reg}
}

// GetPricing handles GET /api/v1/pricing
func (h *PricingHandler) GetPricing(c *gin.Context) {
	bundle := h.registry.Current()
	c.JSON(http.StatusOK, toPricingInfo(bundle.Pricing.Info()))
}
