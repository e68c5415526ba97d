package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/api/dto"
	"github.com/spec-kit/bistro-service/internal/service"
)

// StatsHandler exposes the admin statistics endpoints.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: statsService}
}

// AdminStats handles GET /admin-stats.
func (h *StatsHandler) AdminStats(c *fiber.Ctx) error {
	stats, err := h.stats.AdminStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.AdminStatsResponse{
		Users:    stats.Users,
		Products: stats.Products,
		Orders:   stats.Orders,
		Revenue:  stats.Revenue,
	})
}

// OrdersStats handles GET /orders-stats.
func (h *StatsHandler) OrdersStats(c *fiber.Ctx) error {
	sales, err := h.stats.OrdersStats(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.CategorySalesResponse, 0, len(sales))
	for _, entry := range sales {
		out = append(out, dto.CategorySalesResponse{
			Category: entry.Category,
			Count:    entry.Count,
			Total:    entry.Total,
		})
	}
	return c.JSON(out)
}
