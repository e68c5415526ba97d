package service

import (
	"context"

	"github.com/spec-kit/bistro-service/internal/repository"
)

// AdminStats summarizes the platform for the admin dashboard.
type AdminStats struct {
	Users    int64
	Products int64
	Orders   int64
	Revenue  float64
}

// StatsService aggregates counts and revenue across stores.
type StatsService struct {
	users    repository.UserRepository
	menu     repository.MenuRepository
	payments repository.PaymentRepository
}

// NewStatsService builds the service.
func NewStatsService(users repository.UserRepository, menu repository.MenuRepository, payments repository.PaymentRepository) *StatsService {
	return &StatsService{users: users, menu: menu, payments: payments}
}

// AdminStats returns user/product/order counts and total revenue.
func (s *StatsService) AdminStats(ctx context.Context) (*AdminStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.menu.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.payments.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.payments.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminStats{Users: users, Products: products, Orders: orders, Revenue: revenue}, nil
}

// OrdersStats returns purchased-item counts and totals per menu category.
func (s *StatsService) OrdersStats(ctx context.Context) ([]repository.CategorySales, error) {
	return s.payments.SalesByCategory(ctx)
}
