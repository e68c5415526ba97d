package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/repository"
)

const menuCacheKey = "menu:listing"

// MenuService coordinates menu CRUD. The public listing is read-through
// cached in Redis and invalidated on every write.
type MenuService struct {
	menu     repository.MenuRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewMenuService builds the service. A nil cache client disables caching.
func NewMenuService(menu repository.MenuRepository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *MenuService {
	return &MenuService{menu: menu, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// List returns the full menu, served from cache when fresh.
func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	if s.cache != nil && s.cacheTTL > 0 {
		if raw, err := s.cache.Get(ctx, menuCacheKey).Bytes(); err == nil {
			var items []domain.MenuItem
			if err := json.Unmarshal(raw, &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.menu.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.cacheTTL > 0 {
		if raw, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, menuCacheKey, raw, s.cacheTTL).Err(); err != nil {
				s.logger.Debug("menu cache set failed", zap.Error(err))
			}
		}
	}
	return items, nil
}

// Get returns a single menu item by id.
func (s *MenuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.menu.GetByID(ctx, id)
}

// Create stores a new menu item.
func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := s.menu.Create(ctx, item); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Update modifies an existing menu item.
func (s *MenuService) Update(ctx context.Context, item *domain.MenuItem) error {
	if err := s.menu.Update(ctx, item); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Delete removes a menu item.
func (s *MenuService) Delete(ctx context.Context, id string) error {
	if err := s.menu.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, menuCacheKey).Err(); err != nil {
		s.logger.Debug("menu cache invalidation failed", zap.Error(err))
	}
}
