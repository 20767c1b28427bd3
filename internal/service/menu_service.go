package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"restaurant-pos/internal/models"
	"restaurant-pos/internal/repository"
	"restaurant-pos/internal/validation"
)

// MenuService handles business logic for the menu catalog.
type MenuService struct {
	repo repository.MenuRepository
	log  *slog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(repo repository.MenuRepository, log *slog.Logger) *MenuService {
	return &MenuService{repo: repo, log: log}
}

// List returns the catalog in stable order, optionally including items that
// are currently unavailable.
func (s *MenuService) List(ctx context.Context, includeUnavailable bool) ([]models.MenuItem, error) {
	return s.repo.List(ctx, includeUnavailable)
}

// Find returns the item with the given id.
func (s *MenuService) Find(ctx context.Context, id int) (*models.MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}

// Search returns items whose name contains keyword, case-insensitively.
func (s *MenuService) Search(ctx context.Context, keyword string) ([]models.MenuItem, error) {
	return s.repo.Search(ctx, keyword)
}

// Add validates and appends a new catalog item.
func (s *MenuService) Add(ctx context.Context, req validation.AddMenuItemRequest) (*models.MenuItem, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	item, err := s.repo.Add(ctx, req.Name, req.Price)
	if err != nil {
		return nil, err
	}
	s.log.Info("menu item added", "item_id", item.ID, "name", item.Name, "price", item.Price.StringFixed(2))
	return item, nil
}

// SetPrice updates an item's unit price. Already-placed orders keep their
// snapshot prices.
func (s *MenuService) SetPrice(ctx context.Context, id int, price decimal.Decimal) error {
	if err := s.repo.SetPrice(ctx, id, price); err != nil {
		return err
	}
	s.log.Info("menu price updated", "item_id", id, "price", price.StringFixed(2))
	return nil
}

// SetAvailability toggles whether an item can be ordered.
func (s *MenuService) SetAvailability(ctx context.Context, id int, available bool) error {
	if err := s.repo.SetAvailability(ctx, id, available); err != nil {
		return err
	}
	s.log.Info("menu availability updated", "item_id", id, "available", available)
	return nil
}

// Remove deletes an item. Unknown ids are a no-op.
func (s *MenuService) Remove(ctx context.Context, id int) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}
	s.log.Info("menu item removed", "item_id", id)
	return nil
}
