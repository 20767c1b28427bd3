package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"restaurant-pos/internal/models"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
	ErrInvalidPrice = errors.New("price must be positive")
)

// MenuRepository defines the interface for menu catalog access.
type MenuRepository interface {
	List(ctx context.Context, includeUnavailable bool) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id int) (*models.MenuItem, error)
	Search(ctx context.Context, keyword string) ([]models.MenuItem, error)
	Add(ctx context.Context, name string, price decimal.Decimal) (*models.MenuItem, error)
	SetPrice(ctx context.Context, id int, price decimal.Decimal) error
	SetAvailability(ctx context.Context, id int, available bool) error
	Remove(ctx context.Context, id int) error
}

// InMemoryMenuRepository implements MenuRepository with in-memory storage.
// Items are kept in catalog order; ids are assigned from a monotonic counter
// so a delete followed by an add can never reuse an id.
type InMemoryMenuRepository struct {
	mu     sync.RWMutex
	items  []models.MenuItem
	nextID int
}

// NewInMemoryMenuRepository creates a menu repository seeded with the given
// items. The id counter starts past the highest seeded id.
func NewInMemoryMenuRepository(seed []models.MenuItem) *InMemoryMenuRepository {
	r := &InMemoryMenuRepository{
		items:  make([]models.MenuItem, len(seed)),
		nextID: 1,
	}
	copy(r.items, seed)
	for _, item := range r.items {
		if item.ID >= r.nextID {
			r.nextID = item.ID + 1
		}
	}
	return r
}

// DefaultMenu returns the standard menu seed data.
func DefaultMenu() []models.MenuItem {
	item := func(id int, name string, price string) models.MenuItem {
		return models.MenuItem{ID: id, Name: name, Price: decimal.RequireFromString(price), Available: true}
	}
	return []models.MenuItem{
		item(1, "Masala Dosa", "40.00"),
		item(2, "Idli Vada", "30.00"),
		item(3, "Paneer Butter Masala", "90.00"),
		item(4, "Chapati", "10.00"),
		item(5, "Fried Rice", "80.00"),
		item(6, "Ice Cream", "50.00"),
		item(7, "Coffee", "25.00"),
		item(8, "Pizza", "150.00"),
		item(9, "Burger", "120.00"),
		item(10, "Noodles", "90.00"),
		item(11, "Gobi Manchurian", "100.00"),
		item(12, "Lassi", "40.00"),
	}
}

// List returns items in catalog order, filtering out unavailable items unless
// includeUnavailable is set.
func (r *InMemoryMenuRepository) List(ctx context.Context, includeUnavailable bool) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		if item.Available || includeUnavailable {
			items = append(items, item)
		}
	}
	return items, nil
}

// GetByID returns the item with the given id.
func (r *InMemoryMenuRepository) GetByID(ctx context.Context, id int) (*models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, ErrItemNotFound
}

// Search returns items whose name contains keyword, case-insensitively.
// An empty result is not an error.
func (r *InMemoryMenuRepository) Search(ctx context.Context, keyword string) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keyword = strings.ToLower(keyword)
	var matches []models.MenuItem
	for _, item := range r.items {
		if strings.Contains(strings.ToLower(item.Name), keyword) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

// Add appends a new available item with a fresh id.
func (r *InMemoryMenuRepository) Add(ctx context.Context, name string, price decimal.Decimal) (*models.MenuItem, error) {
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item := models.MenuItem{
		ID:        r.nextID,
		Name:      name,
		Price:     price.Round(2),
		Available: true,
	}
	r.nextID++
	r.items = append(r.items, item)
	return &item, nil
}

// SetPrice updates an item's unit price. Orders already holding a snapshot of
// the item are unaffected.
func (r *InMemoryMenuRepository) SetPrice(ctx context.Context, id int, price decimal.Decimal) error {
	if !price.IsPositive() {
		return ErrInvalidPrice
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Price = price.Round(2)
			return nil
		}
	}
	return ErrItemNotFound
}

// SetAvailability toggles whether an item can be ordered.
func (r *InMemoryMenuRepository) SetAvailability(ctx context.Context, id int, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Available = available
			return nil
		}
	}
	return ErrItemNotFound
}

// Remove deletes an item from the catalog. Removing an unknown id is a no-op.
func (r *InMemoryMenuRepository) Remove(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}
