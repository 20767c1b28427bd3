package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestInMemoryMenuRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryMenuRepository(DefaultMenu())

	items, err := repo.List(ctx, false)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(items) != 12 {
		t.Fatalf("List() returned %d items, want 12", len(items))
	}
	// Catalog order is stable.
	if items[0].Name != "Masala Dosa" || items[11].Name != "Lassi" {
		t.Errorf("List() order = %s ... %s, want Masala Dosa ... Lassi", items[0].Name, items[11].Name)
	}

	t.Run("filters unavailable items", func(t *testing.T) {
		if err := repo.SetAvailability(ctx, 7, false); err != nil {
			t.Fatalf("SetAvailability() unexpected error: %v", err)
		}

		available, _ := repo.List(ctx, false)
		if len(available) != 11 {
			t.Errorf("List(false) returned %d items, want 11", len(available))
		}
		all, _ := repo.List(ctx, true)
		if len(all) != 12 {
			t.Errorf("List(true) returned %d items, want 12", len(all))
		}
	})
}

func TestInMemoryMenuRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryMenuRepository(DefaultMenu())

	item, err := repo.GetByID(ctx, 7)
	if err != nil {
		t.Fatalf("GetByID(7) unexpected error: %v", err)
	}
	if item.Name != "Coffee" || !item.Price.Equal(decimal.RequireFromString("25.00")) {
		t.Errorf("GetByID(7) = %s/%s, want Coffee/25.00", item.Name, item.Price)
	}

	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("GetByID(999) error = %v, want %v", err, ErrItemNotFound)
	}
}

func TestInMemoryMenuRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryMenuRepository(DefaultMenu())

	tests := []struct {
		name    string
		keyword string
		want    int
	}{
		{name: "case insensitive match", keyword: "DOSA", want: 1},
		{name: "substring match", keyword: "ri", want: 2}, // Fried Rice, Gobi Manchurian
		{name: "no match is not an error", keyword: "sushi", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.keyword)
			if err != nil {
				t.Fatalf("Search(%q) unexpected error: %v", tt.keyword, err)
			}
			if len(got) != tt.want {
				t.Errorf("Search(%q) returned %d items, want %d", tt.keyword, len(got), tt.want)
			}
		})
	}
}

func TestInMemoryMenuRepository_Add(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryMenuRepository(DefaultMenu())

	item, err := repo.Add(ctx, "Veg Thali", decimal.RequireFromString("130.00"))
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if item.ID != 13 {
		t.Errorf("Add() id = %d, want 13", item.ID)
	}
	if !item.Available {
		t.Error("Add() item should start available")
	}

	t.Run("rejects non-positive price", func(t *testing.T) {
		if _, err := repo.Add(ctx, "Free Lunch", decimal.Zero); !errors.Is(err, ErrInvalidPrice) {
			t.Errorf("Add(price=0) error = %v, want %v", err, ErrInvalidPrice)
		}
		if _, err := repo.Add(ctx, "Refund", decimal.RequireFromString("-5")); !errors.Is(err, ErrInvalidPrice) {
			t.Errorf("Add(price<0) error = %v, want %v", err, ErrInvalidPrice)
		}
	})
}

func TestInMemoryMenuRepository_IDNeverReusedAfterRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryMenuRepository(DefaultMenu())

	if err := repo.Remove(ctx, 12); err != nil {
		t.Fatalf("Remove() unexpected error: %v", err)
	}

	item, err := repo.Add(ctx, "Veg Thali", decimal.RequireFromString("130.00"))
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if item.ID != 13 {
		t.Errorf("Add() after Remove reused id %d, want monotonic 13", item.ID)
	}
}

func TestInMemoryMenuRepository_SetPrice(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryMenuRepository(DefaultMenu())

	if err := repo.SetPrice(ctx, 7, decimal.RequireFromString("30.00")); err != nil {
		t.Fatalf("SetPrice() unexpected error: %v", err)
	}
	item, _ := repo.GetByID(ctx, 7)
	if !item.Price.Equal(decimal.RequireFromString("30.00")) {
		t.Errorf("price after SetPrice = %s, want 30.00", item.Price)
	}

	if err := repo.SetPrice(ctx, 999, decimal.RequireFromString("30.00")); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("SetPrice(999) error = %v, want %v", err, ErrItemNotFound)
	}
	if err := repo.SetPrice(ctx, 7, decimal.Zero); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("SetPrice(price=0) error = %v, want %v", err, ErrInvalidPrice)
	}
}

func TestInMemoryMenuRepository_Remove(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryMenuRepository(DefaultMenu())

	if err := repo.Remove(ctx, 3); err != nil {
		t.Fatalf("Remove() unexpected error: %v", err)
	}
	if _, err := repo.GetByID(ctx, 3); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("GetByID after Remove error = %v, want %v", err, ErrItemNotFound)
	}

	// Removing an unknown id is a no-op, not an error.
	if err := repo.Remove(ctx, 999); err != nil {
		t.Errorf("Remove(999) error = %v, want nil", err)
	}
}
