package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"restaurant-pos/internal/repository"
	"restaurant-pos/internal/validation"
)

func newMenuService() *MenuService {
	repo := repository.NewInMemoryMenuRepository(repository.DefaultMenu())
	return NewMenuService(repo, discardLogger())
}

func TestMenuService_Add(t *testing.T) {
	ctx := context.Background()
	svc := newMenuService()

	item, err := svc.Add(ctx, validation.AddMenuItemRequest{
		Name:  "Veg Thali",
		Price: decimal.RequireFromString("130.00"),
	})
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if item.ID != 13 {
		t.Errorf("Add() id = %d, want 13", item.ID)
	}

	tests := []struct {
		name string
		req  validation.AddMenuItemRequest
	}{
		{name: "empty name", req: validation.AddMenuItemRequest{Name: "", Price: decimal.RequireFromString("10")}},
		{name: "delimiter in name", req: validation.AddMenuItemRequest{Name: "A|B", Price: decimal.RequireFromString("10")}},
		{name: "non-positive price", req: validation.AddMenuItemRequest{Name: "Soup", Price: decimal.Zero}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Add(ctx, tt.req); err == nil {
				t.Errorf("Add(%+v) error = nil, want error", tt.req)
			}
		})
	}
}

func TestMenuService_EditOperations(t *testing.T) {
	ctx := context.Background()
	svc := newMenuService()

	if err := svc.SetPrice(ctx, 7, decimal.RequireFromString("30.00")); err != nil {
		t.Fatalf("SetPrice() unexpected error: %v", err)
	}
	item, err := svc.Find(ctx, 7)
	if err != nil {
		t.Fatalf("Find() unexpected error: %v", err)
	}
	if !item.Price.Equal(decimal.RequireFromString("30.00")) {
		t.Errorf("price after SetPrice = %s, want 30.00", item.Price)
	}

	if err := svc.SetAvailability(ctx, 7, false); err != nil {
		t.Fatalf("SetAvailability() unexpected error: %v", err)
	}
	visible, _ := svc.List(ctx, false)
	for _, it := range visible {
		if it.ID == 7 {
			t.Error("List(false) still shows the disabled item")
		}
	}

	if err := svc.SetPrice(ctx, 999, decimal.RequireFromString("5.00")); !errors.Is(err, repository.ErrItemNotFound) {
		t.Errorf("SetPrice(999) error = %v, want %v", err, repository.ErrItemNotFound)
	}
}
