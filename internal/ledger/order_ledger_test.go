package ledger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"restaurant-pos/internal/models"
)

func newTestLedger(t *testing.T) *OrderLedger {
	t.Helper()
	return NewOrderLedger(filepath.Join(t.TempDir(), "orders.txt"))
}

func orderWith(t *testing.T, id int, lines ...models.OrderLine) *models.Order {
	t.Helper()
	order := models.NewOrder(id, "Asha", 3)
	for _, l := range lines {
		if err := order.AddLine(l.Item, l.Quantity); err != nil {
			t.Fatalf("AddLine() unexpected error: %v", err)
		}
	}
	return order
}

func orderLine(id int, name, price string, qty int) models.OrderLine {
	return models.OrderLine{
		Item:     models.MenuItem{ID: id, Name: name, Price: decimal.RequireFromString(price), Available: true},
		Quantity: qty,
	}
}

func TestOrderLedger_ReadAll_MissingFile(t *testing.T) {
	ledger := newTestLedger(t)

	lines, err := ledger.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll() on missing file error = %v, want nil", err)
	}
	if len(lines) != 0 {
		t.Errorf("ReadAll() on missing file returned %d lines, want 0", len(lines))
	}
}

func TestOrderLedger_AppendPreservesOrder(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t)

	for i := 0; i < 3; i++ {
		order := orderWith(t, 1000+i, orderLine(7, "Coffee", "25.00", 1))
		if err := ledger.Append(ctx, order); err != nil {
			t.Fatalf("Append() unexpected error: %v", err)
		}
	}

	lines, err := ledger.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll() unexpected error: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("ReadAll() returned %d lines, want 3", len(lines))
	}
	for i, l := range lines {
		rec, err := DecodeRecord(l)
		if err != nil {
			t.Fatalf("record %d does not decode: %v", i, err)
		}
		if rec.OrderID != 1000+i {
			t.Errorf("record %d order id = %d, want %d (append order lost)", i, rec.OrderID, 1000+i)
		}
	}
}

func TestOrderLedger_Append_Failure(t *testing.T) {
	// Pointing the ledger at a directory makes the open fail; the error must
	// be surfaced, not swallowed.
	ledger := NewOrderLedger(t.TempDir())

	order := orderWith(t, 1000, orderLine(7, "Coffee", "25.00", 1))
	if err := ledger.Append(context.Background(), order); err == nil {
		t.Fatal("Append() to an unwritable path returned nil error")
	}
}

func TestOrderLedger_Aggregate(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t)

	// 105.00 and 150.00 of revenue respectively.
	ledger.Append(ctx, orderWith(t, 1000, orderLine(1, "Masala Dosa", "40.00", 2), orderLine(7, "Coffee", "25.00", 1)))
	ledger.Append(ctx, orderWith(t, 1001, orderLine(8, "Pizza", "150.00", 1)))

	summary, err := ledger.Aggregate(ctx)
	if err != nil {
		t.Fatalf("Aggregate() unexpected error: %v", err)
	}
	if summary.OrderCount != 2 {
		t.Errorf("OrderCount = %d, want 2", summary.OrderCount)
	}
	if !summary.TotalRevenue.Equal(decimal.RequireFromString("255.00")) {
		t.Errorf("TotalRevenue = %s, want 255.00", summary.TotalRevenue)
	}
}

func TestOrderLedger_Aggregate_SkipsMalformedRecords(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.txt")
	ledger := NewOrderLedger(path)

	if err := ledger.Append(ctx, orderWith(t, 1000, orderLine(7, "Coffee", "25.00", 2))); err != nil {
		t.Fatalf("Append() unexpected error: %v", err)
	}

	// Inject a garbage line between two valid records.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open ledger file: %v", err)
	}
	if _, err := f.WriteString("this is not a ledger record\n"); err != nil {
		t.Fatalf("write garbage line: %v", err)
	}
	f.Close()

	if err := ledger.Append(ctx, orderWith(t, 1001, orderLine(12, "Lassi", "40.00", 1))); err != nil {
		t.Fatalf("Append() unexpected error: %v", err)
	}

	summary, err := ledger.Aggregate(ctx)
	if err != nil {
		t.Fatalf("Aggregate() unexpected error: %v", err)
	}
	if summary.OrderCount != 2 {
		t.Errorf("OrderCount = %d, want 2 (garbage line must not count)", summary.OrderCount)
	}
	if !summary.TotalRevenue.Equal(decimal.RequireFromString("90.00")) {
		t.Errorf("TotalRevenue = %s, want 90.00", summary.TotalRevenue)
	}
}

func TestOrderLedger_Aggregate_Empty(t *testing.T) {
	summary, err := newTestLedger(t).Aggregate(context.Background())
	if err != nil {
		t.Fatalf("Aggregate() on missing file error = %v, want nil", err)
	}
	if summary.OrderCount != 0 || !summary.TotalRevenue.IsZero() {
		t.Errorf("Aggregate() on missing file = %+v, want zero summary", summary)
	}
}
