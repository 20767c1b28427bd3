package ledger

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/shopspring/decimal"

	"restaurant-pos/internal/models"
)

// OrderLedger is the append-only durable record of completed orders. Writes
// are serialized behind a mutex so records are appended atomically within one
// process; cross-process locking is not supported.
type OrderLedger struct {
	mu   sync.Mutex
	path string
}

// NewOrderLedger creates a ledger backed by the file at path. The file is
// created lazily on first append.
func NewOrderLedger(path string) *OrderLedger {
	return &OrderLedger{path: path}
}

// Append serializes the order and durably appends it as one record. On error
// nothing has been committed to in-memory state by this call, so the caller
// decides how to reconcile.
func (l *OrderLedger) Append(ctx context.Context, o *models.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open order ledger: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(EncodeRecord(o) + "\n"); err != nil {
		return fmt.Errorf("append order record: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync order ledger: %w", err)
	}
	return nil
}

// ReadAll returns every raw record line in append order. A missing ledger
// file is an empty history, not an error.
func (l *OrderLedger) ReadAll(ctx context.Context) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return readLines(l.path, "order ledger")
}

// Summary is the aggregate view over the whole ledger.
type Summary struct {
	OrderCount   int
	TotalRevenue decimal.Decimal
}

// Aggregate counts records and sums every line-total field across the ledger.
// A line counts as an order iff its header decodes; malformed line-total
// tokens are skipped without aborting the rest of the scan.
func (l *OrderLedger) Aggregate(ctx context.Context) (Summary, error) {
	lines, err := l.ReadAll(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{TotalRevenue: decimal.Zero}
	for _, line := range lines {
		if line == "" {
			continue
		}
		if _, err := DecodeRecord(line); err != nil {
			continue
		}
		summary.OrderCount++
		for _, total := range lineTotals(line) {
			summary.TotalRevenue = summary.TotalRevenue.Add(total)
		}
	}
	summary.TotalRevenue = summary.TotalRevenue.Round(2)
	return summary, nil
}

// readLines scans a ledger file into raw lines. Missing files read as empty.
func readLines(path, what string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", what, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", what, err)
	}
	return lines, nil
}
