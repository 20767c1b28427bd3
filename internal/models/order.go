package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrOrderClosed     = errors.New("order is closed")
)

// OrderLine is a single line of an order. Item is a snapshot taken when the
// line was added: later catalog price edits must not change this line's total.
type OrderLine struct {
	Item     MenuItem
	Quantity int
}

// Total returns the line's contribution, rounded to 2 decimals.
func (l OrderLine) Total() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity))).Round(2)
}

// Order is a single customer purchase against a booked table. Lines are
// appended while the order is open; Close makes it immutable.
type Order struct {
	ID           int
	CustomerName string
	TableID      int
	Lines        []OrderLine
	CreatedAt    time.Time

	closed bool
}

// NewOrder opens an empty order for a customer at a table.
func NewOrder(id int, customerName string, tableID int) *Order {
	return &Order{
		ID:           id,
		CustomerName: customerName,
		TableID:      tableID,
		CreatedAt:    time.Now(),
	}
}

// AddLine appends a line holding a snapshot of item. The caller is expected
// to have checked that the item exists and is available.
func (o *Order) AddLine(item MenuItem, quantity int) error {
	if o.closed {
		return ErrOrderClosed
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	o.Lines = append(o.Lines, OrderLine{Item: item, Quantity: quantity})
	return nil
}

// Close marks the order immutable. Called once it has been billed and persisted.
func (o *Order) Close() {
	o.closed = true
}

// Closed reports whether the order has been finalized.
func (o *Order) Closed() bool {
	return o.closed
}

// Subtotal is the sum of all line totals, rounded to 2 decimals.
func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range o.Lines {
		sum = sum.Add(line.Total())
	}
	return sum.Round(2)
}

// SurchargeLine is one computed surcharge on a bill.
type SurchargeLine struct {
	Name   string
	Amount decimal.Decimal
}

// SurchargeAmounts computes each configured surcharge against the subtotal,
// in configuration order, each rounded to 2 decimals.
func (o *Order) SurchargeAmounts(surcharges []Surcharge) []SurchargeLine {
	subtotal := o.Subtotal()
	lines := make([]SurchargeLine, 0, len(surcharges))
	for _, s := range surcharges {
		lines = append(lines, SurchargeLine{
			Name:   s.Name,
			Amount: subtotal.Mul(s.Rate).Round(2),
		})
	}
	return lines
}

// Total is the subtotal plus all configured surcharges.
func (o *Order) Total(surcharges []Surcharge) decimal.Decimal {
	total := o.Subtotal()
	for _, s := range o.SurchargeAmounts(surcharges) {
		total = total.Add(s.Amount)
	}
	return total.Round(2)
}

// BillLine is one order line prepared for display.
type BillLine struct {
	Name     string
	Quantity int
	Total    decimal.Decimal
}

// Bill is the structured rendering of a billed order. The core hands this to
// the shell for display and never prints it itself.
type Bill struct {
	OrderID      int
	CustomerName string
	TableID      int
	CreatedAt    time.Time
	Lines        []BillLine
	Subtotal     decimal.Decimal
	Surcharges   []SurchargeLine
	Total        decimal.Decimal
}

// Bill renders the order with the given surcharge configuration.
func (o *Order) Bill(surcharges []Surcharge) Bill {
	lines := make([]BillLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, BillLine{
			Name:     l.Item.Name,
			Quantity: l.Quantity,
			Total:    l.Total(),
		})
	}
	return Bill{
		OrderID:      o.ID,
		CustomerName: o.CustomerName,
		TableID:      o.TableID,
		CreatedAt:    o.CreatedAt,
		Lines:        lines,
		Subtotal:     o.Subtotal(),
		Surcharges:   o.SurchargeAmounts(surcharges),
		Total:        o.Total(surcharges),
	}
}
