package models

import "github.com/shopspring/decimal"

// MenuItem represents a priced item on the restaurant menu.
// The catalog owns the canonical copy; orders hold snapshots.
type MenuItem struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

// Surcharge is a named percentage add-on applied to an order subtotal,
// e.g. {Name: "tax", Rate: 0.05}.
type Surcharge struct {
	Name string
	Rate decimal.Decimal
}
