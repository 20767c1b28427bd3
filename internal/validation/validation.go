// Package validation holds the request structs the shell hands to the core,
// validated with go-playground/validator tags. Names are restricted to
// characters that cannot collide with the ledger record delimiters ("|", ","
// and ";"), which is what keeps persisted records parseable back.
package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// OpenOrderRequest opens an order for a customer at a table.
type OpenOrderRequest struct {
	CustomerName string `validate:"required,max=100,excludesall=0x7C0x2C;"`
	TableID      int    `validate:"gt=0"`
}

// AddMenuItemRequest adds a new item to the catalog. Price positivity is
// enforced by the catalog itself.
type AddMenuItemRequest struct {
	Name  string          `validate:"required,max=50,excludesall=0x7C0x2C;"`
	Price decimal.Decimal `validate:"-"`
}

// FeedbackRequest records free-text customer feedback.
type FeedbackRequest struct {
	CustomerName string `validate:"required,max=100"`
	Text         string `validate:"required,max=500"`
}

// Validate runs struct-level validation using the shared validator instance.
func Validate(s any) error {
	return validate.Struct(s)
}
