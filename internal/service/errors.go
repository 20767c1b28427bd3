package service

import "errors"

// Sentinel errors for the order lifecycle. Check with errors.Is; none of
// these is fatal — the shell surfaces them as messages and the core state is
// unchanged when they are returned.
var (
	ErrTableUnavailable = errors.New("table not available or unknown")
	ErrItemUnavailable  = errors.New("menu item is not available")
	ErrEmptyOrder       = errors.New("order must contain at least one item")
)
