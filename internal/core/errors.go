package core

import "errors"

// Business-rule errors surfaced by the order and invoice operations.
// Callers branch on these with errors.Is; all are recoverable at the
// caller and none abort an order-building session.
var (
	// ErrInvalidQuantity is returned when a requested quantity is not a
	// positive integer.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrInsufficientStock is returned when a requested quantity exceeds
	// the stock visible on the product at call time.
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")

	// ErrEmptyOrder is returned when an invoice build is attempted with
	// zero lines.
	ErrEmptyOrder = errors.New("order must have at least one line")

	// ErrInvalidTaxPercentage is returned when a catalog-supplied CGST or
	// SGST percentage falls outside [0, 100].
	ErrInvalidTaxPercentage = errors.New("tax percentage must be between 0 and 100")

	// ErrNotFound is returned when a product or invoice lookup matches
	// nothing.
	ErrNotFound = errors.New("not found")
)
