package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OrderLine is one priced, tax-split entry in an order. It snapshots the
// product's descriptive and pricing fields at the moment it is added, so a
// later catalog edit never changes an invoice built from it.
type OrderLine struct {
	ProductID      int             `json:"product_id"`
	Name           string          `json:"name"`
	HSNCode        string          `json:"hsn_code"`
	Unit           string          `json:"unit"`
	Quantity       int             `json:"quantity"`
	Rate           decimal.Decimal `json:"rate"`
	Batch          string          `json:"batch,omitempty"`
	MfgDate        *string         `json:"mfg_date,omitempty"`
	ExpDate        *string         `json:"exp_date,omitempty"`
	CGSTPercentage decimal.Decimal `json:"cgst_percentage"`
	SGSTPercentage decimal.Decimal `json:"sgst_percentage"`
	Total          decimal.Decimal `json:"total"`
	CGSTAmount     decimal.Decimal `json:"cgst_amount"`
	SGSTAmount     decimal.Decimal `json:"sgst_amount"`
}

// Order accumulates lines for one order-building session. The zero value
// is ready to use. An Order is a plain value owned by its caller: nothing
// is shared across sessions and nothing is persisted until the invoice
// built from it is handed to storage. Abandoning an Order has no effect
// anywhere.
//
// Lines for the same product are kept as separate entries in addition
// order; there is no merging or deduplication.
type Order struct {
	lines []OrderLine
}

// AddLine prices quantity units of p and appends the resulting line.
// On error the order is unchanged.
func (o *Order) AddLine(p Product, quantity int) (OrderLine, error) {
	line, err := PriceOrderLine(p, quantity)
	if err != nil {
		return OrderLine{}, err
	}
	o.lines = append(o.lines, line)
	return line, nil
}

// RemoveLine deletes the line at index i, preserving the order of the rest.
func (o *Order) RemoveLine(i int) error {
	if i < 0 || i >= len(o.lines) {
		return fmt.Errorf("order has no line at index %d", i)
	}
	o.lines = append(o.lines[:i], o.lines[i+1:]...)
	return nil
}

// Lines returns a copy of the accumulated lines in addition order.
func (o *Order) Lines() []OrderLine {
	out := make([]OrderLine, len(o.lines))
	copy(out, o.lines)
	return out
}
