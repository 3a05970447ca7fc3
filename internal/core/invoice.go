package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BuildInvoice aggregates priced order lines into an invoice. Lines are
// retained verbatim in addition order, not recomputed. The grand total is
// the exact sum of the already-rounded line figures, so
// Total = Subtotal + CGST + SGST holds identically.
//
// BuildInvoice does not persist anything; the caller hands the returned
// value to storage.
func BuildInvoice(lines []OrderLine, buyer BuyerDetails) (*Invoice, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	subtotal := decimal.Zero
	cgst := decimal.Zero
	sgst := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total)
		cgst = cgst.Add(l.CGSTAmount)
		sgst = sgst.Add(l.SGSTAmount)
	}
	total := subtotal.Add(cgst).Add(sgst)

	items := make([]OrderLine, len(lines))
	copy(items, lines)

	return &Invoice{
		ID:       uuid.NewString(),
		Date:     time.Now().UTC(),
		Items:    items,
		Subtotal: subtotal,
		CGST:     cgst,
		SGST:     sgst,
		Total:    total,
		// Fractional paise are not spelled out: round half-up to whole rupees.
		AmountInWords: AmountInWords(total.Round(0).IntPart()),
		BuyerName:     buyer.Name,
		BuyerAddress:  buyer.Address,
	}, nil
}
