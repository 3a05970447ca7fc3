package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// BuyerDetails is the optional buyer block printed on an invoice.
type BuyerDetails struct {
	Name    string
	Address string
}

// Invoice is an immutable snapshot of a submitted order. Once built it is
// never recomputed: line items, sums, and the words rendering stay fixed
// regardless of later catalog changes.
//
// Invariant: Total = Subtotal + CGST + SGST exactly, at two decimal places.
type Invoice struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	Items         []OrderLine     `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	Total         decimal.Decimal `json:"total"`
	AmountInWords string          `json:"amount_in_words"`
	BuyerName     string          `json:"buyer_name,omitempty"`
	BuyerAddress  string          `json:"buyer_address,omitempty"`
}
