package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Rate is the per-unit price in rupees. CGST and
// SGST percentages are supplied per item and snapshotted onto order lines;
// this package never decides tax rates, only applies them.
type Product struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	HSNCode        string          `json:"hsn_code"`
	Unit           string          `json:"unit"`
	Rate           decimal.Decimal `json:"rate"`
	Stock          int             `json:"stock"`
	Batch          string          `json:"batch,omitempty"`
	MfgDate        *string         `json:"mfg_date,omitempty"` // YYYY-MM-DD
	ExpDate        *string         `json:"exp_date,omitempty"` // YYYY-MM-DD
	CGSTPercentage decimal.Decimal `json:"cgst_percentage"`
	SGSTPercentage decimal.Decimal `json:"sgst_percentage"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ProductPatch carries a partial product update. Nil fields keep their
// stored values.
type ProductPatch struct {
	Name           *string          `json:"name"`
	HSNCode        *string          `json:"hsn_code"`
	Unit           *string          `json:"unit"`
	Rate           *decimal.Decimal `json:"rate"`
	Stock          *int             `json:"stock"`
	Batch          *string          `json:"batch"`
	MfgDate        *string          `json:"mfg_date"`
	ExpDate        *string          `json:"exp_date"`
	CGSTPercentage *decimal.Decimal `json:"cgst_percentage"`
	SGSTPercentage *decimal.Decimal `json:"sgst_percentage"`
}

// ValidTaxPercentage reports whether pct is within [0, 100].
func ValidTaxPercentage(pct decimal.Decimal) bool {
	return !pct.IsNegative() && pct.LessThanOrEqual(oneHundred)
}
