package app

import "github.com/shopspring/decimal"

// AddProductRequest carries a new catalog item. MfgDate and ExpDate are
// optional YYYY-MM-DD strings.
type AddProductRequest struct {
	Name           string          `json:"name"`
	HSNCode        string          `json:"hsn_code"`
	Unit           string          `json:"unit"`
	Rate           decimal.Decimal `json:"rate"`
	Stock          int             `json:"stock"`
	Batch          string          `json:"batch"`
	MfgDate        *string         `json:"mfg_date"`
	ExpDate        *string         `json:"exp_date"`
	CGSTPercentage decimal.Decimal `json:"cgst_percentage"`
	SGSTPercentage decimal.Decimal `json:"sgst_percentage"`
}

// InvoiceItemRequest is one requested order line.
type InvoiceItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// CreateInvoiceRequest submits an order for invoicing. Items are priced
// server-side from the current catalog; client-supplied amounts are never
// trusted.
type CreateInvoiceRequest struct {
	Items        []InvoiceItemRequest `json:"items"`
	BuyerName    string               `json:"buyer_name"`
	BuyerAddress string               `json:"buyer_address"`
}
