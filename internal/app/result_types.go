package app

import "gst-invoicing/internal/core"

// UserSession identifies an authenticated user. Token minting is the web
// adapter's job.
type UserSession struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
}

// UserResult is a user profile without credentials.
type UserResult struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
}

type ProductResult struct {
	Product *core.Product `json:"product"`
}

type ProductListResult struct {
	Products []core.Product `json:"products"`
}

type InvoiceResult struct {
	Invoice *core.Invoice `json:"invoice"`
}

type InvoiceListResult struct {
	Invoices []core.Invoice `json:"invoices"`
}

type SalesSummaryResult struct {
	Days []core.DailySales `json:"days"`
}

type TopProductsResult struct {
	Products []core.ProductSales `json:"products"`
}
