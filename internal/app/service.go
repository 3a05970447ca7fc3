package app

import (
	"context"

	"gst-invoicing/internal/core"
)

// ApplicationService is the single interface the web adapter calls. It
// decouples presentation from business logic: implementations contain no
// HTTP types and no display logic.
type ApplicationService interface {
	// RegisterUser creates an account and returns a session for it.
	RegisterUser(ctx context.Context, email, password string) (*UserSession, error)

	// AuthenticateUser verifies credentials and returns a session on success.
	AuthenticateUser(ctx context.Context, email, password string) (*UserSession, error)

	// GetUser returns a user profile by ID.
	GetUser(ctx context.Context, userID int) (*UserResult, error)

	// ListProducts returns the full product catalog.
	ListProducts(ctx context.Context) (*ProductListResult, error)

	// AddProduct creates a catalog item.
	AddProduct(ctx context.Context, req AddProductRequest) (*ProductResult, error)

	// UpdateProduct applies a partial patch to a catalog item.
	UpdateProduct(ctx context.Context, productID int, patch core.ProductPatch) (*ProductResult, error)

	// CreateInvoice prices the requested items, builds the invoice, persists
	// it, and decrements stock, all atomically.
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResult, error)

	// ListInvoices returns invoice headers newest-first.
	ListInvoices(ctx context.Context) (*InvoiceListResult, error)

	// GetInvoice returns one invoice with its line items.
	GetInvoice(ctx context.Context, invoiceID string) (*InvoiceResult, error)

	// GetSalesSummary returns per-day invoice counts and revenue.
	GetSalesSummary(ctx context.Context) (*SalesSummaryResult, error)

	// GetTopProducts returns the best-selling products by quantity.
	GetTopProducts(ctx context.Context) (*TopProductsResult, error)
}
