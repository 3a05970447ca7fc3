package app

import (
	"context"
	"fmt"

	"gst-invoicing/internal/core"
)

const topProductsLimit = 5

type appService struct {
	products  core.ProductService
	invoices  core.InvoiceService
	reporting core.ReportingService
	users     core.UserService
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(
	products core.ProductService,
	invoices core.InvoiceService,
	reporting core.ReportingService,
	users core.UserService,
) ApplicationService {
	return &appService{
		products:  products,
		invoices:  invoices,
		reporting: reporting,
		users:     users,
	}
}

func (s *appService) RegisterUser(ctx context.Context, email, password string) (*UserSession, error) {
	user, err := s.users.CreateUser(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return &UserSession{UserID: user.ID, Email: user.Email}, nil
}

func (s *appService) AuthenticateUser(ctx context.Context, email, password string) (*UserSession, error) {
	user, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return &UserSession{UserID: user.ID, Email: user.Email}, nil
}

func (s *appService) GetUser(ctx context.Context, userID int) (*UserResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserResult{UserID: user.ID, Email: user.Email}, nil
}

func (s *appService) ListProducts(ctx context.Context) (*ProductListResult, error) {
	products, err := s.products.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	return &ProductListResult{Products: products}, nil
}

func (s *appService) AddProduct(ctx context.Context, req AddProductRequest) (*ProductResult, error) {
	if req.Name == "" || req.HSNCode == "" || req.Unit == "" {
		return nil, fmt.Errorf("name, hsn_code, and unit are required")
	}

	product, err := s.products.CreateProduct(ctx, core.Product{
		Name:           req.Name,
		HSNCode:        req.HSNCode,
		Unit:           req.Unit,
		Rate:           req.Rate,
		Stock:          req.Stock,
		Batch:          req.Batch,
		MfgDate:        req.MfgDate,
		ExpDate:        req.ExpDate,
		CGSTPercentage: req.CGSTPercentage,
		SGSTPercentage: req.SGSTPercentage,
	})
	if err != nil {
		return nil, err
	}
	return &ProductResult{Product: product}, nil
}

func (s *appService) UpdateProduct(ctx context.Context, productID int, patch core.ProductPatch) (*ProductResult, error) {
	product, err := s.products.UpdateProduct(ctx, productID, patch)
	if err != nil {
		return nil, err
	}
	return &ProductResult{Product: product}, nil
}

func (s *appService) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResult, error) {
	items := make([]core.InvoiceItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, core.InvoiceItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	inv, err := s.invoices.CreateInvoice(ctx, items, core.BuyerDetails{
		Name:    req.BuyerName,
		Address: req.BuyerAddress,
	})
	if err != nil {
		return nil, err
	}
	return &InvoiceResult{Invoice: inv}, nil
}

func (s *appService) ListInvoices(ctx context.Context) (*InvoiceListResult, error) {
	invoices, err := s.invoices.GetInvoices(ctx)
	if err != nil {
		return nil, err
	}
	return &InvoiceListResult{Invoices: invoices}, nil
}

func (s *appService) GetInvoice(ctx context.Context, invoiceID string) (*InvoiceResult, error) {
	inv, err := s.invoices.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return &InvoiceResult{Invoice: inv}, nil
}

func (s *appService) GetSalesSummary(ctx context.Context) (*SalesSummaryResult, error) {
	days, err := s.reporting.GetDailySales(ctx)
	if err != nil {
		return nil, err
	}
	return &SalesSummaryResult{Days: days}, nil
}

func (s *appService) GetTopProducts(ctx context.Context) (*TopProductsResult, error) {
	products, err := s.reporting.GetTopProducts(ctx, topProductsLimit)
	if err != nil {
		return nil, err
	}
	return &TopProductsResult{Products: products}, nil
}
