package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// DailySales is one day of invoicing activity.
type DailySales struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	InvoiceCount int             `json:"invoice_count"`
	Total        decimal.Decimal `json:"total"`
}

// ProductSales ranks a product by units sold across all invoices.
type ProductSales struct {
	ProductID    int             `json:"product_id"`
	Name         string          `json:"name"`
	QuantitySold int64           `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// ReportingService answers the dashboard queries. Reports are derived from
// persisted invoices only, so they reflect exactly what was billed.
type ReportingService interface {
	GetDailySales(ctx context.Context) ([]DailySales, error)
	GetTopProducts(ctx context.Context, limit int) ([]ProductSales, error)
}

type reportingService struct {
	pool *pgxpool.Pool
}

func NewReportingService(pool *pgxpool.Pool) ReportingService {
	return &reportingService{pool: pool}
}

func (s *reportingService) GetDailySales(ctx context.Context) ([]DailySales, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT date::date::text, COUNT(*), COALESCE(SUM(total), 0)
		FROM invoices
		GROUP BY date::date
		ORDER BY date::date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily sales: %w", err)
	}
	defer rows.Close()

	var sales []DailySales
	for rows.Next() {
		var d DailySales
		if err := rows.Scan(&d.Date, &d.InvoiceCount, &d.Total); err != nil {
			return nil, fmt.Errorf("failed to scan daily sales: %w", err)
		}
		sales = append(sales, d)
	}
	return sales, rows.Err()
}

func (s *reportingService) GetTopProducts(ctx context.Context, limit int) ([]ProductSales, error) {
	if limit < 1 {
		limit = 5
	}

	rows, err := s.pool.Query(ctx, `
		SELECT product_id, MAX(name), SUM(quantity), COALESCE(SUM(total), 0)
		FROM invoice_items
		GROUP BY product_id
		ORDER BY SUM(quantity) DESC, product_id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}
	defer rows.Close()

	var top []ProductSales
	for rows.Next() {
		var p ProductSales
		if err := rows.Scan(&p.ProductID, &p.Name, &p.QuantitySold, &p.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan top product: %w", err)
		}
		top = append(top, p)
	}
	return top, rows.Err()
}
