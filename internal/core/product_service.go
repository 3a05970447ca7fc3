package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductService manages the product catalog. Updates are partial patches:
// only the fields present in the patch change, everything else keeps its
// stored value. Catalog edits never touch existing invoices.
type ProductService interface {
	CreateProduct(ctx context.Context, p Product) (*Product, error)
	GetProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int) (*Product, error)
	UpdateProduct(ctx context.Context, id int, patch ProductPatch) (*Product, error)
}

type productService struct {
	pool *pgxpool.Pool
}

// NewProductService constructs a ProductService backed by PostgreSQL.
func NewProductService(pool *pgxpool.Pool) ProductService {
	return &productService{pool: pool}
}

const productColumns = `id, name, hsn_code, unit, rate, stock, batch,
	mfg_date::text, exp_date::text, cgst_percentage, sgst_percentage, created_at`

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.HSNCode, &p.Unit, &p.Rate, &p.Stock, &p.Batch,
		&p.MfgDate, &p.ExpDate, &p.CGSTPercentage, &p.SGSTPercentage, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *productService) CreateProduct(ctx context.Context, p Product) (*Product, error) {
	if !ValidTaxPercentage(p.CGSTPercentage) || !ValidTaxPercentage(p.SGSTPercentage) {
		return nil, fmt.Errorf("%w: CGST %s%%, SGST %s%%",
			ErrInvalidTaxPercentage, p.CGSTPercentage, p.SGSTPercentage)
	}
	if p.Rate.IsNegative() {
		return nil, fmt.Errorf("rate must not be negative, got %s", p.Rate)
	}
	if p.Stock < 0 {
		return nil, fmt.Errorf("stock must not be negative, got %d", p.Stock)
	}

	created, err := scanProduct(s.pool.QueryRow(ctx, `
		INSERT INTO products (name, hsn_code, unit, rate, stock, batch, mfg_date, exp_date, cgst_percentage, sgst_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+productColumns,
		p.Name, p.HSNCode, p.Unit, p.Rate, p.Stock, p.Batch, p.MfgDate, p.ExpDate,
		p.CGSTPercentage, p.SGSTPercentage,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

func (s *productService) GetProducts(ctx context.Context) ([]Product, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (s *productService) GetProduct(ctx context.Context, id int) (*Product, error) {
	p, err := scanProduct(s.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch product %d: %w", id, err)
	}
	return p, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int, patch ProductPatch) (*Product, error) {
	if patch.CGSTPercentage != nil && !ValidTaxPercentage(*patch.CGSTPercentage) {
		return nil, fmt.Errorf("%w: CGST %s%%", ErrInvalidTaxPercentage, patch.CGSTPercentage)
	}
	if patch.SGSTPercentage != nil && !ValidTaxPercentage(*patch.SGSTPercentage) {
		return nil, fmt.Errorf("%w: SGST %s%%", ErrInvalidTaxPercentage, patch.SGSTPercentage)
	}
	if patch.Rate != nil && patch.Rate.IsNegative() {
		return nil, fmt.Errorf("rate must not be negative, got %s", patch.Rate)
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return nil, fmt.Errorf("stock must not be negative, got %d", *patch.Stock)
	}

	// COALESCE keeps the stored value wherever the patch field is nil.
	updated, err := scanProduct(s.pool.QueryRow(ctx, `
		UPDATE products SET
			name            = COALESCE($2, name),
			hsn_code        = COALESCE($3, hsn_code),
			unit            = COALESCE($4, unit),
			rate            = COALESCE($5, rate),
			stock           = COALESCE($6, stock),
			batch           = COALESCE($7, batch),
			mfg_date        = COALESCE($8::date, mfg_date),
			exp_date        = COALESCE($9::date, exp_date),
			cgst_percentage = COALESCE($10, cgst_percentage),
			sgst_percentage = COALESCE($11, sgst_percentage)
		WHERE id = $1
		RETURNING `+productColumns,
		id, patch.Name, patch.HSNCode, patch.Unit, patch.Rate, patch.Stock, patch.Batch,
		patch.MfgDate, patch.ExpDate, patch.CGSTPercentage, patch.SGSTPercentage,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return updated, nil
}
