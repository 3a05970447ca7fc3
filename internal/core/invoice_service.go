package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InvoiceItemInput names a product and quantity submitted for invoicing.
type InvoiceItemInput struct {
	ProductID int
	Quantity  int
}

// InvoiceService persists invoices built by the pure core and reads them
// back. Creation is all-or-nothing: pricing, the invoice insert, and the
// stock decrements commit in one transaction or not at all.
type InvoiceService interface {
	// CreateInvoice prices the requested items against the current catalog,
	// builds the invoice, persists it, and decrements stock.
	CreateInvoice(ctx context.Context, items []InvoiceItemInput, buyer BuyerDetails) (*Invoice, error)

	// GetInvoice returns a stored invoice with its line items in the order
	// they were added.
	GetInvoice(ctx context.Context, id string) (*Invoice, error)

	// GetInvoices lists invoice headers newest-first. Items are not loaded.
	GetInvoices(ctx context.Context) ([]Invoice, error)
}

type invoiceService struct {
	pool *pgxpool.Pool
}

// NewInvoiceService constructs an InvoiceService backed by PostgreSQL.
func NewInvoiceService(pool *pgxpool.Pool) InvoiceService {
	return &invoiceService{pool: pool}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, items []InvoiceItemInput, buyer BuyerDetails) (*Invoice, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock each product row for the duration of the transaction so two
	// concurrent submissions cannot both pass the stock check.
	var order Order
	for i, item := range items {
		var p Product
		err := tx.QueryRow(ctx, `
			SELECT `+productColumns+`
			FROM products
			WHERE id = $1
			FOR UPDATE
		`, item.ProductID).Scan(
			&p.ID, &p.Name, &p.HSNCode, &p.Unit, &p.Rate, &p.Stock, &p.Batch,
			&p.MfgDate, &p.ExpDate, &p.CGSTPercentage, &p.SGSTPercentage, &p.CreatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("item %d: product %d: %w", i+1, item.ProductID, ErrNotFound)
			}
			return nil, fmt.Errorf("item %d: failed to fetch product %d: %w", i+1, item.ProductID, err)
		}

		if _, err := order.AddLine(p, item.Quantity); err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
	}

	inv, err := BuildInvoice(order.Lines(), buyer)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO invoices (id, date, subtotal, cgst, sgst, total, amount_in_words, buyer_name, buyer_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, inv.ID, inv.Date, inv.Subtotal, inv.CGST, inv.SGST, inv.Total, inv.AmountInWords,
		inv.BuyerName, inv.BuyerAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to insert invoice: %w", err)
	}

	for pos, line := range inv.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO invoice_items (invoice_id, position, product_id, name, hsn_code, unit,
				quantity, rate, batch, mfg_date, exp_date,
				cgst_percentage, sgst_percentage, total, cgst_amount, sgst_amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		`, inv.ID, pos+1, line.ProductID, line.Name, line.HSNCode, line.Unit,
			line.Quantity, line.Rate, line.Batch, line.MfgDate, line.ExpDate,
			line.CGSTPercentage, line.SGSTPercentage, line.Total, line.CGSTAmount, line.SGSTAmount)
		if err != nil {
			return nil, fmt.Errorf("failed to insert invoice item %d: %w", pos+1, err)
		}

		// Guarded decrement: with the row lock held this cannot underflow,
		// but the guard keeps the invariant even if the lock is ever lost.
		tag, err := tx.Exec(ctx,
			"UPDATE products SET stock = stock - $2 WHERE id = $1 AND stock >= $2",
			line.ProductID, line.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to decrement stock for product %d: %w", line.ProductID, err)
		}
		if tag.RowsAffected() == 0 {
			return nil, fmt.Errorf("%w: product %q oversold during submission", ErrInsufficientStock, line.Name)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit invoice: %w", err)
	}
	return inv, nil
}

const invoiceColumns = `id, date, subtotal, cgst, sgst, total, amount_in_words, buyer_name, buyer_address`

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	var inv Invoice
	err := s.pool.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id,
	).Scan(&inv.ID, &inv.Date, &inv.Subtotal, &inv.CGST, &inv.SGST, &inv.Total,
		&inv.AmountInWords, &inv.BuyerName, &inv.BuyerAddress)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("invoice %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch invoice %s: %w", id, err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT product_id, name, hsn_code, unit, quantity, rate, batch,
		       mfg_date::text, exp_date::text,
		       cgst_percentage, sgst_percentage, total, cgst_amount, sgst_amount
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l OrderLine
		if err := rows.Scan(&l.ProductID, &l.Name, &l.HSNCode, &l.Unit, &l.Quantity, &l.Rate,
			&l.Batch, &l.MfgDate, &l.ExpDate,
			&l.CGSTPercentage, &l.SGSTPercentage, &l.Total, &l.CGSTAmount, &l.SGSTAmount); err != nil {
			return nil, fmt.Errorf("failed to scan invoice item: %w", err)
		}
		inv.Items = append(inv.Items, l)
	}
	return &inv, rows.Err()
}

func (s *invoiceService) GetInvoices(ctx context.Context) ([]Invoice, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices ORDER BY date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	var invoices []Invoice
	for rows.Next() {
		var inv Invoice
		if err := rows.Scan(&inv.ID, &inv.Date, &inv.Subtotal, &inv.CGST, &inv.SGST, &inv.Total,
			&inv.AmountInWords, &inv.BuyerName, &inv.BuyerAddress); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}
