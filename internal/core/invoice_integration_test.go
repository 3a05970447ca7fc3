package core_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"gst-invoicing/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func setupTestDB(t *testing.T) (*pgxpool.Pool, context.Context) {
	t.Helper()
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database to avoid wiping the live app database.
	// Set TEST_DATABASE_URL in your .env or environment to run integration tests.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	_, err = pool.Exec(ctx, `
		TRUNCATE TABLE invoice_items, invoices, products, users RESTART IDENTITY CASCADE;

		INSERT INTO products (id, name, hsn_code, unit, rate, stock, batch, mfg_date, exp_date, cgst_percentage, sgst_percentage) VALUES
		(1, 'Paracetamol 500mg', '3004', 'strip',  35.50, 100, 'PCM-01', '2025-06-01', '2027-06-01', 6, 6),
		(2, 'Cough Syrup 100ml', '3004', 'bottle', 88.00,  20, 'CS-07',  '2025-03-15', '2026-09-15', 9, 9),
		(3, 'Surgical Gloves',   '4015', 'box',   200.00,  10, '',       NULL,         NULL,         9, 9);

		SELECT setval('products_id_seq', 100);
	`)
	if err != nil {
		t.Fatalf("Failed to seed test data: %v", err)
	}

	return pool, ctx
}

func TestInvoiceService_CreateAndReadBack(t *testing.T) {
	pool, ctx := setupTestDB(t)
	defer pool.Close()

	svc := core.NewInvoiceService(pool)

	created, err := svc.CreateInvoice(ctx, []core.InvoiceItemInput{
		{ProductID: 3, Quantity: 3},
		{ProductID: 1, Quantity: 2},
	}, core.BuyerDetails{Name: "Sri Medicals", Address: "Rajahmundry"})
	if err != nil {
		t.Fatalf("CreateInvoice failed: %v", err)
	}

	// 3 × 200.00 = 600.00 @ 9+9%, plus 2 × 35.50 = 71.00 @ 6+6%.
	if got := created.Subtotal.StringFixed(2); got != "671.00" {
		t.Errorf("subtotal = %s, want 671.00", got)
	}
	if got := created.CGST.StringFixed(2); got != "58.26" {
		t.Errorf("cgst = %s, want 58.26", got)
	}
	if got := created.SGST.StringFixed(2); got != "58.26" {
		t.Errorf("sgst = %s, want 58.26", got)
	}
	if got := created.Total.StringFixed(2); got != "787.52" {
		t.Errorf("total = %s, want 787.52", got)
	}
	if created.AmountInWords != "Seven Hundred Eighty Eight Rupees Only" {
		t.Errorf("amount in words = %q", created.AmountInWords)
	}

	// Stock decremented atomically with the invoice.
	var gloveStock, pcmStock int
	if err := pool.QueryRow(ctx, "SELECT stock FROM products WHERE id = 3").Scan(&gloveStock); err != nil {
		t.Fatalf("stock query failed: %v", err)
	}
	if err := pool.QueryRow(ctx, "SELECT stock FROM products WHERE id = 1").Scan(&pcmStock); err != nil {
		t.Fatalf("stock query failed: %v", err)
	}
	if gloveStock != 7 || pcmStock != 98 {
		t.Errorf("stock after invoice = %d/%d, want 7/98", gloveStock, pcmStock)
	}

	// Read-back reproduces the persisted figures and line order exactly.
	fetched, err := svc.GetInvoice(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetInvoice failed: %v", err)
	}
	if !fetched.Subtotal.Equal(created.Subtotal) || !fetched.CGST.Equal(created.CGST) ||
		!fetched.SGST.Equal(created.SGST) || !fetched.Total.Equal(created.Total) {
		t.Errorf("read-back sums differ: %+v vs %+v", fetched, created)
	}
	if fetched.AmountInWords != created.AmountInWords {
		t.Errorf("read-back words differ: %q vs %q", fetched.AmountInWords, created.AmountInWords)
	}
	if len(fetched.Items) != 2 || fetched.Items[0].ProductID != 3 || fetched.Items[1].ProductID != 1 {
		t.Errorf("read-back line order not preserved: %+v", fetched.Items)
	}
	if fetched.Items[0].Batch != "" || fetched.Items[1].Batch != "PCM-01" {
		t.Errorf("read-back batches wrong: %+v", fetched.Items)
	}

	invoices, err := svc.GetInvoices(ctx)
	if err != nil {
		t.Fatalf("GetInvoices failed: %v", err)
	}
	if len(invoices) != 1 || invoices[0].ID != created.ID {
		t.Errorf("expected one listed invoice %s, got %+v", created.ID, invoices)
	}
}

func TestInvoiceService_InsufficientStockRollsBack(t *testing.T) {
	pool, ctx := setupTestDB(t)
	defer pool.Close()

	svc := core.NewInvoiceService(pool)

	_, err := svc.CreateInvoice(ctx, []core.InvoiceItemInput{
		{ProductID: 1, Quantity: 2},
		{ProductID: 3, Quantity: 11}, // stock is 10
	}, core.BuyerDetails{})
	if !errors.Is(err, core.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	// Nothing may be written: no invoice rows, no stock change on line 1.
	var invoiceCount, pcmStock int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM invoices").Scan(&invoiceCount); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if err := pool.QueryRow(ctx, "SELECT stock FROM products WHERE id = 1").Scan(&pcmStock); err != nil {
		t.Fatalf("stock query failed: %v", err)
	}
	if invoiceCount != 0 {
		t.Errorf("expected no persisted invoices, got %d", invoiceCount)
	}
	if pcmStock != 100 {
		t.Errorf("expected stock untouched at 100, got %d", pcmStock)
	}
}

func TestInvoiceService_EmptyAndUnknown(t *testing.T) {
	pool, ctx := setupTestDB(t)
	defer pool.Close()

	svc := core.NewInvoiceService(pool)

	if _, err := svc.CreateInvoice(ctx, nil, core.BuyerDetails{}); !errors.Is(err, core.ErrEmptyOrder) {
		t.Errorf("expected ErrEmptyOrder, got %v", err)
	}
	if _, err := svc.CreateInvoice(ctx, []core.InvoiceItemInput{{ProductID: 999, Quantity: 1}}, core.BuyerDetails{}); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown product, got %v", err)
	}
	if _, err := svc.GetInvoice(ctx, "no-such-invoice"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown invoice, got %v", err)
	}
}
