package core_test

import (
	"errors"
	"testing"

	"gst-invoicing/internal/core"

	"github.com/shopspring/decimal"
)

func TestReportingService_SalesAndTopProducts(t *testing.T) {
	pool, ctx := setupTestDB(t)
	defer pool.Close()

	invoices := core.NewInvoiceService(pool)
	reporting := core.NewReportingService(pool)

	// Two invoices on the same day; quantities make product 1 the top seller.
	first, err := invoices.CreateInvoice(ctx, []core.InvoiceItemInput{
		{ProductID: 1, Quantity: 5},
		{ProductID: 2, Quantity: 2},
	}, core.BuyerDetails{Name: "Counter Sale"})
	if err != nil {
		t.Fatalf("CreateInvoice failed: %v", err)
	}
	second, err := invoices.CreateInvoice(ctx, []core.InvoiceItemInput{
		{ProductID: 1, Quantity: 4},
	}, core.BuyerDetails{Name: "Counter Sale"})
	if err != nil {
		t.Fatalf("CreateInvoice failed: %v", err)
	}

	sales, err := reporting.GetDailySales(ctx)
	if err != nil {
		t.Fatalf("GetDailySales failed: %v", err)
	}
	if len(sales) != 1 {
		t.Fatalf("expected one sales day, got %d", len(sales))
	}
	if sales[0].InvoiceCount != 2 {
		t.Errorf("invoice count = %d, want 2", sales[0].InvoiceCount)
	}
	wantTotal := first.Total.Add(second.Total)
	if !sales[0].Total.Equal(wantTotal) {
		t.Errorf("daily total = %s, want %s", sales[0].Total, wantTotal)
	}

	top, err := reporting.GetTopProducts(ctx, 0)
	if err != nil {
		t.Fatalf("GetTopProducts failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected two ranked products, got %d", len(top))
	}
	if top[0].ProductID != 1 || top[0].QuantitySold != 9 {
		t.Errorf("top product = %+v, want product 1 with 9 sold", top[0])
	}
	if top[1].ProductID != 2 || top[1].QuantitySold != 2 {
		t.Errorf("second product = %+v, want product 2 with 2 sold", top[1])
	}
	// Revenue is the sum of persisted pre-tax line totals.
	wantRevenue := decimal.RequireFromString("35.50").Mul(decimal.NewFromInt(9)).Round(2)
	if !top[0].Revenue.Equal(wantRevenue) {
		t.Errorf("top product revenue = %s, want %s", top[0].Revenue, wantRevenue)
	}

	if _, err := reporting.GetTopProducts(ctx, 1); err != nil {
		t.Fatalf("GetTopProducts with limit failed: %v", err)
	}
}

func TestReportingService_EmptyDatabase(t *testing.T) {
	pool, ctx := setupTestDB(t)
	defer pool.Close()

	reporting := core.NewReportingService(pool)

	sales, err := reporting.GetDailySales(ctx)
	if err != nil {
		t.Fatalf("GetDailySales failed: %v", err)
	}
	if len(sales) != 0 {
		t.Errorf("expected no sales days, got %+v", sales)
	}

	top, err := reporting.GetTopProducts(ctx, 5)
	if err != nil {
		t.Fatalf("GetTopProducts failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("expected no ranked products, got %+v", top)
	}
}

func TestUserService_RegisterAndAuthenticate(t *testing.T) {
	pool, ctx := setupTestDB(t)
	defer pool.Close()

	users := core.NewUserService(pool)

	created, err := users.CreateUser(ctx, "  Owner@Shop.example  ", "letmein-please")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if created.Email != "owner@shop.example" {
		t.Errorf("email not normalized: %q", created.Email)
	}
	if created.PasswordHash == "letmein-please" {
		t.Error("password stored in plain text")
	}

	if _, err := users.CreateUser(ctx, "owner@shop.example", "another-pass"); err == nil {
		t.Error("expected duplicate email to be rejected")
	}
	if _, err := users.CreateUser(ctx, "short@shop.example", "short"); err == nil {
		t.Error("expected short password to be rejected")
	}

	authed, err := users.Authenticate(ctx, "OWNER@shop.example", "letmein-please")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if authed.ID != created.ID {
		t.Errorf("authenticated wrong user: %d vs %d", authed.ID, created.ID)
	}

	if _, err := users.Authenticate(ctx, "owner@shop.example", "wrong-pass"); !errors.Is(err, core.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := users.Authenticate(ctx, "nobody@shop.example", "letmein-please"); !errors.Is(err, core.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	fetched, err := users.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched.Email != created.Email {
		t.Errorf("fetched wrong user: %q", fetched.Email)
	}
	if _, err := users.GetByID(ctx, 999); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
