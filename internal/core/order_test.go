package core_test

import (
	"errors"
	"testing"

	"gst-invoicing/internal/core"
)

func TestOrder_AddLinePreservesOrderAndKeepsDuplicates(t *testing.T) {
	var order core.Order

	a := product("100", 10, "9", "9")
	a.ID, a.Name = 1, "Widget A"
	b := product("250", 10, "6", "6")
	b.ID, b.Name = 2, "Widget B"

	for _, step := range []struct {
		p   core.Product
		qty int
	}{{a, 2}, {b, 1}, {a, 3}} {
		if _, err := order.AddLine(step.p, step.qty); err != nil {
			t.Fatalf("AddLine failed: %v", err)
		}
	}

	lines := order.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	// Same product twice stays as two separate lines in addition order.
	wantIDs := []int{1, 2, 1}
	for i, want := range wantIDs {
		if lines[i].ProductID != want {
			t.Errorf("line %d product = %d, want %d", i, lines[i].ProductID, want)
		}
	}
}

func TestOrder_AddLineRejectsWithoutMutating(t *testing.T) {
	var order core.Order
	p := product("100", 2, "9", "9")

	if _, err := order.AddLine(p, 5); !errors.Is(err, core.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if got := len(order.Lines()); got != 0 {
		t.Errorf("failed add must not grow the order, got %d lines", got)
	}
}

func TestOrder_RemoveLine(t *testing.T) {
	var order core.Order
	for i := 1; i <= 3; i++ {
		p := product("100", 10, "9", "9")
		p.ID = i
		if _, err := order.AddLine(p, 1); err != nil {
			t.Fatalf("AddLine failed: %v", err)
		}
	}

	if err := order.RemoveLine(1); err != nil {
		t.Fatalf("RemoveLine failed: %v", err)
	}
	lines := order.Lines()
	if len(lines) != 2 || lines[0].ProductID != 1 || lines[1].ProductID != 3 {
		t.Errorf("unexpected lines after removal: %+v", lines)
	}

	if err := order.RemoveLine(5); err == nil {
		t.Error("expected error removing out-of-range index")
	}
	if err := order.RemoveLine(-1); err == nil {
		t.Error("expected error removing negative index")
	}
}

func TestOrder_LinesReturnsCopy(t *testing.T) {
	var order core.Order
	if _, err := order.AddLine(product("100", 10, "9", "9"), 1); err != nil {
		t.Fatalf("AddLine failed: %v", err)
	}

	lines := order.Lines()
	lines[0].Quantity = 999

	if order.Lines()[0].Quantity != 1 {
		t.Error("mutating the returned slice must not affect the order")
	}
}
