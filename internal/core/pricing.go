package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// PriceOrderLine turns a (product, quantity) pair into a fully priced,
// tax-split order line:
//
//	total      = rate × quantity
//	cgstAmount = total × cgstPercentage / 100
//	sgstAmount = total × sgstPercentage / 100
//
// each rounded to two decimal places. The stock check is against the stock
// value visible on p; serializing concurrent decrements is the storage
// layer's job (see InvoiceService.CreateInvoice).
//
// Zero-rate products and zero tax percentages are valid and produce zero
// amounts. quantity == stock is valid.
func PriceOrderLine(p Product, quantity int) (OrderLine, error) {
	if quantity < 1 {
		return OrderLine{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if quantity > p.Stock {
		return OrderLine{}, fmt.Errorf("%w: requested %d of %q, %d in stock",
			ErrInsufficientStock, quantity, p.Name, p.Stock)
	}
	if !ValidTaxPercentage(p.CGSTPercentage) || !ValidTaxPercentage(p.SGSTPercentage) {
		return OrderLine{}, fmt.Errorf("%w: product %q has CGST %s%%, SGST %s%%",
			ErrInvalidTaxPercentage, p.Name, p.CGSTPercentage, p.SGSTPercentage)
	}

	total := p.Rate.Mul(decimal.NewFromInt(int64(quantity))).Round(2)

	return OrderLine{
		ProductID:      p.ID,
		Name:           p.Name,
		HSNCode:        p.HSNCode,
		Unit:           p.Unit,
		Quantity:       quantity,
		Rate:           p.Rate,
		Batch:          p.Batch,
		MfgDate:        p.MfgDate,
		ExpDate:        p.ExpDate,
		CGSTPercentage: p.CGSTPercentage,
		SGSTPercentage: p.SGSTPercentage,
		Total:          total,
		CGSTAmount:     total.Mul(p.CGSTPercentage).Div(oneHundred).Round(2),
		SGSTAmount:     total.Mul(p.SGSTPercentage).Div(oneHundred).Round(2),
	}, nil
}
