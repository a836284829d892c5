package valueobjects

import "fmt"

// LineItem is an ordered product line as captured at checkout.
type LineItem struct {
	SKU       string
	Name      string
	UnitPrice Money
	Quantity  int
}

func NewLineItem(sku, name string, unitPrice Money, quantity int) (LineItem, error) {
	if sku == "" {
		return LineItem{}, fmt.Errorf("line item sku is required")
	}
	if quantity <= 0 {
		return LineItem{}, fmt.Errorf("line item %s: quantity must be positive", sku)
	}
	if unitPrice.IsNegative() {
		return LineItem{}, fmt.Errorf("line item %s: unit price must not be negative", sku)
	}
	return LineItem{SKU: sku, Name: name, UnitPrice: unitPrice, Quantity: quantity}, nil
}

func (li LineItem) Total() Money {
	return li.UnitPrice.MulInt(li.Quantity)
}
