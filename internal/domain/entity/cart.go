package entity

import (
	"github.com/shopspring/decimal"
)

// CartItem is one priced line of the cart. UnitPrice is fixed at add time
// from the base price and the customization modifiers; merging a later add
// with an equivalent customization set only increments Quantity, it never
// reprices the line.
type CartItem struct {
	ProductID      string          `json:"productId"`
	Name           string          `json:"name"`
	ImageRef       string          `json:"image,omitempty"`
	BasePrice      decimal.Decimal `json:"basePrice"`
	UnitPrice      decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	Customizations []Customization `json:"customizations"`
}

// LineTotal returns UnitPrice multiplied by Quantity.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// MergeableWith reports whether an add for the given product and
// customization set must be combined into this line instead of appended
// as a new one.
func (i *CartItem) MergeableWith(productID string, customizations []Customization) bool {
	return i.ProductID == productID && SameCustomizationSet(i.Customizations, customizations)
}

// Cart is the ordered list of line items, insertion order preserved for
// display. It is owned exclusively by the cart store; totals are derived,
// never stored.
type Cart struct {
	Items []CartItem `json:"items"`
}

// ItemCount returns the sum of all line quantities.
func (c *Cart) ItemCount() int {
	var count int
	for i := range c.Items {
		count += c.Items[i].Quantity
	}

	return count
}

// Subtotal returns the sum of all line totals.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for i := range c.Items {
		subtotal = subtotal.Add(c.Items[i].LineTotal())
	}

	return subtotal
}

// FindMergeable returns the index of the first line an add for the given
// product and customization set merges into, or -1 when a new line is needed.
func (c *Cart) FindMergeable(productID string, customizations []Customization) int {
	for i := range c.Items {
		if c.Items[i].MergeableWith(productID, customizations) {
			return i
		}
	}

	return -1
}
