package entity

import (
	"github.com/shopspring/decimal"
)

// IngredientOption is one toggleable customization offered by the catalog
// for a product.
type IngredientOption struct {
	IngredientID  string              `json:"ingredientId"`
	Action        CustomizationAction `json:"action"`
	PriceModifier decimal.Decimal     `json:"priceModifier"`
	Name          string              `json:"name"`
	Available     bool                `json:"isAvailable"`
}

// Product is a catalog entry. The catalog is the pricing authority for
// base prices and modifiers; the cart only snapshots them at add time.
type Product struct {
	ID                      string             `json:"id"`
	Name                    string             `json:"name"`
	Description             string             `json:"description,omitempty"`
	BasePrice               decimal.Decimal    `json:"basePrice"`
	ImageURL                string             `json:"imageUrl,omitempty"`
	CustomizableIngredients []IngredientOption `json:"customizableIngredients,omitempty"`
}

// ResolveCustomization returns the catalog's definition of the option
// matching the ingredient and action, if the product offers it.
func (p *Product) ResolveCustomization(ingredientID string, action CustomizationAction) (*IngredientOption, bool) {
	for i := range p.CustomizableIngredients {
		option := &p.CustomizableIngredients[i]
		if option.IngredientID == ingredientID && option.Action == action {
			return option, true
		}
	}

	return nil, false
}
