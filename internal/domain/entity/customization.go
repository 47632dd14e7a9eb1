// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/shopspring/decimal"
)

// CustomizationAction represents the kind of deviation from a product's default recipe.
type CustomizationAction string

const (
	// ActionAdd adds an ingredient that is not part of the default recipe.
	ActionAdd CustomizationAction = "ADD"
	// ActionRemove removes a default ingredient.
	ActionRemove CustomizationAction = "REMOVE"
	// ActionExtra doubles up on an ingredient already in the recipe.
	ActionExtra CustomizationAction = "EXTRA"
)

// String returns the string representation of the CustomizationAction.
func (a CustomizationAction) String() string {
	return string(a)
}

// IsValid checks if the CustomizationAction is a valid value.
func (a CustomizationAction) IsValid() bool {
	switch a {
	case ActionAdd, ActionRemove, ActionExtra:
		return true
	default:
		return false
	}
}

// Customization is a single ingredient-level deviation from a product's
// default recipe, with its own price delta. It is immutable once attached
// to a cart item; the catalog bakes the modifier in (REMOVE carries a zero
// or negative modifier, it is never recomputed here).
type Customization struct {
	IngredientID  string              `json:"ingredientId"`
	Action        CustomizationAction `json:"action"`
	PriceModifier decimal.Decimal     `json:"priceModifier"`
	Name          string              `json:"name"`
}

// customizationKey identifies a customization for set comparison.
// The price modifier and display name are derived from the catalog and
// carry no identity of their own.
type customizationKey struct {
	ingredientID string
	action       CustomizationAction
}

// SameCustomizationSet reports whether two customization lists are equal as
// sets over (ingredientId, action) pairs, independent of the order the user
// toggled them in.
func SameCustomizationSet(a, b []Customization) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[customizationKey]int, len(a))
	for _, c := range a {
		counts[customizationKey{c.IngredientID, c.Action}]++
	}
	for _, c := range b {
		key := customizationKey{c.IngredientID, c.Action}
		counts[key]--
		if counts[key] < 0 {
			return false
		}
	}

	return true
}
