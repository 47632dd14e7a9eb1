package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_ResolveCustomization(t *testing.T) {
	product := &Product{
		ID:        "margherita",
		BasePrice: decimal.NewFromFloat(12.99),
		CustomizableIngredients: []IngredientOption{
			{IngredientID: "olives", Action: ActionAdd, PriceModifier: decimal.NewFromFloat(0.50), Name: "Olives", Available: true},
			{IngredientID: "basil", Action: ActionRemove, PriceModifier: decimal.Zero, Name: "Basil", Available: true},
		},
	}

	option, ok := product.ResolveCustomization("olives", ActionAdd)
	require.True(t, ok)
	assert.Equal(t, "Olives", option.Name)
	assert.True(t, option.PriceModifier.Equal(decimal.NewFromFloat(0.50)))

	// The same ingredient under a different action is a different option.
	_, ok = product.ResolveCustomization("olives", ActionRemove)
	assert.False(t, ok)

	_, ok = product.ResolveCustomization("pineapple", ActionAdd)
	assert.False(t, ok)
}
