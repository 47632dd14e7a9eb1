package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSameCustomizationSet_OrderIndependent(t *testing.T) {
	a := []Customization{
		{IngredientID: "olives", Action: ActionAdd, PriceModifier: decimal.NewFromFloat(0.5)},
		{IngredientID: "cheese", Action: ActionExtra, PriceModifier: decimal.NewFromFloat(2)},
	}
	b := []Customization{
		{IngredientID: "cheese", Action: ActionExtra, PriceModifier: decimal.NewFromFloat(2)},
		{IngredientID: "olives", Action: ActionAdd, PriceModifier: decimal.NewFromFloat(0.5)},
	}

	assert.True(t, SameCustomizationSet(a, b))
	assert.True(t, SameCustomizationSet(b, a))
}

func TestSameCustomizationSet_ActionMatters(t *testing.T) {
	a := []Customization{{IngredientID: "olives", Action: ActionAdd}}
	b := []Customization{{IngredientID: "olives", Action: ActionRemove}}

	assert.False(t, SameCustomizationSet(a, b))
}

func TestSameCustomizationSet_DifferentLengths(t *testing.T) {
	a := []Customization{{IngredientID: "olives", Action: ActionAdd}}

	assert.False(t, SameCustomizationSet(a, nil))
	assert.True(t, SameCustomizationSet(nil, nil))
}

func TestSameCustomizationSet_DuplicatesCounted(t *testing.T) {
	a := []Customization{
		{IngredientID: "cheese", Action: ActionExtra},
		{IngredientID: "cheese", Action: ActionExtra},
	}
	b := []Customization{
		{IngredientID: "cheese", Action: ActionExtra},
	}

	assert.False(t, SameCustomizationSet(a, b))
}

func TestCustomizationAction_IsValid(t *testing.T) {
	assert.True(t, ActionAdd.IsValid())
	assert.True(t, ActionRemove.IsValid())
	assert.True(t, ActionExtra.IsValid())
	assert.False(t, CustomizationAction("DOUBLE").IsValid())
}
