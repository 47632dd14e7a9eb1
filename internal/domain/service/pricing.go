// Package service defines interfaces for core, stateless domain logic and
// the ports to external collaborators.
package service

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// UnitPrice returns the base price plus every customization's price
// modifier. Pure and total; REMOVE modifiers arrive already baked in by
// the catalog and are summed like any other.
func UnitPrice(basePrice decimal.Decimal, customizations []entity.Customization) decimal.Decimal {
	unit := basePrice
	for i := range customizations {
		unit = unit.Add(customizations[i].PriceModifier)
	}

	return unit
}

// LineTotal returns unitPrice multiplied by quantity. Rounding to two
// decimals happens at display time only, never during accumulation.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
