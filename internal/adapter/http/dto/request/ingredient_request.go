package request

import (
	"fmt"
	"strings"

	"docecalc/internal/domain/entities"
	"docecalc/internal/domain/money"
)

// IngredientRequest creates or updates a catalog ingredient.
type IngredientRequest struct {
	Name      string `json:"name" binding:"required"`
	Unit      string `json:"unit" binding:"required"`
	UnitPrice string `json:"unit_price" binding:"required"`
}

func (r IngredientRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r IngredientRequest) ResolveUnit() (entities.MeasurementUnit, error) {
	unit := entities.MeasurementUnit(strings.TrimSpace(r.Unit))
	if !unit.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, r.Unit)
	}
	return unit, nil
}

func (r IngredientRequest) ResolveUnitPrice() (money.Money, error) {
	return requiredAmount("unit_price", r.UnitPrice)
}
