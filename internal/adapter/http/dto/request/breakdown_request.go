package request

import (
	"errors"
	"fmt"

	"docecalc/internal/domain/entities"
	"docecalc/internal/domain/money"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidUnit     = errors.New("invalid unit")
)

// IngredientLineRequest carries one ingredient usage with numeric fields as
// the user typed them ("1.234,56"); normalization happens in ToBreakdown.
type IngredientLineRequest struct {
	Name      string `json:"name" binding:"required"`
	Quantity  string `json:"quantity" binding:"required"`
	Unit      string `json:"unit" binding:"required"`
	UnitPrice string `json:"unit_price" binding:"required"`
}

// BreakdownRequest is the shared cost-input payload of the calculator and
// recipe endpoints.
//
// The optional fields (labor, fixed costs, margin) coerce empty text to
// zero here, at the boundary; the pricing core itself never does that.
type BreakdownRequest struct {
	Ingredients   []IngredientLineRequest `json:"ingredients" binding:"required"`
	LaborHours    string                  `json:"labor_hours"`
	LaborRate     string                  `json:"labor_rate"`
	FixedCosts    string                  `json:"fixed_costs"`
	MarginPercent string                  `json:"margin_percent"`
}

func (r BreakdownRequest) ToBreakdown() (entities.RecipeCostBreakdown, error) {
	lines := make([]entities.IngredientLine, 0, len(r.Ingredients))
	for _, lr := range r.Ingredients {
		unit := entities.MeasurementUnit(lr.Unit)
		if !unit.Valid() {
			return entities.RecipeCostBreakdown{}, fmt.Errorf("%w: %q", ErrInvalidUnit, lr.Unit)
		}
		quantity, err := requiredDecimal("quantity", lr.Quantity)
		if err != nil {
			return entities.RecipeCostBreakdown{}, err
		}
		unitPrice, err := requiredAmount("unit_price", lr.UnitPrice)
		if err != nil {
			return entities.RecipeCostBreakdown{}, err
		}
		lines = append(lines, entities.IngredientLine{
			Name:      lr.Name,
			Quantity:  quantity,
			Unit:      unit,
			UnitPrice: unitPrice,
		})
	}

	laborHours, err := optionalDecimal("labor_hours", r.LaborHours)
	if err != nil {
		return entities.RecipeCostBreakdown{}, err
	}
	laborRate, err := optionalAmount("labor_rate", r.LaborRate)
	if err != nil {
		return entities.RecipeCostBreakdown{}, err
	}
	fixedCosts, err := optionalAmount("fixed_costs", r.FixedCosts)
	if err != nil {
		return entities.RecipeCostBreakdown{}, err
	}
	marginPercent, err := optionalDecimal("margin_percent", r.MarginPercent)
	if err != nil {
		return entities.RecipeCostBreakdown{}, err
	}

	return entities.RecipeCostBreakdown{
		Lines:         lines,
		LaborHours:    laborHours,
		LaborRate:     laborRate,
		FixedCosts:    fixedCosts,
		MarginPercent: marginPercent,
	}, nil
}

func requiredAmount(field, text string) (money.Money, error) {
	m := money.ParseAmount(text)
	if m == nil {
		return money.Money{}, fmt.Errorf("%w: %s", ErrInvalidAmount, field)
	}
	return *m, nil
}

// optionalAmount coerces "not yet entered" to zero. Non-empty garbage is
// still an error.
func optionalAmount(field, text string) (money.Money, error) {
	if text == "" {
		return money.Zero, nil
	}
	return requiredAmount(field, text)
}

func requiredDecimal(field, text string) (decimal.Decimal, error) {
	d := money.ParseDecimal(text)
	if d == nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrInvalidQuantity, field)
	}
	return *d, nil
}

func optionalDecimal(field, text string) (decimal.Decimal, error) {
	if text == "" {
		return decimal.Zero, nil
	}
	return requiredDecimal(field, text)
}
