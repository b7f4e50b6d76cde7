// Package pricing computes derived costs and suggested prices from a
// recipe cost breakdown. Every function is pure: inputs are never mutated.
//
// Negative inputs are contract violations and fail with
// entities.ErrInvalidInput; they are never silently clamped to zero. The
// caller decides whether to coerce unset form fields before calling.
package pricing

import (
	"fmt"

	"docecalc/internal/domain/entities"
	"docecalc/internal/domain/money"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// LineCost is quantity × unit price, rounded to 2 decimals after the
// multiplication (not before).
func LineCost(line entities.IngredientLine) (money.Money, error) {
	if line.Quantity.IsNegative() {
		return money.Money{}, fmt.Errorf("%w: negative quantity for %q", entities.ErrInvalidInput, line.Name)
	}
	return line.UnitPrice.Mul(line.Quantity)
}

// IngredientsCost sums the line costs. The sum is order-independent; line
// order is kept only for breakdown display.
func IngredientsCost(lines []entities.IngredientLine) (money.Money, error) {
	total := money.Zero
	for _, line := range lines {
		cost, err := LineCost(line)
		if err != nil {
			return money.Money{}, err
		}
		total = total.Add(cost)
	}
	return total, nil
}

// LaborCost is hours × hourly rate, same rounding rule as LineCost.
func LaborCost(hours decimal.Decimal, rate money.Money) (money.Money, error) {
	if hours.IsNegative() {
		return money.Money{}, fmt.Errorf("%w: negative labor hours", entities.ErrInvalidInput)
	}
	return rate.Mul(hours)
}

// TotalCost is ingredients + labor + fixed costs.
func TotalCost(b entities.RecipeCostBreakdown) (money.Money, error) {
	ingredients, err := IngredientsCost(b.Lines)
	if err != nil {
		return money.Money{}, err
	}
	labor, err := LaborCost(b.LaborHours, b.LaborRate)
	if err != nil {
		return money.Money{}, err
	}
	return ingredients.Add(labor).Add(b.FixedCosts), nil
}

// SuggestedPrice is total cost × (1 + margin/100), rounded once at the
// final step. With margin >= 0 it can never fall below the total cost.
func SuggestedPrice(b entities.RecipeCostBreakdown) (money.Money, error) {
	return ScenarioPrice(b, b.MarginPercent)
}

// ScenarioPrice recomputes the suggested price with an alternate margin
// without touching the breakdown. Used for pessimistic/realistic/optimistic
// comparisons.
func ScenarioPrice(b entities.RecipeCostBreakdown, marginPercent decimal.Decimal) (money.Money, error) {
	if marginPercent.IsNegative() {
		return money.Money{}, fmt.Errorf("%w: negative margin percent", entities.ErrInvalidInput)
	}
	total, err := TotalCost(b)
	if err != nil {
		return money.Money{}, err
	}
	factor := decimal.NewFromInt(1).Add(marginPercent.Div(oneHundred))
	return total.Mul(factor)
}
