package pricing

import (
	"docecalc/internal/domain/entities"
	"docecalc/internal/domain/money"

	"github.com/shopspring/decimal"
)

var scenarioMarginStep = decimal.NewFromInt(10)

// LineCostEntry is one ingredient line with its derived cost, in input
// order, for breakdown display.
type LineCostEntry struct {
	Name     string
	Quantity decimal.Decimal
	Unit     entities.MeasurementUnit
	Cost     money.Money
}

// Summary is the full derived view of a breakdown.
type Summary struct {
	Lines           []LineCostEntry
	IngredientsCost money.Money
	LaborCost       money.Money
	FixedCosts      money.Money
	TotalCost       money.Money
	MarginPercent   decimal.Decimal
	SuggestedPrice  money.Money
}

// Scenario is a what-if price at an alternate margin.
type Scenario struct {
	Label         string
	MarginPercent decimal.Decimal
	Price         money.Money
}

// Summarize computes every derived cost of a breakdown in one pass.
func Summarize(b entities.RecipeCostBreakdown) (Summary, error) {
	lines := make([]LineCostEntry, 0, len(b.Lines))
	ingredients := money.Zero
	for _, line := range b.Lines {
		cost, err := LineCost(line)
		if err != nil {
			return Summary{}, err
		}
		lines = append(lines, LineCostEntry{
			Name:     line.Name,
			Quantity: line.Quantity,
			Unit:     line.Unit,
			Cost:     cost,
		})
		ingredients = ingredients.Add(cost)
	}

	labor, err := LaborCost(b.LaborHours, b.LaborRate)
	if err != nil {
		return Summary{}, err
	}
	total := ingredients.Add(labor).Add(b.FixedCosts)

	suggested, err := ScenarioPrice(b, b.MarginPercent)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Lines:           lines,
		IngredientsCost: ingredients,
		LaborCost:       labor,
		FixedCosts:      b.FixedCosts,
		TotalCost:       total,
		MarginPercent:   b.MarginPercent,
		SuggestedPrice:  suggested,
	}, nil
}

// Scenarios prices the breakdown at margin-10/margin/margin+10, the
// pessimista/realista/otimista comparison from the calculator screen. The
// pessimistic margin floors at 0%.
func Scenarios(b entities.RecipeCostBreakdown) ([]Scenario, error) {
	pessimistic := b.MarginPercent.Sub(scenarioMarginStep)
	if pessimistic.IsNegative() {
		pessimistic = decimal.Zero
	}

	margins := []struct {
		label  string
		margin decimal.Decimal
	}{
		{label: "pessimista", margin: pessimistic},
		{label: "realista", margin: b.MarginPercent},
		{label: "otimista", margin: b.MarginPercent.Add(scenarioMarginStep)},
	}

	scenarios := make([]Scenario, 0, len(margins))
	for _, m := range margins {
		price, err := ScenarioPrice(b, m.margin)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, Scenario{Label: m.label, MarginPercent: m.margin, Price: price})
	}
	return scenarios, nil
}
