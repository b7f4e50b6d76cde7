package response

import (
	"docecalc/internal/domain/pricing"
)

type LineCostResponse struct {
	Name     string         `json:"name"`
	Quantity string         `json:"quantity"`
	Unit     string         `json:"unit"`
	Cost     AmountResponse `json:"cost"`
}

type ScenarioResponse struct {
	Label         string         `json:"label"`
	MarginPercent string         `json:"margin_percent"`
	Price         AmountResponse `json:"price"`
}

// CostSummaryResponse is the derived cost view returned by the calculator
// and recipe price endpoints.
type CostSummaryResponse struct {
	Lines           []LineCostResponse `json:"lines"`
	IngredientsCost AmountResponse     `json:"ingredients_cost"`
	LaborCost       AmountResponse     `json:"labor_cost"`
	FixedCosts      AmountResponse     `json:"fixed_costs"`
	TotalCost       AmountResponse     `json:"total_cost"`
	MarginPercent   string             `json:"margin_percent"`
	SuggestedPrice  AmountResponse     `json:"suggested_price"`
	Scenarios       []ScenarioResponse `json:"scenarios,omitempty"`
}

func FromSummary(s pricing.Summary, scenarios []pricing.Scenario) CostSummaryResponse {
	lines := make([]LineCostResponse, 0, len(s.Lines))
	for _, line := range s.Lines {
		lines = append(lines, LineCostResponse{
			Name:     line.Name,
			Quantity: line.Quantity.String(),
			Unit:     string(line.Unit),
			Cost:     FromMoney(line.Cost),
		})
	}

	scenarioResponses := make([]ScenarioResponse, 0, len(scenarios))
	for _, sc := range scenarios {
		scenarioResponses = append(scenarioResponses, ScenarioResponse{
			Label:         sc.Label,
			MarginPercent: sc.MarginPercent.String(),
			Price:         FromMoney(sc.Price),
		})
	}

	return CostSummaryResponse{
		Lines:           lines,
		IngredientsCost: FromMoney(s.IngredientsCost),
		LaborCost:       FromMoney(s.LaborCost),
		FixedCosts:      FromMoney(s.FixedCosts),
		TotalCost:       FromMoney(s.TotalCost),
		MarginPercent:   s.MarginPercent.String(),
		SuggestedPrice:  FromMoney(s.SuggestedPrice),
		Scenarios:       scenarioResponses,
	}
}
