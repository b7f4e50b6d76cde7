package response

import (
	"time"

	"docecalc/internal/domain/entities"
	"docecalc/internal/usecase"
)

type IngredientLineResponse struct {
	Name      string         `json:"name"`
	Quantity  string         `json:"quantity"`
	Unit      string         `json:"unit"`
	UnitPrice AmountResponse `json:"unit_price"`
}

type RecipeResponse struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Ingredients   []IngredientLineResponse `json:"ingredients"`
	LaborHours    string                   `json:"labor_hours"`
	LaborRate     AmountResponse           `json:"labor_rate"`
	FixedCosts    AmountResponse           `json:"fixed_costs"`
	MarginPercent string                   `json:"margin_percent"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

func FromRecipe(r entities.Recipe) RecipeResponse {
	lines := make([]IngredientLineResponse, 0, len(r.Breakdown.Lines))
	for _, line := range r.Breakdown.Lines {
		lines = append(lines, IngredientLineResponse{
			Name:      line.Name,
			Quantity:  line.Quantity.String(),
			Unit:      string(line.Unit),
			UnitPrice: FromMoney(line.UnitPrice),
		})
	}
	return RecipeResponse{
		ID:            r.ID,
		Name:          r.Name,
		Ingredients:   lines,
		LaborHours:    r.Breakdown.LaborHours.String(),
		LaborRate:     FromMoney(r.Breakdown.LaborRate),
		FixedCosts:    FromMoney(r.Breakdown.FixedCosts),
		MarginPercent: r.Breakdown.MarginPercent.String(),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func FromRecipes(recipes []entities.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, FromRecipe(r))
	}
	return out
}

// RecipePriceResponse joins the recipe with its derived cost view.
type RecipePriceResponse struct {
	Recipe RecipeResponse      `json:"recipe"`
	Price  CostSummaryResponse `json:"price"`
}

func FromRecipePrice(p usecase.RecipePrice) RecipePriceResponse {
	return RecipePriceResponse{
		Recipe: FromRecipe(p.Recipe),
		Price:  FromSummary(p.Summary, p.Scenarios),
	}
}
