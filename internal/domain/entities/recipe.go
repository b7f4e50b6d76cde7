package entities

import (
	"time"

	"docecalc/internal/domain/money"

	"github.com/shopspring/decimal"
)

// IngredientLine is one ingredient usage inside a recipe or calculation.
// Quantity is expressed in Unit; the line cost is always derived, never
// stored, so it cannot drift from quantity and price.
type IngredientLine struct {
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      MeasurementUnit `json:"unit"`
	UnitPrice money.Money     `json:"unit_price"`
}

// RecipeCostBreakdown carries every input the cost aggregation needs.
// Line order is preserved for display; it never affects the totals.
type RecipeCostBreakdown struct {
	Lines         []IngredientLine `json:"lines"`
	LaborHours    decimal.Decimal  `json:"labor_hours"`
	LaborRate     money.Money      `json:"labor_rate"`
	FixedCosts    money.Money      `json:"fixed_costs"`
	MarginPercent decimal.Decimal  `json:"margin_percent"`
}

// Recipe is a priced confectionery recipe owned by a single user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Derived costs (ingredients, labor, total, suggested price) are computed
// from Breakdown on read and never persisted.
type Recipe struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	Name      string              `json:"name"`
	Breakdown RecipeCostBreakdown `json:"breakdown"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
