package pricing_test

import (
	"errors"
	"testing"

	"docecalc/internal/domain/entities"
	"docecalc/internal/domain/money"
	"docecalc/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// brigadeiroBreakdown is the worked example used across the pricing tests:
// chocolate 200g @ 0,20 + condensed milk 1 un @ 4,50 = 44,50 ingredients;
// 1,5h @ 15,00 = 22,50 labor; 5,00 fixed; total 72,00; 40% margin -> 100,80.
func brigadeiroBreakdown() entities.RecipeCostBreakdown {
	return entities.RecipeCostBreakdown{
		Lines: []entities.IngredientLine{
			{Name: "chocolate em pó", Quantity: decimal.NewFromInt(200), Unit: entities.UnitGram, UnitPrice: money.MustFromString("0.20")},
			{Name: "leite condensado", Quantity: decimal.NewFromInt(1), Unit: entities.UnitPiece, UnitPrice: money.MustFromString("4.50")},
		},
		LaborHours:    decimal.RequireFromString("1.5"),
		LaborRate:     money.MustFromString("15.00"),
		FixedCosts:    money.MustFromString("5.00"),
		MarginPercent: decimal.NewFromInt(40),
	}
}

func TestLineCost(t *testing.T) {
	t.Run("rounds after the multiplication", func(t *testing.T) {
		line := entities.IngredientLine{
			Name:      "fermento",
			Quantity:  decimal.RequireFromString("3.5"),
			Unit:      entities.UnitGram,
			UnitPrice: money.MustFromString("0.03"),
		}
		// 3.5 * 0.03 = 0.105 -> 0.11 (half away from zero)
		cost, err := pricing.LineCost(line)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cost.String() != "0.11" {
			t.Fatalf("expected 0.11, got %s", cost.String())
		}
	})

	t.Run("negative quantity fails", func(t *testing.T) {
		line := entities.IngredientLine{Name: "açúcar", Quantity: decimal.NewFromInt(-1), UnitPrice: money.Zero}
		if _, err := pricing.LineCost(line); !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestIngredientsCost(t *testing.T) {
	b := brigadeiroBreakdown()

	cost, err := pricing.IngredientsCost(b.Lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost.String() != "44.50" {
		t.Fatalf("expected 44.50, got %s", cost.String())
	}

	t.Run("order independent", func(t *testing.T) {
		reversed := []entities.IngredientLine{b.Lines[1], b.Lines[0]}
		swapped, err := pricing.IngredientsCost(reversed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !swapped.Equal(cost) {
			t.Fatalf("permutation changed the sum: %s vs %s", swapped, cost)
		}
	})
}

func TestTotalCostAndSuggestedPrice(t *testing.T) {
	b := brigadeiroBreakdown()

	total, err := pricing.TotalCost(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total.String() != "72.00" {
		t.Fatalf("expected 72.00, got %s", total.String())
	}

	suggested, err := pricing.SuggestedPrice(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if suggested.String() != "100.80" {
		t.Fatalf("expected 100.80, got %s", suggested.String())
	}

	if suggested.LessThan(total) {
		t.Fatal("suggested price below total cost")
	}
}

func TestSuggestedPrice_NegativeInputsFail(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entities.RecipeCostBreakdown)
	}{
		{name: "negative labor hours", mutate: func(b *entities.RecipeCostBreakdown) {
			b.LaborHours = decimal.RequireFromString("-0.5")
		}},
		{name: "negative margin", mutate: func(b *entities.RecipeCostBreakdown) {
			b.MarginPercent = decimal.NewFromInt(-10)
		}},
		{name: "negative line quantity", mutate: func(b *entities.RecipeCostBreakdown) {
			b.Lines[0].Quantity = decimal.NewFromInt(-200)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := brigadeiroBreakdown()
			tc.mutate(&b)
			if _, err := pricing.SuggestedPrice(b); !errors.Is(err, entities.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestScenarioPrice(t *testing.T) {
	b := brigadeiroBreakdown()

	t.Run("does not touch the breakdown", func(t *testing.T) {
		price, err := pricing.ScenarioPrice(b, decimal.NewFromInt(50))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if price.String() != "108.00" {
			t.Fatalf("expected 108.00, got %s", price.String())
		}
		if !b.MarginPercent.Equal(decimal.NewFromInt(40)) {
			t.Fatalf("breakdown margin mutated: %s", b.MarginPercent)
		}
	})

	t.Run("margin is monotonic", func(t *testing.T) {
		previous := money.Zero
		for _, margin := range []int64{0, 10, 25, 40, 80, 150} {
			price, err := pricing.ScenarioPrice(b, decimal.NewFromInt(margin))
			if err != nil {
				t.Fatalf("margin %d: unexpected error: %v", margin, err)
			}
			if price.LessThan(previous) {
				t.Fatalf("margin %d: price %s below previous %s", margin, price, previous)
			}
			previous = price
		}
	})

	t.Run("zero margin equals total cost", func(t *testing.T) {
		price, err := pricing.ScenarioPrice(b, decimal.Zero)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if price.String() != "72.00" {
			t.Fatalf("expected 72.00, got %s", price.String())
		}
	})
}

func TestSummarize(t *testing.T) {
	b := brigadeiroBreakdown()

	s, err := pricing.Summarize(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(s.Lines) != 2 || s.Lines[0].Name != "chocolate em pó" || s.Lines[1].Name != "leite condensado" {
		t.Fatalf("line order not preserved: %+v", s.Lines)
	}
	if s.Lines[0].Cost.String() != "40.00" || s.Lines[1].Cost.String() != "4.50" {
		t.Fatalf("unexpected line costs: %+v", s.Lines)
	}
	if s.IngredientsCost.String() != "44.50" {
		t.Fatalf("expected ingredients 44.50, got %s", s.IngredientsCost)
	}
	if s.LaborCost.String() != "22.50" {
		t.Fatalf("expected labor 22.50, got %s", s.LaborCost)
	}
	if s.TotalCost.String() != "72.00" {
		t.Fatalf("expected total 72.00, got %s", s.TotalCost)
	}
	if s.SuggestedPrice.String() != "100.80" {
		t.Fatalf("expected suggested 100.80, got %s", s.SuggestedPrice)
	}
}

func TestScenarios(t *testing.T) {
	b := brigadeiroBreakdown()

	scenarios, err := pricing.Scenarios(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scenarios) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(scenarios))
	}

	// 30% / 40% / 50% over 72.00
	expected := []struct {
		label string
		price string
	}{
		{label: "pessimista", price: "93.60"},
		{label: "realista", price: "100.80"},
		{label: "otimista", price: "108.00"},
	}
	for i, want := range expected {
		if scenarios[i].Label != want.label || scenarios[i].Price.String() != want.price {
			t.Fatalf("scenario %d: expected %s %s, got %s %s", i, want.label, want.price, scenarios[i].Label, scenarios[i].Price)
		}
	}

	t.Run("pessimistic margin floors at zero", func(t *testing.T) {
		low := brigadeiroBreakdown()
		low.MarginPercent = decimal.NewFromInt(5)
		scenarios, err := pricing.Scenarios(low)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !scenarios[0].MarginPercent.IsZero() {
			t.Fatalf("expected floored margin 0, got %s", scenarios[0].MarginPercent)
		}
		if scenarios[0].Price.String() != "72.00" {
			t.Fatalf("expected 72.00, got %s", scenarios[0].Price)
		}
	})
}
