package request

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestBreakdownRequest_ToBreakdown(t *testing.T) {
	r := BreakdownRequest{
		Ingredients: []IngredientLineRequest{
			{Name: "Leite condensado", Quantity: "1", Unit: "unit", UnitPrice: "R$ 6,50"},
			{Name: "Chocolate em pó", Quantity: "200", Unit: "g", UnitPrice: "0,06"},
		},
		LaborHours:    "2",
		LaborRate:     "12,00",
		FixedCosts:    "3,50",
		MarginPercent: "40",
	}

	b, err := r.ToBreakdown()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(b.Lines))
	}
	if got := b.Lines[0].UnitPrice.String(); got != "6.50" {
		t.Fatalf("expected 6.50, got %s", got)
	}
	if !b.Lines[1].Quantity.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected quantity 200, got %s", b.Lines[1].Quantity)
	}
	if got := b.LaborRate.String(); got != "12.00" {
		t.Fatalf("expected labor rate 12.00, got %s", got)
	}
	if !b.MarginPercent.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected margin 40, got %s", b.MarginPercent)
	}
}

func TestBreakdownRequest_EmptyOptionalFieldsCoerceToZero(t *testing.T) {
	r := BreakdownRequest{
		Ingredients: []IngredientLineRequest{
			{Name: "Chocolate", Quantity: "200", Unit: "g", UnitPrice: "0,06"},
		},
	}

	b, err := r.ToBreakdown()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.LaborHours.IsZero() {
		t.Fatalf("expected zero labor hours, got %s", b.LaborHours)
	}
	if !b.LaborRate.IsZero() {
		t.Fatalf("expected zero labor rate, got %s", b.LaborRate)
	}
	if !b.FixedCosts.IsZero() {
		t.Fatalf("expected zero fixed costs, got %s", b.FixedCosts)
	}
	if !b.MarginPercent.IsZero() {
		t.Fatalf("expected zero margin, got %s", b.MarginPercent)
	}
}

func TestBreakdownRequest_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  BreakdownRequest
		want error
	}{
		{
			name: "unknown unit",
			req: BreakdownRequest{
				Ingredients: []IngredientLineRequest{{Name: "Chocolate", Quantity: "200", Unit: "oz", UnitPrice: "0,06"}},
			},
			want: ErrInvalidUnit,
		},
		{
			name: "unparsable quantity",
			req: BreakdownRequest{
				Ingredients: []IngredientLineRequest{{Name: "Chocolate", Quantity: "duzentos", Unit: "g", UnitPrice: "0,06"}},
			},
			want: ErrInvalidQuantity,
		},
		{
			name: "unparsable unit price",
			req: BreakdownRequest{
				Ingredients: []IngredientLineRequest{{Name: "Chocolate", Quantity: "200", Unit: "g", UnitPrice: "abc"}},
			},
			want: ErrInvalidAmount,
		},
		{
			name: "garbage in optional field",
			req: BreakdownRequest{
				Ingredients: []IngredientLineRequest{{Name: "Chocolate", Quantity: "200", Unit: "g", UnitPrice: "0,06"}},
				FixedCosts:  "muito",
			},
			want: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToBreakdown()
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
