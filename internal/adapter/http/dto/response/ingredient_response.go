package response

import (
	"time"

	"docecalc/internal/domain/entities"
)

type IngredientResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Unit      string         `json:"unit"`
	UnitPrice AmountResponse `json:"unit_price"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func FromIngredient(i entities.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:        i.ID,
		Name:      i.Name,
		Unit:      string(i.Unit),
		UnitPrice: FromMoney(i.UnitPrice),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func FromIngredients(items []entities.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromIngredient(i))
	}
	return out
}
