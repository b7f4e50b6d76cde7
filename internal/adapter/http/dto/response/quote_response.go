package response

import (
	"time"

	"docecalc/internal/domain/entities"
)

type QuoteItemResponse struct {
	RecipeID  string         `json:"recipe_id"`
	Quantity  int            `json:"quantity"`
	UnitPrice AmountResponse `json:"unit_price"`
	ItemTotal AmountResponse `json:"item_total"`
}

// QuoteResponse renders a quote as seen now: Status is the effective
// status (a sent quote past valid_until reads "expirado") and Total is
// recomputed from the items on every render.
type QuoteResponse struct {
	ID         string              `json:"id"`
	ClientID   string              `json:"client_id"`
	Items      []QuoteItemResponse `json:"items"`
	Status     string              `json:"status"`
	Total      AmountResponse      `json:"total"`
	ValidUntil time.Time           `json:"valid_until"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

func FromQuote(q entities.Quote, now time.Time) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{
			RecipeID:  it.RecipeID,
			Quantity:  it.Quantity,
			UnitPrice: FromMoney(it.UnitPrice),
			ItemTotal: FromMoney(it.ItemTotal()),
		})
	}
	return QuoteResponse{
		ID:         q.ID,
		ClientID:   q.ClientID,
		Items:      items,
		Status:     string(q.EffectiveStatus(now)),
		Total:      FromMoney(q.Total()),
		ValidUntil: q.ValidUntil,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote, now time.Time) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q, now))
	}
	return out
}
