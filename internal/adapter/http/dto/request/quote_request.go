package request

import (
	"errors"
	"strings"
	"time"

	"docecalc/internal/domain/money"
)

var ErrInvalidValidUntil = errors.New("invalid valid_until")

// CreateQuoteRequest opens a draft quote for a client.
type CreateQuoteRequest struct {
	ClientID   string `json:"client_id" binding:"required"`
	ValidUntil string `json:"valid_until" binding:"required"`
}

func (r CreateQuoteRequest) ResolveClientID() string {
	return strings.TrimSpace(r.ClientID)
}

// ResolveValidUntil accepts RFC3339 or a bare date. A bare date means the
// quote is valid through that whole day (23:59:59 UTC).
func (r CreateQuoteRequest) ResolveValidUntil() (time.Time, error) {
	raw := strings.TrimSpace(r.ValidUntil)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if d, err := time.Parse("2006-01-02", raw); err == nil {
		return d.Add(24*time.Hour - time.Second).UTC(), nil
	}
	return time.Time{}, ErrInvalidValidUntil
}

// QuoteItemRequest adds one priced recipe line to a draft quote. An empty
// unit price means "use the recipe's current suggested price".
type QuoteItemRequest struct {
	RecipeID  string `json:"recipe_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	UnitPrice string `json:"unit_price"`
}

func (r QuoteItemRequest) ResolveRecipeID() string {
	return strings.TrimSpace(r.RecipeID)
}

// ResolveUnitPrice returns nil for the empty field (caller falls back to
// the catalog price) and an error for non-empty unparsable text.
func (r QuoteItemRequest) ResolveUnitPrice() (*money.Money, error) {
	if strings.TrimSpace(r.UnitPrice) == "" {
		return nil, nil
	}
	m, err := requiredAmount("unit_price", r.UnitPrice)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
