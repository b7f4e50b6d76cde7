package entities

import (
	"fmt"
	"time"

	"docecalc/internal/domain/money"
)

// QuoteStatus represents the lifecycle of a quote (orçamento).
//
// Permitted transitions:
//   - rascunho -> enviado (requires at least one item)
//   - enviado  -> aprovado | rejeitado
//
// aprovado, rejeitado and expirado are terminal. expirado is never stored:
// it is computed at read time from ValidUntil (see EffectiveStatus).
type QuoteStatus string

const (
	QuoteStatusRascunho  QuoteStatus = "rascunho"
	QuoteStatusEnviado   QuoteStatus = "enviado"
	QuoteStatusAprovado  QuoteStatus = "aprovado"
	QuoteStatusRejeitado QuoteStatus = "rejeitado"
	QuoteStatusExpirado  QuoteStatus = "expirado"
)

// QuoteItem is one priced recipe line in a quote.
type QuoteItem struct {
	RecipeID  string      `json:"recipe_id"`
	Quantity  int         `json:"quantity"`
	UnitPrice money.Money `json:"unit_price"`
}

// ItemTotal is quantity × unit price.
func (i QuoteItem) ItemTotal() money.Money {
	return i.UnitPrice.MulInt(int64(i.Quantity))
}

// Quote is a priced document for a client, owned by a single user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//   - GSI2 (client_id-index): client_id
//
// Quote is a value object: AddItem, RemoveItem and Transition return an
// updated copy and never mutate the receiver. The total is always
// recomputed from Items.
type Quote struct {
	ID         string      `json:"id"`
	UserID     string      `json:"user_id"`
	ClientID   string      `json:"client_id"`
	Items      []QuoteItem `json:"items"`
	Status     QuoteStatus `json:"status"`
	ValidUntil time.Time   `json:"valid_until"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// AddItem appends a new item and returns the updated copy. Quantity must be
// at least 1 and the recipe reference non-empty.
func (q Quote) AddItem(recipeID string, quantity int, unitPrice money.Money) (Quote, error) {
	if recipeID == "" {
		return Quote{}, fmt.Errorf("%w: empty recipe reference", ErrInvalidInput)
	}
	if quantity < 1 {
		return Quote{}, fmt.Errorf("%w: quantity must be >= 1, got %d", ErrInvalidInput, quantity)
	}

	items := make([]QuoteItem, len(q.Items), len(q.Items)+1)
	copy(items, q.Items)
	q.Items = append(items, QuoteItem{RecipeID: recipeID, Quantity: quantity, UnitPrice: unitPrice})
	return q, nil
}

// RemoveItem drops the item at index, preserving the order of the rest.
func (q Quote) RemoveItem(index int) (Quote, error) {
	if index < 0 || index >= len(q.Items) {
		return Quote{}, fmt.Errorf("%w: index %d with %d items", ErrIndexOutOfRange, index, len(q.Items))
	}

	items := make([]QuoteItem, 0, len(q.Items)-1)
	items = append(items, q.Items[:index]...)
	items = append(items, q.Items[index+1:]...)
	q.Items = items
	return q, nil
}

// Total is the sum of all item totals. An empty quote is valid and totals
// R$ 0,00.
func (q Quote) Total() money.Money {
	total := money.Zero
	for _, it := range q.Items {
		total = total.Add(it.ItemTotal())
	}
	return total
}

// EffectiveStatus is the status as seen at a given instant: a sent quote
// whose ValidUntil has passed reads as expirado without any stored
// transition.
func (q Quote) EffectiveStatus(now time.Time) QuoteStatus {
	if q.Status == QuoteStatusEnviado && !q.ValidUntil.IsZero() && q.ValidUntil.Before(now) {
		return QuoteStatusExpirado
	}
	return q.Status
}

// Transition moves the quote to next if the edge is permitted from the
// effective status at now, returning the updated copy. Sending requires at
// least one item. Terminal states admit no transition.
func (q Quote) Transition(next QuoteStatus, now time.Time) (Quote, error) {
	current := q.EffectiveStatus(now)

	allowed := false
	switch current {
	case QuoteStatusRascunho:
		allowed = next == QuoteStatusEnviado
	case QuoteStatusEnviado:
		allowed = next == QuoteStatusAprovado || next == QuoteStatusRejeitado
	}
	if !allowed {
		return Quote{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}

	if next == QuoteStatusEnviado && len(q.Items) == 0 {
		return Quote{}, ErrEmptyQuote
	}

	q.Status = next
	return q, nil
}
