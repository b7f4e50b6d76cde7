package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"docecalc/internal/domain/entities"
	"docecalc/internal/domain/money"
	"docecalc/internal/domain/pricing"
	"docecalc/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidValidUntil = errors.New("invalid valid_until date")
	ErrQuoteNotEditable  = errors.New("quote is not editable")
)

// IQuoteUseCase drives the quote (orçamento) lifecycle:
//   - a draft is created for a client, items are added/removed while it
//     stays a draft
//   - Send/Approve/Reject walk the status state machine
//   - a sent quote past its valid_until reads as expirado; expiry is
//     computed at read time, never stored
//
// When AddItem receives a nil unit price, the recipe's current suggested
// price is used, so quoting follows the catalog by default.

type IQuoteUseCase interface {
	Create(ctx context.Context, userID, clientID string, validUntil time.Time) (entities.Quote, error)
	GetByID(ctx context.Context, userID, id string) (entities.Quote, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Quote, error)
	ListByClient(ctx context.Context, userID, clientID string) ([]entities.Quote, error)
	AddItem(ctx context.Context, userID, quoteID, recipeID string, quantity int, unitPrice *money.Money) (entities.Quote, error)
	RemoveItem(ctx context.Context, userID, quoteID string, index int) (entities.Quote, error)
	Send(ctx context.Context, userID, quoteID string) (entities.Quote, error)
	Approve(ctx context.Context, userID, quoteID string) (entities.Quote, error)
	Reject(ctx context.Context, userID, quoteID string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo       interfaces.IQuoteRepository
	recipeRepo interfaces.IRecipeRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, recipeRepo interfaces.IRecipeRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, recipeRepo: recipeRepo}
}

func (u *QuoteUseCase) Create(ctx context.Context, userID, clientID string, validUntil time.Time) (entities.Quote, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Quote{}, ErrInvalidUserID
	}
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Quote{}, ErrInvalidClientID
	}

	now := time.Now().UTC()
	if validUntil.IsZero() || !validUntil.After(now) {
		return entities.Quote{}, ErrInvalidValidUntil
	}

	q := entities.Quote{
		ID:         uuid.NewString(),
		UserID:     userID,
		ClientID:   clientID,
		Status:     entities.QuoteStatusRascunho,
		ValidUntil: validUntil.UTC(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, userID, id string) (entities.Quote, error) {
	return u.getOwned(ctx, userID, id)
}

func (u *QuoteUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Quote, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *QuoteUseCase) ListByClient(ctx context.Context, userID, clientID string) ([]entities.Quote, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}

	quotes, err := u.repo.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	owned := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.UserID == userID {
			owned = append(owned, q)
		}
	}
	return owned, nil
}

func (u *QuoteUseCase) AddItem(ctx context.Context, userID, quoteID, recipeID string, quantity int, unitPrice *money.Money) (entities.Quote, error) {
	q, err := u.getOwned(ctx, userID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusRascunho {
		return entities.Quote{}, ErrQuoteNotEditable
	}

	price, err := u.resolveUnitPrice(ctx, userID, recipeID, unitPrice)
	if err != nil {
		return entities.Quote{}, err
	}

	updated, err := q.AddItem(strings.TrimSpace(recipeID), quantity, price)
	if err != nil {
		return entities.Quote{}, err
	}
	updated.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, updated)
}

func (u *QuoteUseCase) RemoveItem(ctx context.Context, userID, quoteID string, index int) (entities.Quote, error) {
	q, err := u.getOwned(ctx, userID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusRascunho {
		return entities.Quote{}, ErrQuoteNotEditable
	}

	updated, err := q.RemoveItem(index)
	if err != nil {
		return entities.Quote{}, err
	}
	updated.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, updated)
}

func (u *QuoteUseCase) Send(ctx context.Context, userID, quoteID string) (entities.Quote, error) {
	return u.transition(ctx, userID, quoteID, entities.QuoteStatusEnviado)
}

func (u *QuoteUseCase) Approve(ctx context.Context, userID, quoteID string) (entities.Quote, error) {
	return u.transition(ctx, userID, quoteID, entities.QuoteStatusAprovado)
}

func (u *QuoteUseCase) Reject(ctx context.Context, userID, quoteID string) (entities.Quote, error) {
	return u.transition(ctx, userID, quoteID, entities.QuoteStatusRejeitado)
}

func (u *QuoteUseCase) transition(ctx context.Context, userID, quoteID string, next entities.QuoteStatus) (entities.Quote, error) {
	q, err := u.getOwned(ctx, userID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	updated, err := q.Transition(next, now)
	if err != nil {
		log.Printf("[quote][usecase] transition refused quote_id=%s %s -> %s: %v", q.ID, q.EffectiveStatus(now), next, err)
		return entities.Quote{}, err
	}
	updated.UpdatedAt = now
	return u.repo.Save(ctx, updated)
}

// resolveUnitPrice falls back to the recipe's suggested price when the
// caller did not fix a price for the item.
func (u *QuoteUseCase) resolveUnitPrice(ctx context.Context, userID, recipeID string, unitPrice *money.Money) (money.Money, error) {
	if unitPrice != nil {
		return *unitPrice, nil
	}

	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" {
		return money.Money{}, ErrInvalidRecipeID
	}
	r, err := u.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return money.Money{}, err
	}
	if r.ID == "" || r.UserID != userID {
		return money.Money{}, ErrRecipeNotFound
	}
	return pricing.SuggestedPrice(r.Breakdown)
}

func (u *QuoteUseCase) getOwned(ctx context.Context, userID, id string) (entities.Quote, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Quote{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" || q.UserID != userID {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}
