package interfaces

import (
	"context"

	"docecalc/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Quote values are immutable in the domain: every mutation produces a new
// copy, so Save replaces the whole item (items, status, timestamps).

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Quote, error)
	Save(ctx context.Context, q entities.Quote) (entities.Quote, error)
}
