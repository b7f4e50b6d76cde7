package interfaces

import (
	"context"

	"docecalc/internal/domain/entities"
)

// IIngredientRepository abstracts DynamoDB persistence for Ingredient.
//
// Repositories return a zero-value entity (ID == "") for not-found; the
// use case layer maps that to its own sentinel error.

type IIngredientRepository interface {
	Create(ctx context.Context, i entities.Ingredient) (entities.Ingredient, error)
	GetByID(ctx context.Context, id string) (entities.Ingredient, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Ingredient, error)
	Update(ctx context.Context, i entities.Ingredient) (entities.Ingredient, error)
	Delete(ctx context.Context, id string) error
}
