package interfaces

import (
	"context"

	"docecalc/internal/domain/entities"
)

// IRecipeRepository abstracts DynamoDB persistence for Recipe.

type IRecipeRepository interface {
	Create(ctx context.Context, r entities.Recipe) (entities.Recipe, error)
	GetByID(ctx context.Context, id string) (entities.Recipe, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Recipe, error)
	Update(ctx context.Context, r entities.Recipe) (entities.Recipe, error)
	Delete(ctx context.Context, id string) error
}
