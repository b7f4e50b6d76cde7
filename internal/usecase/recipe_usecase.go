package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"docecalc/internal/domain/entities"
	"docecalc/internal/domain/pricing"
	"docecalc/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrInvalidRecipeID   = errors.New("invalid recipe id")
	ErrInvalidRecipeName = errors.New("invalid recipe name")
)

// RecipePrice bundles the derived cost view a client needs to price one
// recipe: the full summary plus the margin comparison scenarios.
type RecipePrice struct {
	Recipe    entities.Recipe
	Summary   pricing.Summary
	Scenarios []pricing.Scenario
}

// IRecipeUseCase exposes recipe catalog operations plus pricing. Derived
// costs are computed on every read and never stored, so they cannot drift
// from the breakdown inputs.

type IRecipeUseCase interface {
	Create(ctx context.Context, userID, name string, breakdown entities.RecipeCostBreakdown) (entities.Recipe, error)
	GetByID(ctx context.Context, userID, id string) (entities.Recipe, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Recipe, error)
	Update(ctx context.Context, userID, id, name string, breakdown entities.RecipeCostBreakdown) (entities.Recipe, error)
	Delete(ctx context.Context, userID, id string) error
	Price(ctx context.Context, userID, id string) (RecipePrice, error)
}

type RecipeUseCase struct {
	repo interfaces.IRecipeRepository
}

var _ IRecipeUseCase = (*RecipeUseCase)(nil)

func NewRecipeUseCase(repo interfaces.IRecipeRepository) *RecipeUseCase {
	return &RecipeUseCase{repo: repo}
}

func (u *RecipeUseCase) Create(ctx context.Context, userID, name string, breakdown entities.RecipeCostBreakdown) (entities.Recipe, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Recipe{}, ErrInvalidUserID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Recipe{}, ErrInvalidRecipeName
	}
	// Reject breakdowns the aggregator cannot price (negative inputs).
	if _, err := pricing.Summarize(breakdown); err != nil {
		return entities.Recipe{}, err
	}

	now := time.Now().UTC()
	r := entities.Recipe{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Breakdown: breakdown,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, r)
}

func (u *RecipeUseCase) GetByID(ctx context.Context, userID, id string) (entities.Recipe, error) {
	return u.getOwned(ctx, userID, id)
}

func (u *RecipeUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Recipe, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *RecipeUseCase) Update(ctx context.Context, userID, id, name string, breakdown entities.RecipeCostBreakdown) (entities.Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Recipe{}, ErrInvalidRecipeName
	}
	if _, err := pricing.Summarize(breakdown); err != nil {
		return entities.Recipe{}, err
	}

	existing, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return entities.Recipe{}, err
	}

	existing.Name = name
	existing.Breakdown = breakdown
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func (u *RecipeUseCase) Delete(ctx context.Context, userID, id string) error {
	existing, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, existing.ID)
}

func (u *RecipeUseCase) Price(ctx context.Context, userID, id string) (RecipePrice, error) {
	r, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return RecipePrice{}, err
	}

	summary, err := pricing.Summarize(r.Breakdown)
	if err != nil {
		return RecipePrice{}, err
	}
	scenarios, err := pricing.Scenarios(r.Breakdown)
	if err != nil {
		return RecipePrice{}, err
	}

	return RecipePrice{Recipe: r, Summary: summary, Scenarios: scenarios}, nil
}

func (u *RecipeUseCase) getOwned(ctx context.Context, userID, id string) (entities.Recipe, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Recipe{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Recipe{}, ErrInvalidRecipeID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Recipe{}, err
	}
	if r.ID == "" || r.UserID != userID {
		return entities.Recipe{}, ErrRecipeNotFound
	}
	return r, nil
}
