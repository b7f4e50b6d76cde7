package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"docecalc/internal/domain/entities"
	"docecalc/internal/domain/money"
	"docecalc/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrIngredientNotFound    = errors.New("ingredient not found")
	ErrInvalidIngredientID   = errors.New("invalid ingredient id")
	ErrInvalidIngredientName = errors.New("invalid ingredient name")
	ErrInvalidUnit           = errors.New("invalid measurement unit")
	ErrInvalidUserID         = errors.New("invalid user id")
)

// IIngredientUseCase exposes the ingredient catalog operations, always
// scoped to the owning user. Authorization happens upstream; this layer
// only guarantees a user never reads or writes another user's catalog.

type IIngredientUseCase interface {
	Create(ctx context.Context, userID, name string, unit entities.MeasurementUnit, unitPrice money.Money) (entities.Ingredient, error)
	GetByID(ctx context.Context, userID, id string) (entities.Ingredient, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Ingredient, error)
	Update(ctx context.Context, userID, id, name string, unit entities.MeasurementUnit, unitPrice money.Money) (entities.Ingredient, error)
	Delete(ctx context.Context, userID, id string) error
}

type IngredientUseCase struct {
	repo interfaces.IIngredientRepository
}

var _ IIngredientUseCase = (*IngredientUseCase)(nil)

func NewIngredientUseCase(repo interfaces.IIngredientRepository) *IngredientUseCase {
	return &IngredientUseCase{repo: repo}
}

func (u *IngredientUseCase) Create(ctx context.Context, userID, name string, unit entities.MeasurementUnit, unitPrice money.Money) (entities.Ingredient, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Ingredient{}, ErrInvalidUserID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Ingredient{}, ErrInvalidIngredientName
	}
	if !unit.Valid() {
		return entities.Ingredient{}, ErrInvalidUnit
	}

	now := time.Now().UTC()
	i := entities.Ingredient{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Unit:      unit,
		UnitPrice: unitPrice,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, i)
}

func (u *IngredientUseCase) GetByID(ctx context.Context, userID, id string) (entities.Ingredient, error) {
	return u.getOwned(ctx, userID, id)
}

func (u *IngredientUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Ingredient, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *IngredientUseCase) Update(ctx context.Context, userID, id, name string, unit entities.MeasurementUnit, unitPrice money.Money) (entities.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Ingredient{}, ErrInvalidIngredientName
	}
	if !unit.Valid() {
		return entities.Ingredient{}, ErrInvalidUnit
	}

	existing, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return entities.Ingredient{}, err
	}

	existing.Name = name
	existing.Unit = unit
	existing.UnitPrice = unitPrice
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func (u *IngredientUseCase) Delete(ctx context.Context, userID, id string) error {
	existing, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, existing.ID)
}

// getOwned loads an ingredient and hides it behind not-found when it
// belongs to a different user.
func (u *IngredientUseCase) getOwned(ctx context.Context, userID, id string) (entities.Ingredient, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Ingredient{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Ingredient{}, ErrInvalidIngredientID
	}

	i, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Ingredient{}, err
	}
	if i.ID == "" || i.UserID != userID {
		return entities.Ingredient{}, ErrIngredientNotFound
	}
	return i, nil
}
