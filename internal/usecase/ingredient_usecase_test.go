package usecase

import (
	"context"
	"errors"
	"testing"

	"docecalc/internal/domain/entities"
	"docecalc/internal/domain/money"
	mock_interfaces "docecalc/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestIngredientUseCase_Create(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewIngredientUseCase(nil)
		_, err := uc.Create(context.Background(), " ", "chocolate", entities.UnitGram, money.MustFromString("0.20"))
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		uc := NewIngredientUseCase(nil)
		_, err := uc.Create(context.Background(), "user-1", "", entities.UnitGram, money.MustFromString("0.20"))
		if !errors.Is(err, ErrInvalidIngredientName) {
			t.Fatalf("expected ErrInvalidIngredientName, got %v", err)
		}
	})

	t.Run("invalid unit", func(t *testing.T) {
		uc := NewIngredientUseCase(nil)
		_, err := uc.Create(context.Background(), "user-1", "chocolate", "oz", money.MustFromString("0.20"))
		if !errors.Is(err, ErrInvalidUnit) {
			t.Fatalf("expected ErrInvalidUnit, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIIngredientRepository(ctrl)
		uc := NewIngredientUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Ingredient{})).DoAndReturn(
			func(_ context.Context, i entities.Ingredient) (entities.Ingredient, error) {
				if i.ID == "" || i.UserID != "user-1" || i.Name != "chocolate em pó" || i.Unit != entities.UnitGram {
					t.Fatalf("unexpected ingredient: %+v", i)
				}
				if i.UnitPrice.String() != "0.20" {
					t.Fatalf("unexpected unit price: %s", i.UnitPrice)
				}
				return i, nil
			},
		)

		i, err := uc.Create(context.Background(), "user-1", " chocolate em pó ", entities.UnitGram, money.MustFromString("0.20"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if i.ID == "" {
			t.Fatal("expected generated id")
		}
	})
}

func TestIngredientUseCase_OwnershipScoping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIIngredientRepository(ctrl)
	uc := NewIngredientUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "ing-1").Return(entities.Ingredient{ID: "ing-1", UserID: "user-2"}, nil)

	_, err := uc.GetByID(context.Background(), "user-1", "ing-1")
	if !errors.Is(err, ErrIngredientNotFound) {
		t.Fatalf("expected ErrIngredientNotFound, got %v", err)
	}
}

func TestIngredientUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIIngredientRepository(ctrl)
	uc := NewIngredientUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "ing-1").Return(entities.Ingredient{ID: "ing-1", UserID: "user-1"}, nil)
	repo.EXPECT().Delete(gomock.Any(), "ing-1").Return(nil)

	if err := uc.Delete(context.Background(), "user-1", "ing-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIngredientUseCase_ListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIIngredientRepository(ctrl)
	uc := NewIngredientUseCase(repo)

	repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.Ingredient{{ID: "ing-1"}}, nil)

	items, err := uc.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 ingredient, got %d", len(items))
	}
}
