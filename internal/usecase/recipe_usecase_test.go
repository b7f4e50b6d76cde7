package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"docecalc/internal/domain/entities"
	"docecalc/internal/domain/money"
	mock_interfaces "docecalc/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func validBreakdown() entities.RecipeCostBreakdown {
	return entities.RecipeCostBreakdown{
		Lines: []entities.IngredientLine{
			{Name: "chocolate", Quantity: decimal.NewFromInt(200), Unit: entities.UnitGram, UnitPrice: money.MustFromString("0.20")},
		},
		LaborHours:    decimal.RequireFromString("1.5"),
		LaborRate:     money.MustFromString("15.00"),
		FixedCosts:    money.MustFromString("5.00"),
		MarginPercent: decimal.NewFromInt(40),
	}
}

func TestRecipeUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewRecipeUseCase(nil)
		_, err := uc.Create(context.Background(), "user-1", "  ", validBreakdown())
		if !errors.Is(err, ErrInvalidRecipeName) {
			t.Fatalf("expected ErrInvalidRecipeName, got %v", err)
		}
	})

	t.Run("unpriceable breakdown rejected", func(t *testing.T) {
		uc := NewRecipeUseCase(nil)
		b := validBreakdown()
		b.MarginPercent = decimal.NewFromInt(-1)
		_, err := uc.Create(context.Background(), "user-1", "brigadeiro", b)
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRecipeRepository(ctrl)
		uc := NewRecipeUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Recipe{})).DoAndReturn(
			func(_ context.Context, r entities.Recipe) (entities.Recipe, error) {
				if r.ID == "" || r.UserID != "user-1" || r.Name != "brigadeiro" {
					t.Fatalf("unexpected recipe: %+v", r)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatal("expected timestamps")
				}
				return r, nil
			},
		)

		r, err := uc.Create(context.Background(), "user-1", " brigadeiro ", validBreakdown())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ID == "" {
			t.Fatal("expected generated id")
		}
	})
}

func TestRecipeUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRecipeRepository(ctrl)
		uc := NewRecipeUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "recipe-1").Return(entities.Recipe{}, nil)

		_, err := uc.GetByID(context.Background(), "user-1", "recipe-1")
		if !errors.Is(err, ErrRecipeNotFound) {
			t.Fatalf("expected ErrRecipeNotFound, got %v", err)
		}
	})

	t.Run("foreign recipe hidden behind not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRecipeRepository(ctrl)
		uc := NewRecipeUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "recipe-1").Return(entities.Recipe{ID: "recipe-1", UserID: "user-2"}, nil)

		_, err := uc.GetByID(context.Background(), "user-1", "recipe-1")
		if !errors.Is(err, ErrRecipeNotFound) {
			t.Fatalf("expected ErrRecipeNotFound, got %v", err)
		}
	})
}

func TestRecipeUseCase_Price(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIRecipeRepository(ctrl)
	uc := NewRecipeUseCase(repo)

	now := time.Now().UTC()
	repo.EXPECT().GetByID(gomock.Any(), "recipe-1").Return(entities.Recipe{
		ID:        "recipe-1",
		UserID:    "user-1",
		Name:      "brigadeiro",
		Breakdown: validBreakdown(),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil)

	price, err := uc.Price(context.Background(), "user-1", "recipe-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 200g * 0.20 + 1.5h * 15.00 + 5.00 = 67.50; +40% = 94.50
	if got := price.Summary.TotalCost.String(); got != "67.50" {
		t.Fatalf("expected total 67.50, got %s", got)
	}
	if got := price.Summary.SuggestedPrice.String(); got != "94.50" {
		t.Fatalf("expected suggested 94.50, got %s", got)
	}
	if len(price.Scenarios) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(price.Scenarios))
	}
}

func TestRecipeUseCase_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIRecipeRepository(ctrl)
	uc := NewRecipeUseCase(repo)

	existing := entities.Recipe{ID: "recipe-1", UserID: "user-1", Name: "old", Breakdown: validBreakdown()}
	repo.EXPECT().GetByID(gomock.Any(), "recipe-1").Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Recipe{})).DoAndReturn(
		func(_ context.Context, r entities.Recipe) (entities.Recipe, error) {
			if r.Name != "new" {
				t.Fatalf("expected renamed recipe, got %q", r.Name)
			}
			if r.UpdatedAt.IsZero() {
				t.Fatal("expected updated timestamp")
			}
			return r, nil
		},
	)

	if _, err := uc.Update(context.Background(), "user-1", "recipe-1", "new", validBreakdown()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecipeUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIRecipeRepository(ctrl)
	uc := NewRecipeUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "recipe-1").Return(entities.Recipe{ID: "recipe-1", UserID: "user-1"}, nil)
	repo.EXPECT().Delete(gomock.Any(), "recipe-1").Return(nil)

	if err := uc.Delete(context.Background(), "user-1", "recipe-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
