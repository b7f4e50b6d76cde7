package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"docecalc/internal/adapter/http/handlers/mocks"
	"docecalc/internal/domain/entities"
	"docecalc/internal/domain/money"
	"docecalc/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func ingredientRouter(h *IngredientHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1", RequireUser())
	g.POST("/ingredients", h.Create)
	g.GET("/ingredients", h.List)
	g.GET("/ingredients/:id", h.GetByID)
	g.PUT("/ingredients/:id", h.Update)
	g.DELETE("/ingredients/:id", h.Delete)
	return r
}

func TestIngredientHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing user header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		r := ingredientRouter(NewIngredientHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/ingredients", bytes.NewBufferString(`{"name":"Leite condensado","unit":"unit","unit_price":"6,50"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		r := ingredientRouter(NewIngredientHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/ingredients", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid unit price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		r := ingredientRouter(NewIngredientHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/ingredients", bytes.NewBufferString(`{"name":"Leite condensado","unit":"unit","unit_price":"abc"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success renders amount and display", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		r := ingredientRouter(NewIngredientHandler(uc))

		now := time.Now().UTC()
		price := money.MustFromString("6.50")
		uc.EXPECT().
			Create(gomock.Any(), "user-1", "Leite condensado", entities.UnitPiece, price).
			Return(entities.Ingredient{
				ID:        "ing-1",
				UserID:    "user-1",
				Name:      "Leite condensado",
				Unit:      entities.UnitPiece,
				UnitPrice: price,
				CreatedAt: now,
				UpdatedAt: now,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/ingredients", bytes.NewBufferString(`{"name":"Leite condensado","unit":"unit","unit_price":"R$ 6,50"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		unitPrice := body["unit_price"].(map[string]any)
		if unitPrice["amount"] != "6.50" {
			t.Fatalf("expected amount 6.50, got %v", unitPrice["amount"])
		}
		if unitPrice["display"] != "R$ 6,50" {
			t.Fatalf("expected display R$ 6,50, got %v", unitPrice["display"])
		}
	})
}

func TestIngredientHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		r := ingredientRouter(NewIngredientHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "user-1", "missing").Return(entities.Ingredient{}, usecase.ErrIngredientNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/ingredients/missing", nil)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("repository failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		r := ingredientRouter(NewIngredientHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "user-1", "ing-1").Return(entities.Ingredient{}, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodGet, "/v1/ingredients/ing-1", nil)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestIngredientHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngredientUseCase(ctrl)
		r := ingredientRouter(NewIngredientHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "user-1", "ing-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/ingredients/ing-1", nil)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
