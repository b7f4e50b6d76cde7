package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"docecalc/internal/adapter/http/handlers/mocks"
	"docecalc/internal/domain/entities"
	"docecalc/internal/domain/money"
	"docecalc/internal/domain/pricing"
	"docecalc/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func calculatorRouter(h *CalculatorHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/calculator/price", RequireUser(), h.Price)
	return r
}

func TestCalculatorHandler_Price(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalculatorUseCase(ctrl)
		r := calculatorRouter(NewCalculatorHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/calculator/price", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unparsable quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalculatorUseCase(ctrl)
		r := calculatorRouter(NewCalculatorHandler(uc))

		payload := `{"ingredients":[{"name":"Chocolate","quantity":"duzentos","unit":"g","unit_price":"0,06"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/calculator/price", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative input maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalculatorUseCase(ctrl)
		r := calculatorRouter(NewCalculatorHandler(uc))

		uc.EXPECT().Price(gomock.Any()).Return(usecase.CalculatorResult{}, fmt.Errorf("labor hours: %w", entities.ErrInvalidInput))

		payload := `{"ingredients":[{"name":"Chocolate","quantity":"200","unit":"g","unit_price":"0,06"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/calculator/price", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success renders scenarios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICalculatorUseCase(ctrl)
		r := calculatorRouter(NewCalculatorHandler(uc))

		uc.EXPECT().Price(gomock.Any()).Return(usecase.CalculatorResult{
			Summary: pricing.Summary{
				IngredientsCost: money.MustFromString("44.50"),
				LaborCost:       money.MustFromString("24.00"),
				FixedCosts:      money.MustFromString("3.50"),
				TotalCost:       money.MustFromString("72.00"),
				MarginPercent:   decimal.NewFromInt(40),
				SuggestedPrice:  money.MustFromString("100.80"),
			},
			Scenarios: []pricing.Scenario{
				{Label: "pessimista", MarginPercent: decimal.NewFromInt(30), Price: money.MustFromString("93.60")},
				{Label: "realista", MarginPercent: decimal.NewFromInt(40), Price: money.MustFromString("100.80")},
				{Label: "otimista", MarginPercent: decimal.NewFromInt(50), Price: money.MustFromString("108.00")},
			},
		}, nil)

		payload := `{"ingredients":[{"name":"Chocolate","quantity":"200","unit":"g","unit_price":"0,06"}],"labor_hours":"2","labor_rate":"12,00","fixed_costs":"3,50","margin_percent":"40"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/calculator/price", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		scenarios := body["scenarios"].([]any)
		if len(scenarios) != 3 {
			t.Fatalf("expected 3 scenarios, got %d", len(scenarios))
		}
		realista := scenarios[1].(map[string]any)
		if realista["label"] != "realista" {
			t.Fatalf("expected realista, got %v", realista["label"])
		}
	})
}
