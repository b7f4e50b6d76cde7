package usecase

import (
	"docecalc/internal/domain/entities"
	"docecalc/internal/domain/pricing"
)

// CalculatorResult is the derived view returned by the stateless calculator.
type CalculatorResult struct {
	Summary   pricing.Summary
	Scenarios []pricing.Scenario
}

// ICalculatorUseCase prices an unowned, unsaved breakdown for the
// "Calculadora" screen. Pure computation, no persistence.

type ICalculatorUseCase interface {
	Price(breakdown entities.RecipeCostBreakdown) (CalculatorResult, error)
}

type CalculatorUseCase struct{}

var _ ICalculatorUseCase = (*CalculatorUseCase)(nil)

func NewCalculatorUseCase() *CalculatorUseCase {
	return &CalculatorUseCase{}
}

func (u *CalculatorUseCase) Price(breakdown entities.RecipeCostBreakdown) (CalculatorResult, error) {
	summary, err := pricing.Summarize(breakdown)
	if err != nil {
		return CalculatorResult{}, err
	}
	scenarios, err := pricing.Scenarios(breakdown)
	if err != nil {
		return CalculatorResult{}, err
	}
	return CalculatorResult{Summary: summary, Scenarios: scenarios}, nil
}
