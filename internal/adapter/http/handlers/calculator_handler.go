package handlers

import (
	"errors"
	"net/http"

	request "docecalc/internal/adapter/http/dto/request"
	response "docecalc/internal/adapter/http/dto/response"
	"docecalc/internal/domain/entities"
	"docecalc/internal/usecase"
	"docecalc/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCalculatorPayload = pkg.NewDomainErrorSimple("INVALID_CALCULATOR_INPUT", "Invalid calculator payload", http.StatusBadRequest)

// CalculatorHandler prices an ad-hoc breakdown without persisting anything.
// It backs the "Calculadora" screen of the shell.

type CalculatorHandler struct {
	usecase usecase.ICalculatorUseCase
}

func NewCalculatorHandler(uc usecase.ICalculatorUseCase) *CalculatorHandler {
	return &CalculatorHandler{usecase: uc}
}

func (h *CalculatorHandler) Price(c *gin.Context) {
	var payload request.BreakdownRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCalculatorPayload.HTTPStatus, errInvalidCalculatorPayload.ToHTTPError())
		return
	}

	breakdown, err := payload.ToBreakdown()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_CALCULATOR_INPUT", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Price(breakdown)
	if err != nil {
		appErr := mapCalculatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSummary(result.Summary, result.Scenarios))
}

func mapCalculatorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_CALCULATOR_INPUT", "Invalid calculator input", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
