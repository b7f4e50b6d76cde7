package handlers

import (
	"errors"
	"net/http"

	request "docecalc/internal/adapter/http/dto/request"
	response "docecalc/internal/adapter/http/dto/response"
	"docecalc/internal/usecase"
	"docecalc/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidIngredientPayload = pkg.NewDomainErrorSimple("INVALID_INGREDIENT_INPUT", "Invalid ingredient payload", http.StatusBadRequest)

// IngredientHandler handles HTTP requests for the ingredient catalog.

type IngredientHandler struct {
	usecase usecase.IIngredientUseCase
}

func NewIngredientHandler(uc usecase.IIngredientUseCase) *IngredientHandler {
	return &IngredientHandler{usecase: uc}
}

func (h *IngredientHandler) Create(c *gin.Context) {
	var payload request.IngredientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIngredientPayload.HTTPStatus, errInvalidIngredientPayload.ToHTTPError())
		return
	}

	unit, err := payload.ResolveUnit()
	if err != nil {
		c.JSON(errInvalidIngredientPayload.HTTPStatus, errInvalidIngredientPayload.ToHTTPError())
		return
	}
	unitPrice, err := payload.ResolveUnitPrice()
	if err != nil {
		c.JSON(errInvalidIngredientPayload.HTTPStatus, errInvalidIngredientPayload.ToHTTPError())
		return
	}

	ingredient, err := h.usecase.Create(c.Request.Context(), currentUserID(c), payload.ResolveName(), unit, unitPrice)
	if err != nil {
		appErr := mapIngredientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromIngredient(ingredient))
}

func (h *IngredientHandler) GetByID(c *gin.Context) {
	ingredient, err := h.usecase.GetByID(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		appErr := mapIngredientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIngredient(ingredient))
}

func (h *IngredientHandler) List(c *gin.Context) {
	ingredients, err := h.usecase.ListByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		appErr := mapIngredientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIngredients(ingredients))
}

func (h *IngredientHandler) Update(c *gin.Context) {
	var payload request.IngredientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIngredientPayload.HTTPStatus, errInvalidIngredientPayload.ToHTTPError())
		return
	}

	unit, err := payload.ResolveUnit()
	if err != nil {
		c.JSON(errInvalidIngredientPayload.HTTPStatus, errInvalidIngredientPayload.ToHTTPError())
		return
	}
	unitPrice, err := payload.ResolveUnitPrice()
	if err != nil {
		c.JSON(errInvalidIngredientPayload.HTTPStatus, errInvalidIngredientPayload.ToHTTPError())
		return
	}

	ingredient, err := h.usecase.Update(c.Request.Context(), currentUserID(c), c.Param("id"), payload.ResolveName(), unit, unitPrice)
	if err != nil {
		appErr := mapIngredientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIngredient(ingredient))
}

func (h *IngredientHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		appErr := mapIngredientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapIngredientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidIngredientID),
		errors.Is(err, usecase.ErrInvalidIngredientName),
		errors.Is(err, usecase.ErrInvalidUnit):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIngredientNotFound):
		return pkg.NewDomainErrorSimple("INGREDIENT_NOT_FOUND", "Ingredient not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
