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

var errInvalidRecipePayload = pkg.NewDomainErrorSimple("INVALID_RECIPE_INPUT", "Invalid recipe payload", http.StatusBadRequest)

// RecipeHandler handles HTTP requests for recipes and their pricing.

type RecipeHandler struct {
	usecase usecase.IRecipeUseCase
}

func NewRecipeHandler(uc usecase.IRecipeUseCase) *RecipeHandler {
	return &RecipeHandler{usecase: uc}
}

func (h *RecipeHandler) Create(c *gin.Context) {
	h.upsert(c, func(userID, name string, breakdown entities.RecipeCostBreakdown) (entities.Recipe, error) {
		return h.usecase.Create(c.Request.Context(), userID, name, breakdown)
	}, http.StatusCreated)
}

func (h *RecipeHandler) Update(c *gin.Context) {
	h.upsert(c, func(userID, name string, breakdown entities.RecipeCostBreakdown) (entities.Recipe, error) {
		return h.usecase.Update(c.Request.Context(), userID, c.Param("id"), name, breakdown)
	}, http.StatusOK)
}

func (h *RecipeHandler) upsert(
	c *gin.Context,
	commit func(userID, name string, breakdown entities.RecipeCostBreakdown) (entities.Recipe, error),
	successStatus int,
) {
	var payload request.RecipeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecipePayload.HTTPStatus, errInvalidRecipePayload.ToHTTPError())
		return
	}

	breakdown, err := payload.ToBreakdown()
	if err != nil {
		c.JSON(errInvalidRecipePayload.HTTPStatus, errInvalidRecipePayload.ToHTTPError())
		return
	}

	recipe, err := commit(currentUserID(c), payload.ResolveName(), breakdown)
	if err != nil {
		appErr := mapRecipeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(successStatus, response.FromRecipe(recipe))
}

func (h *RecipeHandler) GetByID(c *gin.Context) {
	recipe, err := h.usecase.GetByID(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		appErr := mapRecipeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecipe(recipe))
}

func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.usecase.ListByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		appErr := mapRecipeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecipes(recipes))
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		appErr := mapRecipeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// Price returns the derived cost view of a recipe, including the margin
// comparison scenarios.
func (h *RecipeHandler) Price(c *gin.Context) {
	price, err := h.usecase.Price(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		appErr := mapRecipeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecipePrice(price))
}

func mapRecipeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidRecipeID),
		errors.Is(err, usecase.ErrInvalidRecipeName),
		errors.Is(err, entities.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRecipeNotFound):
		return pkg.NewDomainErrorSimple("RECIPE_NOT_FOUND", "Recipe not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
