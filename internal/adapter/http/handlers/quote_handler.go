package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	request "docecalc/internal/adapter/http/dto/request"
	response "docecalc/internal/adapter/http/dto/response"
	"docecalc/internal/domain/entities"
	"docecalc/internal/usecase"
	"docecalc/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for the quote lifecycle.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	validUntil, err := payload.ResolveValidUntil()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Create(c.Request.Context(), currentUserID(c), payload.ResolveClientID(), validUntil)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote, time.Now().UTC()))
}

func (h *QuoteHandler) GetByID(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote, time.Now().UTC()))
}

// List returns the user's quotes; ?client_id= narrows to one client.
func (h *QuoteHandler) List(c *gin.Context) {
	var (
		quotes []entities.Quote
		err    error
	)
	if clientID := c.Query("client_id"); clientID != "" {
		quotes, err = h.usecase.ListByClient(c.Request.Context(), currentUserID(c), clientID)
	} else {
		quotes, err = h.usecase.ListByUser(c.Request.Context(), currentUserID(c))
	}
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes, time.Now().UTC()))
}

func (h *QuoteHandler) AddItem(c *gin.Context) {
	var payload request.QuoteItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	unitPrice, err := payload.ResolveUnitPrice()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.AddItem(c.Request.Context(), currentUserID(c), c.Param("id"), payload.ResolveRecipeID(), payload.Quantity, unitPrice)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote, time.Now().UTC()))
}

func (h *QuoteHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.RemoveItem(c.Request.Context(), currentUserID(c), c.Param("id"), index)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote, time.Now().UTC()))
}

func (h *QuoteHandler) Send(c *gin.Context) {
	h.transition(c, h.usecase.Send)
}

func (h *QuoteHandler) Approve(c *gin.Context) {
	h.transition(c, h.usecase.Approve)
}

func (h *QuoteHandler) Reject(c *gin.Context) {
	h.transition(c, h.usecase.Reject)
}

func (h *QuoteHandler) transition(c *gin.Context, op func(ctx context.Context, userID, quoteID string) (entities.Quote, error)) {
	quote, err := op(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote, time.Now().UTC()))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidValidUntil),
		errors.Is(err, entities.ErrInvalidInput),
		errors.Is(err, entities.ErrIndexOutOfRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRecipeNotFound):
		return pkg.NewDomainErrorSimple("RECIPE_NOT_FOUND", "Recipe not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrEmptyQuote):
		return pkg.NewDomainErrorSimple("EMPTY_QUOTE", "Quote has no items", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition), errors.Is(err, usecase.ErrQuoteNotEditable):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Operation not allowed in the current status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
