package routes

import (
	"docecalc/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathIngredients = "/ingredients"
	PathRecipes     = "/recipes"
	PathQuotes      = "/quotes"
	PathCalculator  = "/calculator"
)

func addCatalogRoutes(rg *gin.RouterGroup, ingredientHandler *handlers.IngredientHandler, recipeHandler *handlers.RecipeHandler) {
	ingredients := rg.Group(PathIngredients)
	{
		ingredients.POST("", ingredientHandler.Create)
		ingredients.GET("", ingredientHandler.List)
		ingredients.GET("/:id", ingredientHandler.GetByID)
		ingredients.PUT("/:id", ingredientHandler.Update)
		ingredients.DELETE("/:id", ingredientHandler.Delete)
	}

	recipes := rg.Group(PathRecipes)
	{
		recipes.POST("", recipeHandler.Create)
		recipes.GET("", recipeHandler.List)
		recipes.GET("/:id", recipeHandler.GetByID)
		recipes.PUT("/:id", recipeHandler.Update)
		recipes.DELETE("/:id", recipeHandler.Delete)
		recipes.GET("/:id/price", recipeHandler.Price)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.Create)
		quotes.GET("", quoteHandler.List)
		quotes.GET("/:id", quoteHandler.GetByID)
		quotes.POST("/:id/items", quoteHandler.AddItem)
		quotes.DELETE("/:id/items/:index", quoteHandler.RemoveItem)
		quotes.PATCH("/:id/send", quoteHandler.Send)
		quotes.PATCH("/:id/approve", quoteHandler.Approve)
		quotes.PATCH("/:id/reject", quoteHandler.Reject)
	}
}

func addCalculatorRoutes(rg *gin.RouterGroup, calculatorHandler *handlers.CalculatorHandler) {
	calculator := rg.Group(PathCalculator)
	{
		calculator.POST("/price", calculatorHandler.Price)
	}
}
