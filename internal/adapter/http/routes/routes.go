package routes

import (
	"log"
	"strconv"

	_ "docecalc/docs" // This will be auto-generated
	"docecalc/internal/adapter/http/handlers"
	repository2 "docecalc/internal/adapter/persistence/repository"
	"docecalc/internal/infrastructure/database"
	"docecalc/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	ingredientRepo := repository2.NewIngredientDynamoRepository(ddb)
	recipeRepo := repository2.NewRecipeDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)

	ingredientUseCase := usecase.NewIngredientUseCase(ingredientRepo)
	recipeUseCase := usecase.NewRecipeUseCase(recipeRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, recipeRepo)
	calculatorUseCase := usecase.NewCalculatorUseCase()

	ingredientHandler := handlers.NewIngredientHandler(ingredientUseCase)
	recipeHandler := handlers.NewRecipeHandler(recipeUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	calculatorHandler := handlers.NewCalculatorHandler(calculatorUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Todas as rotas de negocio exigem o tenant no header X-User-ID.
	authed := v1.Group("", handlers.RequireUser())
	addCatalogRoutes(authed, ingredientHandler, recipeHandler)
	addQuoteRoutes(authed, quoteHandler)
	addCalculatorRoutes(authed, calculatorHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
