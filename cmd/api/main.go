package main

import (
	_ "docecalc/docs"
	"docecalc/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           DoceCalc Pricing API
// @version         1.0
// @description     Pricing and quote engine for confectioners (ingredients, recipes, quotes) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description User (tenant) identifier forwarded by the application shell.

func main() {
	routes.Run()
}
