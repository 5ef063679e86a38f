package main

import (
	_ "freight_portal/docs"
	"freight_portal/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Freight Portal API
// @version         1.0
// @description     Customer and admin portal in front of the freight backend: quote wizard, address book, tracking, Mercado Pago payments and admin tables.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session JWT.

func main() {
	routes.Run()
}
