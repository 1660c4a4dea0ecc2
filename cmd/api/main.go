package main

import (
	_ "lmnts_studio/docs"
	"lmnts_studio/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           9LMNTS Studio Leads API
// @version         1.0
// @description     Lead capture funnel (wizard, submission pipeline, upsells) and admin listing backed by DynamoDB with a local SQLite backup log.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  info@9lmnts.studio

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
