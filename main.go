package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"

	"github.com/magscene/magsav-api/cmd/app"
)

// @title        MAGSAV API
// @version      1.3
// @description  Back office of the MAGSAV after-sales service: sociétés, commandes, planifications, véhicules and the Google Workspace integration.
//
// @contact.name   MAGSAV Support
// @contact.email  support@magsav.fr
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Execute(); err != nil {
		zap.L().Error("magsav exited with an error", zap.Error(err))
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
