package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/campusfest/fest-api/cmd/app"
)

// @title        Campus Fest API
// @description  Festival management API: public event browsing and registration plus a role-gated admin back office.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
