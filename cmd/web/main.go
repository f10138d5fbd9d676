// @title           Marketplace API
// @version         1.0
// @description     REST API for user accounts, sessions, markets, products and categories.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @BasePath        /api

package main

import "marketplace_backend/internal/app"

func main() {
	app.Run()
}
