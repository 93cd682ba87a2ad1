package main

import "github.com/helious23/challenge-backend/cmd"

// @title           Podcast Catalog API
// @version         1.0.0
// @description     A podcast hosting and discovery API with subscriptions, likes, reviews and listening history
// @contact.name    API Support
// @contact.url     https://github.com/helious23/challenge-backend
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token, sent as "Bearer <token>"
func main() {
	cmd.Execute()
}
