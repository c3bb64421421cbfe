// Package docs provides Swagger documentation for the API.
package docs

// @title Repurposer UI API
// @version 1.0
// @description Form UI that sends videos to a clip workflow webhook and shows the returned clips
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.one-green.io/support
// @contact.email support@one-green.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https
