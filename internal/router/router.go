package router

import (
	"time"

	"github.com/onegreenvn/repurposer-ui/internal/config"
	"github.com/onegreenvn/repurposer-ui/internal/handlers"
	"github.com/onegreenvn/repurposer-ui/internal/middleware"
	"github.com/onegreenvn/repurposer-ui/internal/services"
	"github.com/onegreenvn/repurposer-ui/internal/views"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter configures the Gin router with the page and API routes
func SetupRouter(sessions *services.SessionStore, sseHub *services.SSEHub, webhook *config.WebhookConfig, server *config.ServerConfig) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.Session())
	r.Use(middleware.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.SetHTMLTemplate(views.Templates())

	uiHandler := handlers.NewUIHandler(sessions, sseHub, server.BasePath, server.HeartbeatInterval)
	apiHandler := handlers.NewAPIHandler(sessions, webhook)
	excelHandler := handlers.NewExcelHandler(sessions)

	root := r.Group(server.BasePath)
	{
		root.GET("/", uiHandler.Index)
		root.POST("/submit", uiHandler.Submit)
		root.POST("/form", uiHandler.UpdateForm)
		root.POST("/clips/:idx/copy", uiHandler.CopyClip)
		root.GET("/events", uiHandler.Events)

		root.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		logrus.Infof("Swagger UI endpoint registered at %s/swagger/index.html", server.BasePath)
	}

	// API v1 routes
	api := root.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":   "ok",
				"time":     time.Now().Format(time.RFC3339),
				"sessions": sessions.Len(),
			})
		})

		api.GET("/state", apiHandler.GetState)
		api.GET("/endpoint", apiHandler.GetEndpoint)
		api.POST("/submit", apiHandler.Submit)
		api.POST("/clips/:idx/copy", apiHandler.CopyClip)
		api.GET("/clips/export", excelHandler.ExportClips)
	}

	return r
}
