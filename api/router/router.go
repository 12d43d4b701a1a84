package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ankoehn/ai-content-writer/api/handlers"
	"github.com/ankoehn/ai-content-writer/api/middleware"
	_ "github.com/ankoehn/ai-content-writer/docs"
	"github.com/ankoehn/ai-content-writer/services"
	"github.com/ankoehn/ai-content-writer/web"
)

func New(svc *services.ContentService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Browser form
	r.SetHTMLTemplate(web.Templates())
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/contents", handlers.GenerateContentHandler(svc))
		api.GET("/contents", handlers.ListContentsHandler(svc))
		api.GET("/contents/export", handlers.ExportContentsHandler(svc))
		api.GET("/contents/:id", handlers.GetContentHandler(svc))
		api.DELETE("/contents/:id", handlers.DeleteContentHandler(svc))
	}

	return r
}
