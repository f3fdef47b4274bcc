package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/telemark-pro/pov-backend-go/internal/config"
	"github.com/telemark-pro/pov-backend-go/internal/handler"
	"github.com/telemark-pro/pov-backend-go/internal/middleware"
)

// SetupRouter wires middleware and routes
func SetupRouter(cfg *config.Config, pisteHandler *handler.PisteHandler, povHandler *handler.POVHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(120, time.Minute))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Piste POV API is running",
		})
	})

	auth := middleware.Auth(cfg.JWTSecret)

	api := r.Group("/api/v1")
	{
		pistes := api.Group("/pistes")
		{
			pistes.GET("", pisteHandler.ListPistes)
			pistes.POST("/extract", auth, pisteHandler.ExtractPiste)
			pistes.GET("/:id", pisteHandler.GetPiste)
			pistes.DELETE("/:id", auth, pisteHandler.DeletePiste)

			pistes.GET("/:id/pov", povHandler.GetPOV)
			pistes.GET("/:id/pov/scene", povHandler.GetPOVScene)
			pistes.GET("/:id/pov/2d", povHandler.GetFlythrough)
			pistes.GET("/:id/profile", povHandler.GetProfile)
			pistes.GET("/:id/stats", povHandler.GetStats)
		}
	}

	return r
}
