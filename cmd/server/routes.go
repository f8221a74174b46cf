package main

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blood-link.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler   *handlers.AuthHandler
	sosHandler    *handlers.SOSHandler
	reportHandler *handlers.ReportHandler
	sessionAuth   gin.HandlerFunc
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Public routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "blood-link", "status": "ok"})
	})
	r.POST("/signup", d.authHandler.Signup)
	r.POST("/login", d.authHandler.Login)
	r.GET("/logout", d.authHandler.Logout)

	// Session-protected routes
	authed := r.Group("/", d.sessionAuth)
	{
		authed.GET("/home", d.authHandler.Home)
		authed.GET("/sosrequest", d.sosHandler.Raise)
		authed.GET("/accept/:id", d.sosHandler.Accept)
		authed.GET("/upload_report", d.reportHandler.UploadForm)
		authed.POST("/upload_report", d.reportHandler.Upload)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerHealthRoute(r *gin.Engine, db *sql.DB) {
	r.GET("/health", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
