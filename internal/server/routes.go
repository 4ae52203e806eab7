package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"whimsy/internal/auth"
	"whimsy/internal/config"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.GetEnvOrDefault("FRONTEND_URL", "http://localhost:5173")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")

	// Public endpoints
	api.POST("/register", s.authHandler.Register)
	api.POST("/login", s.authHandler.Login)
	api.GET("/health", s.healthHandler)

	// Everything below requires a valid bearer token
	protected := api.Group("")
	protected.Use(auth.RequireAuth(s.verifier))
	{
		protected.GET("/verify", s.authHandler.Verify)
		protected.GET("/sessions", s.sessionsHandler.List)
		protected.POST("/sessions", s.sessionsHandler.Create)
		protected.PATCH("/sessions/:id", s.sessionsHandler.Update)
		protected.DELETE("/sessions/:id", s.sessionsHandler.Delete)
	}

	return r
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "OK",
		"database": s.db.Health(c.Request.Context()),
	})
}
