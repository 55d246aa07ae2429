package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Tharak23/deep-fake/internal/interfaces/http/handlers"
	"github.com/Tharak23/deep-fake/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	verificationHandler *handlers.VerificationHandler
	adminHandler        *handlers.AdminHandler
	storageHandler      *handlers.StorageHandler
	blogHandler         *handlers.BlogHandler
	userHandler         *handlers.UserHandler
	authMiddleware      gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, X-Session-ID, Idempotency-Key")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoutes(r *gin.Engine, h *handlers.HealthHandler) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Profile and researcher verification routes (protected)
		user := v1.Group("/user")
		user.Use(d.authMiddleware)
		{
			user.PUT("/profile", d.userHandler.UpdateProfile)
			user.POST("/request-verification", middleware.IdempotencyMiddleware(), d.verificationHandler.Submit)
			user.GET("/request-verification", d.verificationHandler.GetStatus)
		}

		// User directory (protected; the usecase enforces the admin gate)
		v1.GET("/users", d.authMiddleware, d.userHandler.ListUsers)

		// Admin review routes (protected; the usecase enforces the admin gate)
		admin := v1.Group("/verification-requests")
		admin.Use(d.authMiddleware)
		{
			admin.GET("", d.adminHandler.ListVerificationRequests)
			admin.POST("", middleware.IdempotencyMiddleware(), d.adminHandler.ReviewVerificationRequest)
		}

		// Storage routes (protected)
		storage := v1.Group("/storage")
		storage.Use(d.authMiddleware)
		{
			storage.POST("/upload", d.storageHandler.Upload)
			storage.GET("/files", d.storageHandler.ListFiles)
			storage.GET("/file/:id", d.storageHandler.GetFile)
			storage.GET("/file/:id/download", d.storageHandler.DownloadFile)
			storage.DELETE("/file/:id", d.storageHandler.DeleteFile)
		}

		// Blog routes (public read, protected write)
		blog := v1.Group("/blog")
		{
			blog.GET("", d.blogHandler.ListPosts)
			blog.GET("/:id", d.blogHandler.GetPost)
			blog.POST("", d.authMiddleware, d.blogHandler.CreatePost)
		}
	}
}
