package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/akashasahu07/Linkedin-Clone/handlers"
	"github.com/akashasahu07/Linkedin-Clone/middleware"
)

// SetupRouter wires the HTTP surface. Only /api/signup, /api/login and the
// feed listing are public; everything else sits behind the auth gate.
func SetupRouter(h *handlers.Handler, requireAuth gin.HandlerFunc, allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "Linkedin-Clone API running",
			"service": "healthy",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	api := router.Group("/api")

	// Public routes
	api.POST("/signup", h.Signup)
	api.POST("/login", h.Login)
	api.GET("/posts", h.ListPosts)

	// Protected routes
	protected := api.Group("")
	protected.Use(requireAuth)

	protected.GET("/me", h.Me)
	protected.POST("/posts", h.CreatePost)
	protected.POST("/posts/:id/like", h.LikePost)
	protected.POST("/posts/:id/comment", h.CommentPost)
	protected.PUT("/posts/:id", h.UpdatePost)
	protected.DELETE("/posts/:id", h.DeletePost)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(404, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
