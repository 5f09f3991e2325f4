package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/AdityaSah2030/Attendance-System/internal/config"
	"github.com/AdityaSah2030/Attendance-System/internal/handler"
	"github.com/AdityaSah2030/Attendance-System/internal/middleware"
	"github.com/AdityaSah2030/Attendance-System/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Class   *handler.ClassHandler
	Session *handler.SessionHandler
	WS      *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Loading a class parses a whole workbook; keep a lid on it per IP.
	loadLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── Classes ───────────────────────────────────────────────────────
	api := router.Group("/api/v1")
	{
		api.POST("/classes", loadLimiter.Middleware(), handlers.Class.LoadClass)
		api.POST("/classes/upload", loadLimiter.Middleware(), handlers.Class.UploadClass)
		api.GET("/classes", handlers.Class.ListClasses)
		api.GET("/classes/:name/students", handlers.Class.ListStudents)

		// ─── Sessions ──────────────────────────────────────────────────
		api.POST("/classes/:name/session", handlers.Session.OpenSession)
		api.GET("/classes/:name/session", handlers.Session.GetSession)
		api.POST("/classes/:name/session/toggle", handlers.Session.Toggle)
		api.POST("/classes/:name/session/save", handlers.Session.SaveSession)
	}

	// ─── WebSocket ─────────────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	{
		ws.GET("/classes/:name/session/stream", handlers.WS.SessionStream)
	}

	return router
}
