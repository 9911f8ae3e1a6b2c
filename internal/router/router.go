package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/gradebook/internal/config"
	"github.com/stemsi/gradebook/internal/handler"
	"github.com/stemsi/gradebook/internal/middleware"
	"github.com/stemsi/gradebook/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Grade  *handler.GradeHandler
	Report *handler.ReportHandler
	System *handler.SystemHandler
}

// SetupRouter configures the read-only query API.
func SetupRouter(handlers *Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Accept", "Accept-Encoding", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", response.HeaderReportCount}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID first so the access log can include it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Brotli())

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrRouteNotFound)
	})

	// Health check.
	router.GET("/health", handlers.System.Health)

	// ─── Dataset queries ───────────────────────────────────────────────
	datasets := router.Group("/api/v1/datasets/:dbsize")
	datasets.Use(middleware.CacheControl(cfg.ReportMaxAge))
	{
		datasets.GET("/students/:code/average", handlers.Grade.StudentAverage)
		datasets.GET("/courses/:code/average", handlers.Grade.CourseAverage)
		datasets.GET("/teachers/:code/average", handlers.Grade.TeacherAverage)
		datasets.GET("/top-students", handlers.Grade.TopStudents)
	}

	// ─── Text reports ──────────────────────────────────────────────────
	reports := datasets.Group("/reports")
	{
		reports.GET("/students/:code/exams", handlers.Report.RecordedExams)
		reports.GET("/top-students", handlers.Report.TopStudents)
		reports.GET("/exams/:code", handlers.Report.ExamRecord)
	}

	return router
}
