package routes

import (
	"review-requester/config"
	"review-requester/controllers"
	"review-requester/middleware"
	"review-requester/monitor"
	"review-requester/services"
	"review-requester/templates"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// NewHandlers builds the controller set over db.
func NewHandlers(db *gorm.DB, settings *config.Settings, mailer services.MailSender) *controllers.Handlers {
	return &controllers.Handlers{
		Reviewers:    services.NewReviewerService(db, settings.EmailDomain),
		Languages:    services.NewLanguageService(db),
		Reviews:      services.NewReviewService(db),
		Leaderboards: services.NewLeaderboardService(db),
		Notifier:     services.NewReviewNotifier(mailer),
	}
}

// NewEngine assembles the gin engine: middleware, templates, API, UI and
// operational routes.
func NewEngine(db *gorm.DB, settings *config.Settings, mailer services.MailSender) *gin.Engine {
	router := gin.New()

	router.Use(gin.LoggerWithWriter(config.LogWriter))
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORSMiddleware(settings.AllowedOrigins))

	router.SetHTMLTemplate(templates.Load())

	// Operational routes
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	monitor.RegisterMonitorPage(router)
	monitor.RegisterLogsRoute(router, settings.MonitorToken, config.LogFilePath())

	SetupRoutes(router, NewHandlers(db, settings, mailer), db, settings.JWTSecret)
	return router
}
