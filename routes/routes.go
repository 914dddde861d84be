package routes

import (
	"net/http"

	"fitnessmap/controllers"
	"fitnessmap/middlewares"
	"fitnessmap/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Deps is everything the router needs; main wires it.
type Deps struct {
	Auth      *services.AuthService
	Users     *services.UserService
	Fitness   *services.FitnessService
	Recs      *services.RecService
	Goals     *services.GoalService
	Alerts    *services.AlertBus
	Analytics *services.AnalyticsService
	Broker    services.Broker

	JWTSecret []byte
	Gatherer  prometheus.Gatherer
	Log       zerolog.Logger
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(d.Log))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	authCtl := controllers.NewAuthController(d.Auth)
	userCtl := controllers.NewUserController(d.Users)
	fitnessCtl := controllers.NewFitnessController(d.Fitness)
	recCtl := controllers.NewRecController(d.Recs)
	goalCtl := controllers.NewGoalController(d.Goals)
	alertCtl := controllers.NewAlertController(d.Alerts)
	analyticsCtl := controllers.NewAnalyticsController(d.Analytics)
	rtCtl := controllers.NewRealtimeController(d.Broker, d.Log)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware(d.JWTSecret))
	{
		protected.GET("/user/profile", userCtl.GetProfile)
		protected.PUT("/user/email", userCtl.UpdateEmail)
		protected.PUT("/user/password", userCtl.UpdatePassword)
		protected.DELETE("/user", userCtl.DeleteAccount)

		protected.POST("/fitness", fitnessCtl.Submit)
		protected.POST("/fitness/preview", fitnessCtl.Preview)
		protected.GET("/fitness", fitnessCtl.Latest)
		protected.GET("/fitness/history", fitnessCtl.History)
		protected.GET("/fitness/dashboard", recCtl.GetDashboard)
		protected.GET("/fitness/progress", analyticsCtl.GetProgress)

		protected.GET("/goals", goalCtl.GetGoals)
		protected.PUT("/goals", goalCtl.UpdateGoals)

		protected.GET("/alerts", alertCtl.ListAlerts)

		protected.GET("/ws/fitness", rtCtl.FitnessWS)
	}

	return r
}
