package routes

import (
	"time"

	"github.com/WangRL15/Health-Management-Web-Application/controllers"
	"github.com/WangRL15/Health-Management-Web-Application/middlewares"
	"github.com/WangRL15/Health-Management-Web-Application/repository"
	"github.com/WangRL15/Health-Management-Web-Application/services"
	"github.com/WangRL15/Health-Management-Web-Application/sessions"
	"github.com/WangRL15/Health-Management-Web-Application/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Logger       zerolog.Logger
	Store        *repository.Store
	Sessions     sessions.Store
	Signer       *utils.SessionSigner
	SessionTTL   time.Duration
	CookieSecure bool
	// Hub is optional; a nil hub disables /realtime broadcasts but keeps the route.
	Hub *services.RealtimeHub
}

func SetupRouter(d Dependencies) *gin.Engine {
	hub := d.Hub
	if hub == nil {
		hub = services.NewRealtimeHub()
	}

	authSvc := services.NewAuthService(d.Store.Users, d.Sessions)
	authCtl := controllers.NewAuthController(authSvc, d.Signer, d.SessionTTL, d.CookieSecure)
	userCtl := controllers.NewUserController(services.NewProfileService(d.Store.Users))
	analyticsCtl := controllers.NewAnalyticsController(services.NewAnalyticsService(d.Store.DietLogs, d.Store.Exercises))
	realtimeCtl := controllers.NewRealtimeController(hub)

	workouts := controllers.NewEntryController(
		services.NewEntryService(d.Store.Workouts, hub, "workout"),
		services.ParseWorkout, "workouts", "workout", "Workout added successfully")
	diet := controllers.NewEntryController(
		services.NewEntryService(d.Store.DietLogs, hub, "diet"),
		services.ParseDietLog, "diet_logs", "diet_log", "Diet log added successfully")
	exercise := controllers.NewEntryController(
		services.NewEntryService(d.Store.Exercises, hub, "exercise"),
		services.ParseExerciseLog, "exercise_logs", "exercise_log", "Exercise log added successfully")
	goals := controllers.NewEntryController(
		services.NewEntryService(d.Store.Goals, hub, "goal"),
		services.ParseHealthGoal, "goals", "goal", "Health goal added successfully")

	r := gin.New()
	r.Use(middlewares.RequestLogger(d.Logger), gin.Recovery())
	r.Use(middlewares.CookiePolicy(d.CookieSecure), middlewares.SessionLoader(d.Signer, d.Sessions))
	r.NoRoute(controllers.NotFound)

	r.GET("/health", controllers.Health)
	r.GET("/", authCtl.Index)
	r.GET("/register", authCtl.RegisterPage)
	r.POST("/register", authCtl.Register)
	r.GET("/login", authCtl.LoginPage)
	r.POST("/login", authCtl.Login)
	r.GET("/logout", authCtl.Logout)

	// Everything below needs a live session
	protected := r.Group("/")
	protected.Use(middlewares.RequireLogin())
	{
		protected.GET("/profile", userCtl.GetProfile)
		protected.POST("/profile", userCtl.UpdateProfile)

		protected.GET("/workout", workouts.List)
		protected.POST("/workout", workouts.Create)
		protected.GET("/diet", diet.List)
		protected.POST("/diet", diet.Create)
		protected.GET("/exercise", exercise.List)
		protected.POST("/exercise", exercise.Create)
		protected.GET("/goals", goals.List)
		protected.POST("/goals", goals.Create)

		protected.GET("/analysis", analyticsCtl.GetAnalysis)
		protected.GET("/realtime", realtimeCtl.Stream)
	}

	return r
}
