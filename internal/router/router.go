// Package router sets up HTTP routes for the API.
package router

import (
	_ "ceslar/swagger" // Import generated swagger docs

	"ceslar/internal/authz"
	"ceslar/internal/handler"
	"ceslar/internal/middleware"
	"ceslar/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	ChurchHandler     *handler.ChurchHandler
	EventHandler      *handler.EventHandler
	SermonHandler     *handler.SermonHandler
	MinistryHandler   *handler.MinistryHandler
	MembershipHandler *handler.MembershipHandler
	QuestionHandler   *handler.QuestionHandler
	UploadHandler     *handler.UploadHandler
	HealthHandler     *handler.HealthHandler

	TokenManager   auth.TokenManager
	ClaimsResolver middleware.ClaimsResolver

	// RateLimiter may be nil, which disables rate limiting.
	RateLimiter        *redis_rate.Limiter
	RateLimitPerMinute int

	CORSAllowedOrigins []string
	MetricsEnabled     bool
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics())
	}
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", cfg.HealthHandler.Health)
	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	requireAuth := middleware.Auth(cfg.TokenManager, cfg.ClaimsResolver)
	optionalAuth := middleware.OptionalAuth(cfg.TokenManager, cfg.ClaimsResolver)
	limit := func(scope string) gin.HandlerFunc {
		return middleware.RateLimit(cfg.RateLimiter, scope, cfg.RateLimitPerMinute)
	}

	editors := authz.ChurchRoleIn(authz.EditorRoles...)
	// Members join or leave themselves; church admins add and remove others.
	selfOrChurchAdmin := authz.AnyOf(authz.OwnerOrAdmin("userId"), authz.ChurchAdmin())
	contentDeleters := authz.AnyOf(
		authz.ChurchRoleIn(authz.PastoralRoles...),
		authz.HasAnyPermission(authz.PermDeleteAll),
	)

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", limit("register"), cfg.AuthHandler.Register)
			authRoutes.POST("/login", limit("login"), cfg.AuthHandler.Login)
			authRoutes.GET("/me", requireAuth, cfg.AuthHandler.Me)
		}

		// User routes (protected)
		users := v1.Group("/users")
		users.Use(requireAuth)
		{
			users.GET("", middleware.Gate("users.list", authz.SystemAdmin()), cfg.UserHandler.ListUsers)
			users.GET("/:userId", middleware.Gate("users.get", authz.OwnerOrAdmin("userId")), cfg.UserHandler.GetUser)
			users.PUT("/:userId", middleware.Gate("users.update", authz.OwnerOrAdmin("userId")), cfg.UserHandler.UpdateUser)
			users.DELETE("/:userId", middleware.Gate("users.delete", authz.SystemAdmin()), cfg.UserHandler.DeleteUser)
			users.PUT("/:userId/access", middleware.Gate("users.access", authz.SystemAdmin()), cfg.UserHandler.UpdateAccess)
		}

		// Church routes
		churches := v1.Group("/churches")
		{
			churches.GET("", limit("public"), cfg.ChurchHandler.ListChurches)
			churches.GET("/cursor", limit("public"), cfg.ChurchHandler.ListChurchesCursor)
			churches.GET("/:churchId", limit("public"), cfg.ChurchHandler.GetChurch)

			churches.POST("", requireAuth, middleware.Gate("churches.create", authz.SystemAdmin()), cfg.ChurchHandler.CreateChurch)
			churches.PUT("/:churchId", requireAuth, middleware.Gate("churches.update", authz.ChurchAdmin()), cfg.ChurchHandler.UpdateChurch)
			churches.DELETE("/:churchId", requireAuth, middleware.Gate("churches.delete", authz.AnyOf(
				authz.SystemAdmin(),
				authz.HasAnyPermission(authz.PermDeleteAll),
			)), cfg.ChurchHandler.DeleteChurch)

			// Church members
			members := churches.Group("/:churchId/members")
			members.Use(requireAuth)
			{
				members.GET("", middleware.Gate("members.list", authz.ChurchRoleIn(authz.MemberManagers...)), cfg.MembershipHandler.ListMembers)
				members.POST("", middleware.Gate("members.join", selfOrChurchAdmin), cfg.MembershipHandler.Join)
				members.PUT("/:userId", middleware.Gate("members.update", authz.ChurchAdmin()), cfg.MembershipHandler.UpdateMember)
				members.DELETE("/:userId", middleware.Gate("members.remove", selfOrChurchAdmin), cfg.MembershipHandler.RemoveMember)
			}

			// Church media
			uploads := churches.Group("/:churchId/uploads")
			uploads.Use(requireAuth, middleware.Gate("uploads", editors))
			{
				uploads.POST("", cfg.UploadHandler.CreateUpload)
				uploads.DELETE("", cfg.UploadHandler.DeleteUpload)
			}
		}

		// Church content
		events := v1.Group("/events")
		{
			events.GET("", optionalAuth, cfg.EventHandler.ListEvents)
			events.GET("/:id", optionalAuth, cfg.EventHandler.GetEvent)
			events.POST("", requireAuth, middleware.Gate("events.create", editors), cfg.EventHandler.CreateEvent)
			events.PUT("/:id", requireAuth, middleware.Gate("events.update", editors), cfg.EventHandler.UpdateEvent)
			events.DELETE("/:id", requireAuth, middleware.Gate("events.delete", contentDeleters), cfg.EventHandler.DeleteEvent)
		}

		sermons := v1.Group("/sermons")
		{
			sermons.GET("", optionalAuth, cfg.SermonHandler.ListSermons)
			sermons.GET("/:id", optionalAuth, cfg.SermonHandler.GetSermon)
			sermons.POST("", requireAuth, middleware.Gate("sermons.create", editors), cfg.SermonHandler.CreateSermon)
			sermons.PUT("/:id", requireAuth, middleware.Gate("sermons.update", editors), cfg.SermonHandler.UpdateSermon)
			sermons.DELETE("/:id", requireAuth, middleware.Gate("sermons.delete", contentDeleters), cfg.SermonHandler.DeleteSermon)
		}

		ministries := v1.Group("/ministries")
		{
			ministries.GET("", optionalAuth, cfg.MinistryHandler.ListMinistries)
			ministries.GET("/:id", optionalAuth, cfg.MinistryHandler.GetMinistry)
			ministries.POST("", requireAuth, middleware.Gate("ministries.create", editors), cfg.MinistryHandler.CreateMinistry)
			ministries.PUT("/:id", requireAuth, middleware.Gate("ministries.update", editors), cfg.MinistryHandler.UpdateMinistry)
			ministries.DELETE("/:id", requireAuth, middleware.Gate("ministries.delete", contentDeleters), cfg.MinistryHandler.DeleteMinistry)
		}

		// Contact-form questions
		questions := v1.Group("/questions")
		{
			questions.POST("", limit("questions"), cfg.QuestionHandler.SubmitQuestion)
			questions.GET("", requireAuth, middleware.Gate("questions.list", authz.AnyOf(
				authz.HasAnyPermission(authz.PermReadQuestions),
				authz.ChurchAdmin(),
			)), cfg.QuestionHandler.ListQuestions)
			questions.PUT("/:id/answer", requireAuth, middleware.Gate("questions.answer", authz.ChurchRoleIn(authz.PastoralRoles...)), cfg.QuestionHandler.AnswerQuestion)
			questions.DELETE("/:id", requireAuth, middleware.Gate("questions.delete", authz.HasAnyPermission(authz.PermDeleteAll)), cfg.QuestionHandler.DeleteQuestion)
		}
	}

	return r
}
