package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careerbridge/job-portal-api/internal/auth"
	"github.com/careerbridge/job-portal-api/internal/middleware"
	"github.com/careerbridge/job-portal-api/internal/models"
	"github.com/careerbridge/job-portal-api/internal/services"
	"github.com/careerbridge/job-portal-api/internal/storage"
)

// RouterConfig bundles everything the route table needs.
type RouterConfig struct {
	DB         *gorm.DB
	Tokens     *auth.TokenManager
	Store      storage.ObjectStore
	BcryptCost int
}

// NewRouter builds the gin engine with CORS and the full route table. Kept
// separate from main so tests can run requests against the real router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	users := services.NewUserService(cfg.DB, cfg.BcryptCost)
	jobs := services.NewJobService(cfg.DB)
	applications := services.NewApplicationService(cfg.DB)
	stats := services.NewStatsService(cfg.DB)

	authHandler := NewAuthHandler(users, cfg.Tokens)
	jobHandler := NewJobHandler(jobs)
	applicationHandler := NewApplicationHandler(applications, users, cfg.Store)
	adminHandler := NewAdminHandler(users, jobs, stats)
	statsHandler := NewStatsHandler(stats)

	protect := middleware.Protect(cfg.Tokens, cfg.DB)
	employerOnly := middleware.Authorize(models.RoleEmployer)
	jobseekerOnly := middleware.Authorize(models.RoleJobSeeker)
	adminOnly := middleware.Authorize(models.RoleAdmin)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)
		api.GET("/stats", statsHandler.Public)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", protect, authHandler.Me)
			authRoutes.PUT("/profile", protect, authHandler.UpdateProfile)
			authRoutes.GET("/user/:userId", protect, authHandler.GetUser)
		}

		jobRoutes := api.Group("/jobs")
		{
			jobRoutes.GET("", jobHandler.List)
			jobRoutes.GET("/employer/my-jobs", protect, employerOnly, jobHandler.MyJobs)
			jobRoutes.GET("/:id", jobHandler.Get)
			jobRoutes.POST("", protect, employerOnly, jobHandler.Create)
			jobRoutes.PUT("/:id", protect, employerOnly, jobHandler.Update)
			jobRoutes.DELETE("/:id", protect, middleware.Authorize(models.RoleEmployer, models.RoleAdmin), jobHandler.Delete)
		}

		applicationRoutes := api.Group("/applications")
		{
			applicationRoutes.POST("/apply", protect, jobseekerOnly, applicationHandler.Apply)
			applicationRoutes.GET("/my-applications", protect, jobseekerOnly, applicationHandler.MyApplications)
			applicationRoutes.POST("/upload-resume", protect, jobseekerOnly, applicationHandler.UploadResume)
			applicationRoutes.GET("/employer/applications", protect, employerOnly, applicationHandler.EmployerApplications)
			applicationRoutes.GET("/job/:jobId", protect, employerOnly, applicationHandler.JobApplicants)
			applicationRoutes.GET("/:id", protect, employerOnly, applicationHandler.Get)
			applicationRoutes.PUT("/:id/status", protect, employerOnly, applicationHandler.UpdateStatus)
		}

		adminRoutes := api.Group("/admin", protect, adminOnly)
		{
			adminRoutes.GET("/stats", adminHandler.Dashboard)
			adminRoutes.GET("/users", adminHandler.ListUsers)
			adminRoutes.GET("/users/:id", adminHandler.GetUser)
			adminRoutes.DELETE("/users/:id", adminHandler.DeleteUser)
			adminRoutes.GET("/jobs", adminHandler.ListJobs)
		}
	}

	return r
}
