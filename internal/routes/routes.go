package routes

import (
	"net/http"

	"placement_backend/internal/handlers"
	"placement_backend/internal/middleware"
	"placement_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the full API surface under /api.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Authentication
	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)
	api.POST("/logout", h.Auth.Logout)
	api.GET("/user", h.Auth.Me)

	// Job postings: browsing is public, management is admin-only.
	jobsGroup := api.Group("/jobs")
	{
		jobsGroup.GET("", h.Job.List)
		jobsGroup.GET("/:id", h.Job.Get)

		jobsAdmin := jobsGroup.Group("", middleware.RequireRole(models.UserRoleAdmin))
		{
			jobsAdmin.POST("", h.Job.Create)
			jobsAdmin.DELETE("/:id", h.Job.Delete)
		}
	}

	// Applications
	appsGroup := api.Group("/applications")
	{
		appsGroup.POST("", middleware.RequireRole(models.UserRoleStudent), h.Application.Submit)
		appsGroup.GET("/user", middleware.RequireAuth(), h.Application.ListMine)

		appsAdmin := appsGroup.Group("", middleware.RequireRole(models.UserRoleAdmin))
		{
			appsAdmin.GET("", h.Application.ListAll)
			appsAdmin.GET("/job/:jobId", h.Application.ListByJob)
			appsAdmin.PATCH("/:id/status", h.Application.UpdateStatus)
			appsAdmin.GET("/resume/:filename", h.Application.ViewResume)
		}

		// Fixed segments (user, job, resume) take priority over :id.
		appsGroup.GET("/:id", middleware.RequireAuth(), h.Application.Get)
	}

	// Profile details, owner-scoped with admin override via ?userId=.
	detailsAuth := api.Group("", middleware.RequireAuth())
	{
		detailsAuth.GET("/academic-details", h.Details.GetAcademic)
		detailsAuth.PUT("/academic-details", h.Details.UpsertAcademic)
		detailsAuth.GET("/personal-details", h.Details.GetPersonal)
		detailsAuth.PUT("/personal-details", h.Details.UpsertPersonal)
	}

	// Admin student directory
	adminGroup := api.Group("/admin", middleware.RequireRole(models.UserRoleAdmin))
	{
		adminGroup.GET("/students", h.Details.ListStudents)
		adminGroup.GET("/students/:id", h.Details.GetStudentRecord)
	}

	// Stored images are served straight from the upload store.
	api.GET("/files/*filepath", h.File.Serve)
}
