package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tour-backend/auth"
	"tour-backend/controllers"
	"tour-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles everything SetupRouter wires up.
type Controllers struct {
	Destinations *controllers.DestinationController
	Packages     *controllers.PackageController
	Activities   *controllers.ActivityController
	Blog         *controllers.BlogController
	Reviews      *controllers.ReviewController
	Auth         *controllers.AuthController
	Upload       *controllers.UploadController
	Dashboard    *controllers.DashboardController
}

func SetupRouter(ctrl Controllers, sessions *auth.Manager, uploadDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", uploadDir)

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	adminOnly := middleware.AdminRequired(sessions)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", ctrl.Auth.Login)
			authRoutes.GET("/session", ctrl.Auth.Session)
			authRoutes.POST("/logout", ctrl.Auth.Logout)
		}

		destinations := api.Group("/destinations")
		{
			destinations.GET("", ctrl.Destinations.GetDestinations)
			destinations.GET("/:id", ctrl.Destinations.GetDestinationByID)
			destinations.POST("", adminOnly, ctrl.Destinations.CreateDestination)
			destinations.PUT("/:id", adminOnly, ctrl.Destinations.UpdateDestination)
			destinations.DELETE("/:id", adminOnly, ctrl.Destinations.DeleteDestination)
		}

		packages := api.Group("/packages")
		{
			packages.GET("", ctrl.Packages.GetPackages)
			packages.GET("/:id", ctrl.Packages.GetPackageByID)
			packages.POST("", adminOnly, ctrl.Packages.CreatePackage)
			packages.PUT("/:id", adminOnly, ctrl.Packages.UpdatePackage)
			packages.DELETE("/:id", adminOnly, ctrl.Packages.DeletePackage)
		}

		activities := api.Group("/activities")
		{
			activities.GET("", ctrl.Activities.GetActivities)
			activities.GET("/:id", ctrl.Activities.GetActivityByID)
			activities.POST("", adminOnly, ctrl.Activities.CreateActivity)
			activities.PUT("/:id", adminOnly, ctrl.Activities.UpdateActivity)
			activities.DELETE("/:id", adminOnly, ctrl.Activities.DeleteActivity)
		}

		blog := api.Group("/blog")
		{
			blog.GET("", ctrl.Blog.GetBlogPosts)
			blog.GET("/:id", ctrl.Blog.GetBlogPostByID)
			blog.POST("", adminOnly, ctrl.Blog.CreateBlogPost)
			blog.PUT("/:id", adminOnly, ctrl.Blog.UpdateBlogPost)
			blog.DELETE("/:id", adminOnly, ctrl.Blog.DeleteBlogPost)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", ctrl.Reviews.GetReviews)
			reviews.GET("/:id", ctrl.Reviews.GetReviewByID)

			// Visitors submit reviews straight from the site.
			reviews.POST("", ctrl.Reviews.CreateReview)

			reviews.PUT("/:id", adminOnly, ctrl.Reviews.UpdateReview)
			reviews.DELETE("/:id", adminOnly, ctrl.Reviews.DeleteReview)
		}

		api.POST("/upload", adminOnly, ctrl.Upload.Upload)
		api.GET("/admin/stats", adminOnly, ctrl.Dashboard.GetStats)
	}

	return r
}
