package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/newstalgia/backend/internal/handler"
	"github.com/newstalgia/backend/internal/middleware"
)

type Deps struct {
	DB                *gorm.DB
	JWTSecret         string
	UploadsDir        string
	AuthHandler       *handler.AuthHandler
	ProjectHandler    *handler.ProjectHandler
	PostHandler       *handler.PostHandler
	StudioHandler     *handler.StudioHandler
	ShopHandler       *handler.ShopHandler
	NewsletterHandler *handler.NewsletterHandler
	UploadHandler     *handler.UploadHandler
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(middleware.CORSMiddleware())

	// Uploaded assets are served straight from disk.
	r.Static("/uploads", deps.UploadsDir)

	api := r.Group("/api")

	// Public routes (no auth)
	{
		api.POST("/auth/login", deps.AuthHandler.Login)
		api.POST("/auth/logout", deps.AuthHandler.Logout)

		api.GET("/projects", deps.ProjectHandler.List)
		api.GET("/projects/:id", deps.ProjectHandler.GetByID)
		api.GET("/projects/:id/related", deps.ProjectHandler.Related)
		api.GET("/projects/slug/:slug", deps.ProjectHandler.GetBySlug)
		api.GET("/projects/slug/:slug/page", deps.ProjectHandler.Page)

		api.GET("/posts", deps.PostHandler.ListPublished)
		api.GET("/posts/slug/:slug", deps.PostHandler.GetBySlug)

		api.GET("/studios", deps.StudioHandler.List)
		api.GET("/studios/:id", deps.StudioHandler.Get)

		api.GET("/shop/products", deps.ShopHandler.ListProducts)

		api.POST("/newsletter/subscribe", deps.NewsletterHandler.Subscribe)
	}

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(deps.JWTSecret, deps.DB))
	{
		authed.GET("/auth/me", deps.AuthHandler.Me)
		authed.POST("/auth/refresh", deps.AuthHandler.Refresh)

		// Mutating routes share paths with the public reads; only the
		// method differs. Admin-only.
		authed.POST("/upload", middleware.RequireAdmin(), deps.UploadHandler.Upload)
		authed.POST("/projects", middleware.RequireAdmin(), deps.ProjectHandler.Create)
		authed.PUT("/projects/:id", middleware.RequireAdmin(), deps.ProjectHandler.Update)
		authed.DELETE("/projects/:id", middleware.RequireAdmin(), deps.ProjectHandler.Delete)
		authed.GET("/projects/:id/preview", middleware.RequireAdmin(), deps.ProjectHandler.Preview)

		// Management surface
		admin := authed.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/posts", deps.PostHandler.ListAll)
			admin.GET("/posts/:id", deps.PostHandler.GetByID)
			admin.POST("/posts", deps.PostHandler.Create)
			admin.PUT("/posts/:id", deps.PostHandler.Update)
			admin.DELETE("/posts/:id", deps.PostHandler.Delete)

			admin.POST("/studios", deps.StudioHandler.Create)
			admin.PUT("/studios/:id", deps.StudioHandler.Update)
			admin.DELETE("/studios/:id", deps.StudioHandler.Delete)

			admin.POST("/shop/products", deps.ShopHandler.CreateProduct)
			admin.PUT("/shop/products/:id", deps.ShopHandler.UpdateProduct)
			admin.DELETE("/shop/products/:id", deps.ShopHandler.DeleteProduct)
			admin.GET("/shop/orders", deps.ShopHandler.ListOrders)
			admin.DELETE("/shop/orders/:id", deps.ShopHandler.DeleteOrder)

			admin.GET("/newsletter/subscribers", deps.NewsletterHandler.ListSubscribers)
			admin.DELETE("/newsletter/subscribers/:id", deps.NewsletterHandler.Unsubscribe)
		}
	}
}
