package routes

import (
	"github.com/IshuIsSleepy/KhanaKhalo/configs"
	"github.com/IshuIsSleepy/KhanaKhalo/controllers"
	"github.com/IshuIsSleepy/KhanaKhalo/middlewares"
	"github.com/IshuIsSleepy/KhanaKhalo/repository"
	"github.com/IshuIsSleepy/KhanaKhalo/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "success"}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	uniRepo := repository.NewUniversityRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, uniRepo, cfg.JWTSecret, cfg.JWTTTL)
	vendorSvc := services.NewVendorService(db, vendorRepo, menuRepo, userRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, vendorRepo)
	reviewSvc := services.NewReviewService(db, reviewRepo, vendorRepo, menuRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	vendorCtrl := controllers.NewVendorController(vendorSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)

	// Public
	r.POST("/register/", authCtrl.Register)
	r.POST("/login/", authCtrl.Login)

	// Authenticated
	auth := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		auth.GET("/", vendorCtrl.Home)
		auth.POST("/logout/", authCtrl.Logout)
		auth.GET("/me/", authCtrl.Me)

		auth.GET("/vendor/:id/", vendorCtrl.Menu)
		auth.GET("/vendor/:id/reviews/", reviewCtrl.ListForVendor)

		auth.POST("/create-order/", orderCtrl.Create)
		auth.GET("/my-orders/", orderCtrl.ListForMe)
		auth.GET("/orders/:id/", orderCtrl.Detail)

		auth.POST("/reviews/", reviewCtrl.Create)
	}

	// Vendor owner surface
	owner := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "vendor"))
	{
		owner.GET("/vendor-dashboard/", orderCtrl.Dashboard)
		owner.POST("/update-order/:id/", orderCtrl.UpdateStatus)
		owner.POST("/my-vendor/menu/", vendorCtrl.CreateMenuItem)
		owner.PATCH("/my-vendor/menu/:id/", vendorCtrl.UpdateMenuItem)
	}
}
