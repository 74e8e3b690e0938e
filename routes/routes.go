package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"photostudio-backend/config"
	"photostudio-backend/controllers"
	"photostudio-backend/services"
	"photostudio-backend/store"
	"photostudio-backend/utils"
)

func SetupRouter(repo *store.Repository, booking *services.BookingService, reports *services.ReportService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	authController := &controllers.AuthController{Repo: repo}
	clientController := &controllers.ClientController{Repo: repo}
	photographerController := &controllers.PhotographerController{Repo: repo, Booking: booking}
	orderController := &controllers.OrderController{Repo: repo, Booking: booking, Reports: reports}
	reportController := &controllers.ReportController{Reports: reports}
	dashboardController := &controllers.DashboardController{Repo: repo, Reports: reports}

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", clientController.CreateClient)
			clients.GET("", clientController.GetClients)
			clients.GET("/find", clientController.FindClient)
		}

		// Photographer routes
		photographers := api.Group("/photographers")
		{
			photographers.POST("", photographerController.CreatePhotographer)
			photographers.GET("", photographerController.GetPhotographers)
			photographers.GET("/available", photographerController.GetAvailablePhotographers)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.POST("", orderController.CreateOrder)
			orders.GET("", orderController.GetOrders)
			orders.PUT("/:id/status", orderController.UpdateStatus)
			orders.POST("/:id/pay", orderController.PayOrder)
			orders.POST("/:id/photos", orderController.AttachPhoto)
			orders.GET("/:id/photos", orderController.GetPhotos)
		}

		// Reports routes
		api.GET("/reports/revenue", reportController.GetRevenue)

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)
	}

	return r
}
