package router

import (
	"nhatro/api"
	"nhatro/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter đăng ký toàn bộ route của ứng dụng
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	r.Use(cors.New(corsConfig))

	apiGroup := r.Group("/api")
	{
		roomHandler := api.NewRoomHandler()
		rooms := apiGroup.Group("/rooms")
		{
			rooms.GET("", roomHandler.List)
			rooms.POST("", roomHandler.Create)
			rooms.GET("/:id", roomHandler.Get)
			rooms.PUT("/:id", roomHandler.Update)
			rooms.DELETE("/:id", roomHandler.Delete)
		}

		tenantHandler := api.NewTenantHandler()
		tenants := apiGroup.Group("/tenants")
		{
			tenants.GET("", tenantHandler.List)
			tenants.POST("", tenantHandler.Create)
			tenants.GET("/:id", tenantHandler.Get)
			tenants.PUT("/:id", tenantHandler.Update)
			tenants.DELETE("/:id", tenantHandler.Delete)
		}

		contractHandler := api.NewContractHandler()
		contracts := apiGroup.Group("/contracts")
		{
			contracts.GET("", contractHandler.List)
			contracts.GET("/stats", contractHandler.Stats)
			contracts.POST("", contractHandler.Create)
			contracts.GET("/:id", contractHandler.Get)
			contracts.PUT("/:id", contractHandler.Update)
			contracts.DELETE("/:id", contractHandler.Delete)
		}

		invoiceHandler := api.NewInvoiceHandler()
		invoices := apiGroup.Group("/invoices")
		{
			invoices.GET("", invoiceHandler.List)
			invoices.POST("", invoiceHandler.Create)
			invoices.GET("/:id", invoiceHandler.Get)
			invoices.PUT("/:id", invoiceHandler.Update)
			invoices.DELETE("/:id", invoiceHandler.Delete)
		}

		maintenanceHandler := api.NewMaintenanceHandler()
		maintenance := apiGroup.Group("/maintenance")
		{
			maintenance.GET("", maintenanceHandler.List)
			maintenance.POST("", maintenanceHandler.Create)
			maintenance.GET("/:id", maintenanceHandler.Get)
			maintenance.PUT("/:id", maintenanceHandler.Update)
			maintenance.DELETE("/:id", maintenanceHandler.Delete)
		}

		userHandler := api.NewUserHandler()
		users := apiGroup.Group("/users")
		{
			users.GET("", userHandler.List)
			users.GET("/stats", userHandler.Stats)
			users.POST("", userHandler.Create)
			users.GET("/:id", userHandler.Get)
			users.PUT("/:id", userHandler.Update)
			users.PATCH("/:id/status", userHandler.UpdateStatus)
			users.DELETE("/:id", userHandler.Delete)
		}

		transactionHandler := api.NewTransactionHandler()
		finances := apiGroup.Group("/finances")
		{
			finances.GET("/transactions", transactionHandler.List)
			finances.POST("/transactions", transactionHandler.Create)
			finances.GET("/transactions/:id", transactionHandler.Get)
			finances.PUT("/transactions/:id", transactionHandler.Update)
			finances.DELETE("/transactions/:id", transactionHandler.Delete)

			finances.GET("/summary", transactionHandler.Summary)
			finances.GET("/categories", transactionHandler.Categories)
			finances.GET("/monthly", transactionHandler.Monthly)
		}

		reportHandler := api.NewReportHandler()
		reportsGroup := apiGroup.Group("/reports")
		{
			reportsGroup.GET("/summary", reportHandler.Summary)
			reportsGroup.GET("/revenue", reportHandler.Revenue)
			reportsGroup.GET("/occupancy", reportHandler.Occupancy)
			reportsGroup.GET("/export/excel", reportHandler.ExportExcel)
		}
	}

	settings := r.Group("/settings")
	{
		roomTypeHandler := api.NewRoomTypeHandler()
		roomTypes := settings.Group("/room-types")
		{
			roomTypes.GET("", roomTypeHandler.List)
			roomTypes.POST("", roomTypeHandler.Create)
			roomTypes.GET("/:id", roomTypeHandler.Get)
			roomTypes.PUT("/:id", roomTypeHandler.Update)
			roomTypes.DELETE("/:id", roomTypeHandler.Delete)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}
