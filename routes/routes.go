package routes

import (
	"procurement-api/controllers"
	"procurement-api/middleware"
	"procurement-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			// Supplier self-service: registration and token-guarded quote submission
			public.POST("/suppliers/register", controllers.RegisterSupplier)
			public.POST("/suppliers/quote", controllers.SubmitQuote)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Procurement API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Notifications
			protected.GET("/notifications", controllers.GetNotifications)
			protected.GET("/notifications/counter", controllers.GetNotificationCounter)
			protected.PATCH("/notifications/:id/read", controllers.MarkNotificationRead)
			protected.PATCH("/notifications/read-all", controllers.MarkAllNotificationsRead)

			// Dashboard
			protected.GET("/dashboard/stats", controllers.GetDashboardStats)

			// Attachments
			documents := protected.Group("/documents")
			{
				documents.POST("/upload", controllers.UploadDocument)
				documents.GET("/:entityType/:entityId", controllers.GetEntityDocuments)
				documents.GET("/download/:fileId", controllers.DownloadDocument)
				documents.DELETE("/:fileId", controllers.DeleteDocument)
			}

			// Procurement requests
			brfqs := protected.Group("/brfqs")
			{
				brfqs.GET("", controllers.GetBRFQs)
				brfqs.GET("/:id", controllers.GetBRFQ)

				// Buyers draft, publish and maintain their requests
				brfqs.POST("", middleware.RequireRole(models.UserTypeBuyer), controllers.CreateBRFQ)
				brfqs.PUT("/:id", middleware.RequireRole(models.UserTypeBuyer), controllers.UpdateBRFQ)
				brfqs.DELETE("/:id", middleware.RequireRole(models.UserTypeBuyer), controllers.DeleteBRFQ)
				brfqs.POST("/:id/publish", middleware.RequireRole(models.UserTypeBuyer), controllers.PublishBRFQ)
				brfqs.POST("/:id/suppliers", middleware.RequireRole(models.UserTypeBuyer, models.UserTypeAdmin), controllers.LinkBRFQSuppliers)

				// Only admin can approve/reject
				brfqs.POST("/:id/approve", middleware.RequireRole(models.UserTypeAdmin), controllers.ApproveBRFQ)
				brfqs.POST("/:id/reject", middleware.RequireRole(models.UserTypeAdmin), controllers.RejectBRFQ)

				// Quotes and awards per BRFQ
				brfqs.GET("/:id/quotes", middleware.RequireRole(models.UserTypeAdmin, models.UserTypeBuyer), controllers.GetBRFQQuotes)
				brfqs.POST("/:id/award", middleware.RequireRole(models.UserTypeAdmin), controllers.CreateAward)
			}

			// Awards
			awards := protected.Group("/awards")
			awards.Use(middleware.RequireRole(models.UserTypeAdmin))
			{
				awards.GET("/:awardId", controllers.GetAward)
				awards.POST("/:awardId/decide", controllers.DecideAward)
			}

			// Supplier administration
			suppliers := protected.Group("/supplier")
			{
				suppliers.GET("", middleware.RequireRole(models.UserTypeAdmin, models.UserTypeBuyer), controllers.GetSuppliers)
				suppliers.GET("/:supplierId", middleware.RequireRole(models.UserTypeAdmin, models.UserTypeBuyer), controllers.GetSupplier)
				suppliers.POST("/:supplierId/approve", middleware.RequireRole(models.UserTypeAdmin), controllers.ApproveSupplier)
				suppliers.POST("/:supplierId/reject", middleware.RequireRole(models.UserTypeAdmin), controllers.RejectSupplier)
			}

			// Quote invites
			protected.POST("/quote-invites", middleware.RequireRole(models.UserTypeAdmin), controllers.IssueQuoteInvite)

			// Modification requests
			modifications := protected.Group("/modification-requests")
			{
				modifications.POST("", middleware.RequireRole(models.UserTypeBuyer), controllers.CreateModification)
				modifications.GET("", middleware.RequireRole(models.UserTypeAdmin, models.UserTypeBuyer), controllers.GetModifications)
				modifications.GET("/:id", middleware.RequireRole(models.UserTypeAdmin, models.UserTypeBuyer), controllers.GetModification)
			}

			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.UserTypeAdmin))
			{
				admin.POST("/modification-requests/:id/approve", controllers.ApproveModification)
				admin.POST("/modification-requests/:id/reject", controllers.RejectModification)

				// Reference data (carriers, incoterms, currencies, uoms,
				// urgencies, shipping-methods, payment-terms, categories)
				admin.GET("/reference/:table", controllers.ListReference)
				admin.POST("/reference/:table", controllers.CreateReference)
				admin.DELETE("/reference/:table/:id", controllers.DeleteReference)
			}
		}
	}
}
