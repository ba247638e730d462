package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/handler"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/middleware"
)

// Setup wires all routes. The kiosk surface is public, everything under
// /admin requires a JWT.
func Setup(
	h *server.Hertz,
	userHandler *handler.UserHandler,
	chatHandler *handler.ChatHandler,
	referenceHandler *handler.ReferenceHandler,
	settingsHandler *handler.SettingsHandler,
	healthHandler *handler.HealthHandler,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Health check routes (no authentication required)
	h.GET("/ping", healthHandler.Ping)
	h.GET("/health/ready", healthHandler.Readiness)
	h.GET("/health/live", healthHandler.Liveness)

	apiV1 := h.Group("/api/v1")
	{
		// ============ Public routes (kiosk terminals) ============
		chat := apiV1.Group("/chat")
		{
			chat.POST("", chatHandler.Chat)
			chat.GET("/history/:sessionId", chatHandler.History)
			chat.POST("/reset", chatHandler.Reset)
		}

		apiV1.GET("/faqs", chatHandler.TopFaqs)

		apiV1.GET("/professors", referenceHandler.ListProfessors)
		apiV1.GET("/events", referenceHandler.ListEvents)
		apiV1.GET("/events/upcoming", referenceHandler.UpcomingEvents)
		apiV1.GET("/departments", referenceHandler.ListDepartments)
		apiV1.GET("/facilities", referenceHandler.ListFacilities)
		apiV1.GET("/settings", settingsHandler.Get)

		// ============ Auth routes ============
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.POST("/login", userHandler.Login)
			auth.POST("/refresh", userHandler.RefreshToken)
		}

		// ============ Admin routes (JWT required) ============
		admin := apiV1.Group("/admin")
		admin.Use(userHandler.AuthMiddleware())
		{
			users := admin.Group("/users")
			{
				users.GET("/me", userHandler.GetCurrentUser)
				users.GET("", userHandler.ListUsers)
				users.GET("/:id", userHandler.GetUser)
				users.DELETE("/:id", userHandler.DeleteUser)
			}

			admin.DELETE("/chat/history", chatHandler.ClearHistory)
			admin.GET("/analytics", chatHandler.Analytics)

			professors := admin.Group("/professors")
			{
				professors.POST("", referenceHandler.CreateProfessor)
				professors.PUT("/:id", referenceHandler.UpdateProfessor)
				professors.DELETE("/:id", referenceHandler.DeleteProfessor)
			}

			events := admin.Group("/events")
			{
				events.POST("", referenceHandler.CreateEvent)
				events.PUT("/:id", referenceHandler.UpdateEvent)
				events.DELETE("/:id", referenceHandler.DeleteEvent)
			}

			departments := admin.Group("/departments")
			{
				departments.POST("", referenceHandler.CreateDepartment)
				departments.PUT("/:id", referenceHandler.UpdateDepartment)
				departments.DELETE("/:id", referenceHandler.DeleteDepartment)
			}

			facilities := admin.Group("/facilities")
			{
				facilities.POST("", referenceHandler.CreateFacility)
				facilities.PUT("/:id", referenceHandler.UpdateFacility)
				facilities.DELETE("/:id", referenceHandler.DeleteFacility)
			}

			admin.PUT("/settings", settingsHandler.Update)
		}
	}
}
