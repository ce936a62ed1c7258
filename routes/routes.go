package routes

import (
	"github.com/mindkhichdi/diabeticks-sub000/controllers"
	"github.com/mindkhichdi/diabeticks-sub000/middlewares"
	"github.com/mindkhichdi/diabeticks-sub000/services"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Slots        *services.SlotService
	Doses        *services.DoseService
	Celebrations *services.CelebrationTracker
	Push         *services.PushService
	Hub          *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	slotCtl := controllers.NewSlotController(d.Slots)
	doseCtl := controllers.NewDoseController(d.Doses, d.Celebrations)
	adhCtl := controllers.NewAdherenceController(d.Doses)
	rtCtl := controllers.NewRealtimeController(d.Hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)

		user.GET("/slots", slotCtl.GetSlots)
		user.PUT("/slots/:slotId", slotCtl.UpdateSlot)

		user.POST("/doses", doseCtl.RecordDose)
		user.GET("/doses", doseCtl.ListDoses)

		user.GET("/adherence/day", adhCtl.GetDay)
		user.GET("/adherence/month", adhCtl.GetMonth)

		user.GET("/alerts", controllers.ListAlerts)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
	}

	if d.Push != nil {
		devCtl := controllers.NewDeviceController(d.Push)
		user.POST("/devices", devCtl.Register)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", rtCtl.AlertsWS)
	}

	return r
}
