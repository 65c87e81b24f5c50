package routes

import (
	"frontdesk/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterReservationRoutes registers all endpoints for the reservation
// lifecycle engine.
func RegisterReservationRoutes(api *gin.RouterGroup, h *handlers.ReservationHandler) {
	res := api.Group("/reservations")
	{
		res.POST("", h.Create)
		res.GET("", h.List)
		res.GET("/arrivals", h.Arrivals)
		res.GET("/:id", h.Get)

		res.PUT("/:id/dates", h.ChangeDates)
		res.POST("/:id/rooms", h.AddRoom)
		res.DELETE("/:id/rooms/:assignmentID", h.RemoveRoom)
		res.PUT("/:id/pricing", h.EditPricing)
		res.PUT("/:id/discount", h.SetDiscount)
		res.POST("/:id/payments", h.RecordPayment)

		res.POST("/:id/confirm", h.Confirm)
		res.POST("/:id/check-in", h.CheckIn)
		res.POST("/:id/check-out", h.CheckOut)
		res.POST("/:id/cancel", h.Cancel)
		res.POST("/:id/no-show", h.NoShow)
		res.POST("/:id/reopen", h.Reopen)

		res.POST("/:id/extensions", h.RequestExtension)
		res.POST("/:id/extensions/:extensionID/approve", h.ApproveExtension)
		res.POST("/:id/extensions/:extensionID/reject", h.RejectExtension)

		res.POST("/:id/room-change/preview", h.PreviewRoomChange)
		res.POST("/:id/room-change/commit", h.CommitRoomChange)
	}
}
