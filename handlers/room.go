package handlers

import (
	"net/http"
	"time"

	"frontdesk/models"
	"frontdesk/services/room"

	"github.com/gin-gonic/gin"
)

// RoomHandler exposes the availability search the booking flow consumes.
type RoomHandler struct {
	Inventory room.InventoryService
}

// NewRoomHandler returns a handler bound to the inventory service.
func NewRoomHandler(inv room.InventoryService) *RoomHandler {
	return &RoomHandler{Inventory: inv}
}

// Availability lists the rooms free for a date range.
func (h *RoomHandler) Availability(c *gin.Context) {
	storeID := c.Query("store_id")
	if storeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store_id is required"})
		return
	}

	checkIn, err := time.Parse("2006-01-02", c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_in must be formatted YYYY-MM-DD"})
		return
	}
	checkOut, err := time.Parse("2006-01-02", c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_out must be formatted YYYY-MM-DD"})
		return
	}
	if !checkOut.After(checkIn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_out must be after check_in"})
		return
	}

	rooms, err := h.Inventory.QueryAvailability(c.Request.Context(), storeID,
		models.StayPeriod{CheckIn: checkIn, CheckOut: checkOut},
		c.Query("exclude_reservation_id"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "availability query failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}
