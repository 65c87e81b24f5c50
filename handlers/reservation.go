package handlers

import (
	"net/http"
	"time"

	"frontdesk/models"
	"frontdesk/services/reservation"

	"github.com/gin-gonic/gin"
)

// ReservationHandler exposes the lifecycle orchestrator over HTTP. Handlers
// are thin: bind, call, map errors.
type ReservationHandler struct {
	Service reservation.ReservationService
}

// NewReservationHandler returns a handler bound to the given service.
func NewReservationHandler(svc reservation.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

// Create books a new reservation.
func (h *ReservationHandler) Create(c *gin.Context) {
	var in models.CreateReservationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	res, err := h.Service.Create(c.Request.Context(), in)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Get returns one reservation.
func (h *ReservationHandler) Get(c *gin.Context) {
	res, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// List returns a store's reservations, optionally filtered by status.
func (h *ReservationHandler) List(c *gin.Context) {
	storeID := c.Query("store_id")
	if storeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store_id is required"})
		return
	}
	reservations, err := h.Service.ListByStore(c.Request.Context(), storeID, c.Query("status"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// Arrivals lists the reservations due to arrive on a given day.
func (h *ReservationHandler) Arrivals(c *gin.Context) {
	storeID := c.Query("store_id")
	if storeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store_id is required"})
		return
	}
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
			return
		}
		day = parsed
	}
	arrivals, err := h.Service.ListArrivals(c.Request.Context(), storeID, day)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"arrivals": arrivals})
}

// ChangeDates moves the stay period.
func (h *ReservationHandler) ChangeDates(c *gin.Context) {
	var in models.ChangeDatesInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	res, err := h.Service.ChangeDates(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// AddRoom attaches another room.
func (h *ReservationHandler) AddRoom(c *gin.Context) {
	var in models.RoomBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	res, err := h.Service.AddRoom(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RemoveRoom detaches a room assignment.
func (h *ReservationHandler) RemoveRoom(c *gin.Context) {
	res, err := h.Service.RemoveRoom(c.Request.Context(), c.Param("id"), c.Param("assignmentID"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// EditPricing applies a staff pricing edit to one room.
func (h *ReservationHandler) EditPricing(c *gin.Context) {
	var in models.PricingEditInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	res, err := h.Service.ApplyPricingEdit(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SetDiscount edits the reservation-level discount.
func (h *ReservationHandler) SetDiscount(c *gin.Context) {
	var in models.ReservationDiscountInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	res, err := h.Service.SetReservationDiscount(c.Request.Context(), c.Param("id"), in.Discount)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RecordPayment collects a payment or refund onto the folio.
func (h *ReservationHandler) RecordPayment(c *gin.Context) {
	var in models.PaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	res, err := h.Service.RecordPayment(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
