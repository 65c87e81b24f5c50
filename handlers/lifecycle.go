package handlers

import (
	"net/http"

	"frontdesk/models"

	"github.com/gin-gonic/gin"
)

// Confirm moves a pending reservation to confirmed.
func (h *ReservationHandler) Confirm(c *gin.Context) {
	res, err := h.Service.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CheckIn marks arrival.
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	res, err := h.Service.CheckIn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CheckOut settles and closes the stay.
func (h *ReservationHandler) CheckOut(c *gin.Context) {
	res, err := h.Service.CheckOut(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Cancel cancels the reservation.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	res, err := h.Service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// NoShow flags an un-arrived reservation.
func (h *ReservationHandler) NoShow(c *gin.Context) {
	res, err := h.Service.MarkNoShow(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Reopen brings a closed reservation back, gated on the action PIN.
func (h *ReservationHandler) Reopen(c *gin.Context) {
	var in models.ReopenInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	res, err := h.Service.Reopen(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
