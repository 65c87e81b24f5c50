package handlers

import (
	"net/http"

	"frontdesk/models"

	"github.com/gin-gonic/gin"
)

// RequestExtension asks for a later checkout.
func (h *ReservationHandler) RequestExtension(c *gin.Context) {
	var in models.ExtensionRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if in.RequestedBy == "" {
		in.RequestedBy = c.GetString("staffID")
	}
	res, err := h.Service.RequestExtension(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ApproveExtension approves a pending extension, optionally recording the
// payment collected for it.
func (h *ReservationHandler) ApproveExtension(c *gin.Context) {
	var in struct {
		Payment   *models.PaymentInput `json:"payment,omitempty"`
		DecidedBy string               `json:"decided_by"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if in.DecidedBy == "" {
		in.DecidedBy = c.GetString("staffID")
	}
	res, err := h.Service.ApproveExtension(c.Request.Context(), c.Param("id"), c.Param("extensionID"), in.DecidedBy, in.Payment)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RejectExtension declines a pending extension.
func (h *ReservationHandler) RejectExtension(c *gin.Context) {
	var in models.ExtensionRejectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if in.DecidedBy == "" {
		in.DecidedBy = c.GetString("staffID")
	}
	res, err := h.Service.RejectExtension(c.Request.Context(), c.Param("id"), c.Param("extensionID"), in)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PreviewRoomChange prices a swap without committing it.
func (h *ReservationHandler) PreviewRoomChange(c *gin.Context) {
	var in models.RoomChangeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	quote, err := h.Service.PreviewRoomChange(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CommitRoomChange executes a swap.
func (h *ReservationHandler) CommitRoomChange(c *gin.Context) {
	var in models.RoomChangeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if in.PerformedBy == "" {
		in.PerformedBy = c.GetString("staffID")
	}
	res, err := h.Service.CommitRoomChange(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
