package handlers

import (
	"net/http"
	"time"

	"frontdesk/services/auth"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
)

const terminalTokenDuration = 12 * time.Hour

// AuthHandler issues terminal session tokens and manages the store action PIN.
type AuthHandler struct {
	Auth *auth.DefaultAuthorizationService
}

// NewAuthHandler returns a handler bound to the authorization service.
func NewAuthHandler(a *auth.DefaultAuthorizationService) *AuthHandler {
	return &AuthHandler{Auth: a}
}

// IssueToken exchanges a valid store action PIN for a staff JWT, signing a
// front-desk terminal into a store for the shift.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var in struct {
		StoreID string `json:"store_id" binding:"required"`
		StaffID string `json:"staff_id" binding:"required"`
		Pin     string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ok, err := h.Auth.ValidateActionPin(c.Request.Context(), in.StoreID, in.Pin)
	if err != nil {
		utils.JSONError(c, http.StatusForbidden, "PIN validation failed", err.Error())
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusForbidden, "invalid action PIN", "")
		return
	}

	token, err := utils.GenerateToken(in.StaffID, in.StoreID, "staff", terminalTokenDuration)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expires_in": int(terminalTokenDuration.Seconds())})
}

// SetActionPin rotates the store's action PIN. The caller must hold a valid
// staff token for the store and present the current PIN when one is set.
func (h *AuthHandler) SetActionPin(c *gin.Context) {
	var in struct {
		CurrentPin string `json:"current_pin"`
		NewPin     string `json:"new_pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	storeID := c.GetString("storeID")
	if storeID == "" {
		utils.JSONError(c, http.StatusForbidden, "token is not scoped to a store", "")
		return
	}

	if in.CurrentPin != "" {
		ok, err := h.Auth.ValidateActionPin(c.Request.Context(), storeID, in.CurrentPin)
		if err != nil || !ok {
			utils.JSONError(c, http.StatusForbidden, "current PIN rejected", "")
			return
		}
	}

	if err := h.Auth.SetActionPin(c.Request.Context(), storeID, in.NewPin); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to set PIN", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "pin updated"})
}
