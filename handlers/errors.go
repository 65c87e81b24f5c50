package handlers

import (
	"errors"
	"net/http"

	"frontdesk/services/reservation"

	"github.com/gin-gonic/gin"
)

// respondEngineError maps the engine's typed errors onto HTTP statuses. Every
// payload carries enough context for the front desk to render an actionable
// message.
func respondEngineError(c *gin.Context, err error) {
	var (
		validation  *reservation.ValidationError
		transition  *reservation.InvalidTransitionError
		payRequired *reservation.PaymentRequiredError
		conflict    *reservation.ConflictError
		decided     *reservation.AlreadyDecidedError
		notFound    *reservation.NotFoundError
		unauthz     *reservation.UnauthorizedError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{
			"error":     "invalid status transition",
			"current":   transition.Current,
			"requested": transition.Requested,
		})
	case errors.As(err, &payRequired):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":    "payment required",
			"amount":   payRequired.Amount,
			"currency": payRequired.Currency,
		})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Message})
	case errors.As(err, &decided):
		c.JSON(http.StatusConflict, gin.H{
			"error":        "extension already decided",
			"extension_id": decided.ExtensionID,
			"status":       decided.Status,
		})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &unauthz):
		c.JSON(http.StatusForbidden, gin.H{"error": unauthz.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
	}
}
