package payment

import (
	"context"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// CollectorService turns a collected front-desk payment into a folio
// Transaction. Settlement is out of engine scope: card payments go through
// the processor here, cash is just recorded, and the resulting transaction is
// handed to the persistence layer by the orchestrator.
type CollectorService interface {
	Collect(ctx context.Context, reservationID string, in models.PaymentInput) (*models.Transaction, error)
}

// DefaultCollectorService implements CollectorService with Stripe on the card
// path.
type DefaultCollectorService struct {
	Logger *zap.Logger
}

// Collect validates the input and produces a transaction record.
func (s *DefaultCollectorService) Collect(ctx context.Context, reservationID string, in models.PaymentInput) (*models.Transaction, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	txnType := in.Type
	if txnType == "" {
		txnType = models.TxnPayment
	}
	switch txnType {
	case models.TxnPayment, models.TxnRefund, models.TxnAdjustment:
	default:
		return nil, fmt.Errorf("unsupported transaction type %q", txnType)
	}

	txn := models.Transaction{
		ID:        uuid.New().String(),
		Amount:    in.Amount,
		Method:    in.Method,
		Type:      txnType,
		Reference: in.Reference,
		CreatedAt: time.Now(),
	}

	switch in.Method {
	case models.MethodCard:
		if txnType == models.TxnPayment && txn.Reference == "" {
			ref, err := s.createCardIntent(reservationID, in.Amount)
			if err != nil {
				return nil, err
			}
			txn.Reference = ref
		}
	case models.MethodCash:
		if txn.Reference == "" {
			txn.Reference = "cash-" + txn.ID[:8]
		}
	default:
		return nil, fmt.Errorf("unsupported payment method %q", in.Method)
	}

	s.Logger.Info("payment collected",
		zap.String("reservationID", reservationID),
		zap.String("type", txn.Type),
		zap.String("method", txn.Method),
		zap.Float64("amount", txn.Amount),
	)
	return &txn, nil
}

// createCardIntent registers the charge with the processor and returns its
// reference. Amounts are in major currency units; Stripe wants minor units.
func (s *DefaultCollectorService) createCardIntent(reservationID string, amount float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(config.AppConfig.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}
	params.AddMetadata("reservation_id", reservationID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("card payment failed: %w", err)
	}
	return pi.ID, nil
}
