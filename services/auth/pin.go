package auth

import (
	"context"
	"fmt"
	"time"

	"frontdesk/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Attempt throttling: after maxPinAttempts failures within the attempt
// window, further tries are refused until the window expires.
const (
	maxPinAttempts = 5
	attemptWindow  = 15 * time.Minute
)

// AuthorizationService validates the manager action PIN that gates
// privileged mutations (reopening a closed reservation, deletions).
type AuthorizationService interface {
	ValidateActionPin(ctx context.Context, storeID, pin string) (bool, error)
}

// storeSecret is the per-store credential document.
type storeSecret struct {
	StoreID       string `bson:"store_id"`
	ActionPinHash string `bson:"action_pin_hash"`
}

// DefaultAuthorizationService checks a bcrypt-hashed per-store PIN and
// throttles repeated failures through Redis.
type DefaultAuthorizationService struct {
	Coll *mongo.Collection
}

// NewAuthorizationService builds the service over the store_secrets
// collection.
func NewAuthorizationService(db *mongo.Database) *DefaultAuthorizationService {
	return &DefaultAuthorizationService{Coll: db.Collection("store_secrets")}
}

// ValidateActionPin compares the supplied PIN against the store's stored
// hash. Failures count toward the throttle; a success clears it.
func (s *DefaultAuthorizationService) ValidateActionPin(ctx context.Context, storeID, pin string) (bool, error) {
	authClient := utils.GetAuthCacheClient()
	attemptKey := fmt.Sprintf("pin_attempts:%s", storeID)

	attempts, err := authClient.Get(ctx, attemptKey).Int()
	if err == nil && attempts >= maxPinAttempts {
		utils.GetLogger().Warn("action PIN throttled", zap.String("storeID", storeID))
		return false, fmt.Errorf("too many failed PIN attempts, try again later")
	}

	var secret storeSecret
	if err := s.Coll.FindOne(ctx, bson.M{"store_id": storeID}).Decode(&secret); err != nil {
		if err == mongo.ErrNoDocuments {
			return false, fmt.Errorf("no action PIN configured for store %s", storeID)
		}
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(secret.ActionPinHash), []byte(pin)); err != nil {
		pipe := authClient.TxPipeline()
		pipe.Incr(ctx, attemptKey)
		pipe.Expire(ctx, attemptKey, attemptWindow)
		if _, err := pipe.Exec(ctx); err != nil {
			utils.GetLogger().Warn("failed to record PIN attempt", zap.Error(err))
		}
		return false, nil
	}

	authClient.Del(ctx, attemptKey)
	return true, nil
}

// SetActionPin stores a new bcrypt-hashed PIN for a store.
func (s *DefaultAuthorizationService) SetActionPin(ctx context.Context, storeID, pin string) error {
	if len(pin) < 4 {
		return fmt.Errorf("action PIN must be at least 4 digits")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}

	_, err = s.Coll.UpdateOne(ctx,
		bson.M{"store_id": storeID},
		bson.M{"$set": bson.M{"store_id": storeID, "action_pin_hash": string(hash)}},
		mongoUpsert(),
	)
	return err
}
