package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"frontdesk/config"
	"frontdesk/models"
	"frontdesk/services/reservation"
	"frontdesk/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitNoShowWorker runs the async worker in background.
func InitNoShowWorker(resSvc reservation.ReservationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeNoShowSweep, handleNoShowTask(resSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[NoShowWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NoShowWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NoShowWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleNoShowTask(resSvc reservation.ReservationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.NoShowPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NoShowHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		res, err := resSvc.Get(ctx, p.ReservationID)
		if err != nil {
			log.Printf("[NoShowHandler] ⚠️ Failed to load reservation %s: %v", p.ReservationID, err)
			return err
		}

		// Guests who checked in, cancelled or already left need no sweep.
		if res.Status != models.StatusPending && res.Status != models.StatusConfirmed {
			log.Printf("[NoShowHandler] ℹ️ Reservation %s is %s, skipping sweep", res.ID, res.Status)
			return nil
		}

		log.Printf("[NoShowHandler] ⏰ Marking reservation %s as no-show", res.ID)
		if _, err := resSvc.MarkNoShow(ctx, res.ID); err != nil {
			log.Printf("[NoShowHandler] ❌ Failed to mark no-show for %s: %v", res.ID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[NoShowWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
