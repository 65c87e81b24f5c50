package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeNoShowSweep = "reservation:no_show_sweep"

// NoShowPayload identifies the reservation a sweep task checks.
type NoShowPayload struct {
	ReservationID string `json:"reservation_id"`
}

// Scheduler enqueues deferred lifecycle work. The orchestrator only knows
// this interface; the asynq client lives behind it.
type Scheduler interface {
	ScheduleNoShowSweep(reservationID string, runAt time.Time) error
}

// AsynqScheduler implements Scheduler over an asynq client.
type AsynqScheduler struct {
	Client *asynq.Client
}

// ScheduleNoShowSweep enqueues a sweep for the given reservation at the
// check-in night cutoff.
func (s *AsynqScheduler) ScheduleNoShowSweep(reservationID string, runAt time.Time) error {
	b, err := json.Marshal(NoShowPayload{ReservationID: reservationID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeNoShowSweep, b)
	_, err = s.Client.Enqueue(task, asynq.ProcessAt(runAt))
	return err
}
