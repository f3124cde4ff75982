package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskWelcome is the job type name stored in Redis.
	TaskWelcome = "email:welcome"
)

// WelcomeEmailPayload is the JSON payload of the welcome email task.
type WelcomeEmailPayload struct {
	To string `json:"to"`
}

// NewWelcomeEmailTask constructs the task sent after a user registers.
//
// It is retried up to 3 times, runs on the "default" queue and is killed
// after 30 seconds.
func NewWelcomeEmailTask(to string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{To: to})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
