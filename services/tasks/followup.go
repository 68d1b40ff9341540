package tasks

import (
	"encoding/json"
	"time"

	"yachtmatch/models"

	"github.com/hibiken/asynq"
)

const TypeEnquiryFollowup = "enquiry:followup"

// NewFollowupTask builds the queued nudge for a stalled enquiry.
func NewFollowupTask(payload models.FollowupPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeEnquiryFollowup, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqFollowupScheduler enqueues follow-up tasks on the shared Redis queue.
type AsynqFollowupScheduler struct {
	Client *asynq.Client
}

func (s *AsynqFollowupScheduler) ScheduleFollowup(payload models.FollowupPayload, delay time.Duration) error {
	task, opts, err := NewFollowupTask(payload, time.Now().Add(delay))
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}
