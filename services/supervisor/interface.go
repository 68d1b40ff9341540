package supervisor

import (
	"context"
	"time"

	"yachtmatch/models"
	"yachtmatch/services/charter"
	ai "yachtmatch/services/intelligence"
	"yachtmatch/services/session"

	"go.uber.org/zap"
)

// GateService is the user-facing conversation gate. Each turn it updates the
// booking checklist from the user's message and either asks exactly one
// clarifying question or, once every required detail is confirmed,
// dispatches the planning pipeline exactly once.
type GateService interface {
	HandleTurn(ctx context.Context, userID, message string) (string, *models.Session, error)
}

// FollowupScheduler queues a nudge for an enquiry that stalls mid-collection.
type FollowupScheduler interface {
	ScheduleFollowup(payload models.FollowupPayload, delay time.Duration) error
}

// DefaultGateService implements GateService.
type DefaultGateService struct {
	Engine        ai.Engine
	Sessions      session.Store
	Pipeline      charter.PipelineService
	Followups     FollowupScheduler
	FollowupDelay time.Duration
	CompanyName   string
	Logger        *zap.Logger
}
