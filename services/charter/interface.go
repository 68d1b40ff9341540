package charter

import (
	"context"

	"yachtmatch/catalog"
	"yachtmatch/models"
	ai "yachtmatch/services/intelligence"

	"go.uber.org/zap"
)

// PipelineService runs one full planning turn: interpret the brief, fan out
// the three planning steps, compile the plan with deterministic pricing, and
// render the final itinerary. Each stage writes its output into the
// session's named slot as it completes; the caller persists the session.
type PipelineService interface {
	Run(ctx context.Context, brief string, sess *models.Session) (string, error)
}

// DefaultPipelineService implements PipelineService against an injected
// reasoning engine and the immutable catalog.
type DefaultPipelineService struct {
	Engine      ai.Engine
	Catalog     *catalog.Catalog
	CompanyName string
	Logger      *zap.Logger
}
