package charter

import "fmt"

// PipelineError reports a pipeline turn that cannot produce an itinerary.
// Reasoning-step failures are not locally recoverable; they propagate to the
// HTTP boundary as a generic failure.
type PipelineError struct {
	Code    string
	Step    string
	Message string
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s (%s): %s", e.Code, e.Step, e.Message)
}

func newMalformedOutputError(step string, cause error) error {
	return &PipelineError{
		Code:    "malformedModelOutput",
		Step:    step,
		Message: fmt.Sprintf("reasoning step returned unusable content: %v", cause),
	}
}

func newPlanningIncompleteError(slot string) error {
	return &PipelineError{
		Code:    "planningIncomplete",
		Step:    "PlanningFanout",
		Message: fmt.Sprintf("planning slot %q was never produced", slot),
	}
}
