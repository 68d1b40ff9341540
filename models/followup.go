package models

// FollowupPayload is the queued nudge for an enquiry that stalled while the
// supervisor was still collecting booking details.
type FollowupPayload struct {
	UserID    string   `json:"userId"`
	SessionID string   `json:"sessionId"`
	Missing   []string `json:"missing"`
	AskedAt   string   `json:"askedAt"`
}
