package models

import "time"

// ChatTurn is one message in the conversation history.
type ChatTurn struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// SessionSlots holds the named state entries written during a pipeline run.
// Each slot is produced by exactly one step; a run overwrites all of them.
type SessionSlots struct {
	UserRequirements *BookingRequirement `json:"user_requirements,omitempty"`
	MatchedYacht     *MatchedYacht       `json:"matched_yacht_data,omitempty"`
	MatchedTheme     *ThemeRecord        `json:"matched_theme_data,omitempty"`
	SafetySummary    string              `json:"safety_summary,omitempty"`
	CombinedPlan     *CompiledPlan       `json:"combined_plan_data,omitempty"`
}

// Session is the per-user conversation record, keyed by (app, user).
type Session struct {
	SessionID  string             `json:"sessionId"`
	AppName    string             `json:"appName"`
	UserID     string             `json:"userId"`
	State      map[string]string  `json:"state"`
	Confirmed  BookingRequirement `json:"confirmed"`
	History    []ChatTurn         `json:"history"`
	Slots      SessionSlots       `json:"slots"`
	Dispatched bool               `json:"dispatched"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// AppendTurn records a message at the end of the conversation history.
func (s *Session) AppendTurn(role, text string) {
	s.History = append(s.History, ChatTurn{Role: role, Text: text, At: time.Now()})
}
