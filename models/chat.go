package models

// ChatRequest is the payload coming from the frontend into /chat.
type ChatRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ChatResponse is what the handler returns to the frontend.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}
