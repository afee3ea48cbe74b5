package models

// HistoryEntry is one prior turn of the conversation. Only Content reaches
// the model; Role is accepted for clients that send it and otherwise ignored.
type HistoryEntry struct {
	Role    string  `json:"role,omitempty"`
	Content *string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint.
// Image carries an inline data URI (data:<mime>;base64,<payload>).
type ChatRequest struct {
	Message *string         `json:"message"`
	History []*HistoryEntry `json:"history"`
	Image   *string         `json:"image"`
}

// ChatResponse is the reply from the AI chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

type HealthResponse struct {
	OK    bool   `json:"ok"`
	Model string `json:"model"`
}
