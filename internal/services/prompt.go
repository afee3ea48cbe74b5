package services

import (
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"saathi-backend/internal/models"
)

// SystemInstruction always opens the prompt sent to Gemini.
const SystemInstruction = "You are Saathi, an agriculture support assistant. " +
	"Answer briefly and practically. Provide Telugu if helpful."

// BuildPrompt flattens a chat turn into the ordered parts of one
// GenerateContent call: system instruction, history contents in order, the
// trimmed message when non-empty, then the image when one is given.
func BuildPrompt(history []*models.HistoryEntry, message string, img genai.Part) ([]genai.Part, error) {
	parts := make([]genai.Part, 0, len(history)+3)
	parts = append(parts, genai.Text(SystemInstruction))

	for i, h := range history {
		if h == nil || h.Content == nil {
			return nil, fmt.Errorf("history entry %d has no content", i)
		}
		parts = append(parts, genai.Text(*h.Content))
	}

	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, genai.Text(message))
	}

	if img != nil {
		parts = append(parts, img)
	}

	return parts, nil
}
