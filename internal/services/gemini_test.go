package services

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{"candidate without content", &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
		}, ""},
		{"joins text parts", &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{
				genai.Text("Sow after "),
				genai.Blob{MIMEType: "image/png"},
				genai.Text("the first rain."),
			}}}},
		}, "Sow after the first rain."},
		{"first candidate only", &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("first")}}},
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("second")}}},
			},
		}, "first"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, extractText(tc.resp))
		})
	}
}

func TestNewGeminiService_RequiresAPIKey(t *testing.T) {
	svc, err := NewGeminiService(context.Background(), "", "gemini-1.5-flash")
	require.Error(t, err)
	require.Nil(t, svc)
	require.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestNewGeminiService_KeepsModelName(t *testing.T) {
	svc, err := NewGeminiService(context.Background(), "test-key", "gemini-2.0-flash")
	require.NoError(t, err)
	defer svc.Close()

	require.Equal(t, "gemini-2.0-flash", svc.ModelName())
}
