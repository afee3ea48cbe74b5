package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"

	"saathi-backend/internal/middleware"
	"saathi-backend/internal/models"
	"saathi-backend/internal/services"
)

const (
	ReplyEmptyRequest = "Please send a message."
	ReplyNoText       = "Could not generate a response."
	ReplyBackendError = "Backend error. Try again."
)

type replyGenerator interface {
	GenerateReply(ctx context.Context, parts ...genai.Part) (string, error)
}

type ChatHandler struct {
	generator    replyGenerator
	timeout      time.Duration
	maxBodyBytes int64
}

// NewChatHandler takes the shared Gemini service. A zero timeout or body
// limit disables that bound.
func NewChatHandler(generator replyGenerator, timeout time.Duration, maxBodyBytes int64) *ChatHandler {
	return &ChatHandler{
		generator:    generator,
		timeout:      timeout,
		maxBodyBytes: maxBodyBytes,
	}
}

// Chat relays one message (and optional image) to Gemini. Every failure
// past validation collapses into the same generic 500 reply; the detail only
// goes to the server log.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("✗ chat request %s panicked: %v\n%s", requestID, rec, debug.Stack())
			writeJSON(w, http.StatusInternalServerError, models.ChatResponse{Reply: ReplyBackendError})
		}
	}()

	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, requestID, fmt.Errorf("invalid request body: %w", err))
		return
	}

	var message, image string
	if req.Message != nil {
		message = strings.TrimSpace(*req.Message)
	}
	if req.Image != nil {
		image = *req.Image
	}

	if message == "" && !services.IsDataURI(image) {
		writeJSON(w, http.StatusBadRequest, models.ChatResponse{Reply: ReplyEmptyRequest})
		return
	}

	// An accepted request runs to completion even if the client goes away,
	// but the model call itself is bounded.
	ctx := context.WithoutCancel(r.Context())
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	reply, err := h.reply(ctx, req.History, message, image)
	if err != nil {
		h.fail(w, requestID, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

func (h *ChatHandler) reply(ctx context.Context, history []*models.HistoryEntry, message, image string) (string, error) {
	img, err := services.DecodeDataURI(image)
	if err != nil {
		return "", err
	}

	parts, err := services.BuildPrompt(history, message, img)
	if err != nil {
		return "", err
	}

	text, err := h.generator.GenerateReply(ctx, parts...)
	if err != nil {
		return "", err
	}
	if text == "" {
		return ReplyNoText, nil
	}
	return strings.TrimSpace(text), nil
}

func (h *ChatHandler) fail(w http.ResponseWriter, requestID string, err error) {
	log.Printf("✗ chat request %s failed: %v", requestID, err)
	writeJSON(w, http.StatusInternalServerError, models.ChatResponse{Reply: ReplyBackendError})
}
