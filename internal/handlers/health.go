package handlers

import (
	"net/http"

	"saathi-backend/internal/models"
)

type HealthHandler struct {
	modelName string
}

func NewHealthHandler(modelName string) *HealthHandler {
	return &HealthHandler{modelName: modelName}
}

// Health never touches Gemini; it only reports the configured model.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{OK: true, Model: h.modelName})
}
