package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/pathlight-ai/pathlight-engine/pkg/services"
)

// BuildGraphRequest for POST /api/knowledge-graph
type BuildGraphRequest struct {
	Topic string `json:"topic"`
}

// KnowledgeHandler handles knowledge-graph HTTP requests.
type KnowledgeHandler struct {
	mapper services.KnowledgeMapper
	logger *zap.Logger
}

// NewKnowledgeHandler creates a new knowledge handler.
func NewKnowledgeHandler(mapper services.KnowledgeMapper, logger *zap.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{mapper: mapper, logger: logger}
}

// RegisterRoutes registers the knowledge handler's routes on the given mux.
func (h *KnowledgeHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/knowledge-graph", h.Build)
}

// Build handles POST /api/knowledge-graph. Blank topics are rejected here;
// the mapper itself is total over non-empty topics.
func (h *KnowledgeHandler) Build(w http.ResponseWriter, r *http.Request) {
	var req BuildGraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_input", "invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_input", "topic is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	graph, err := h.mapper.BuildGraph(r.Context(), req.Topic)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, graph); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
