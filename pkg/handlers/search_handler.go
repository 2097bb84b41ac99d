package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/pathlight-ai/pathlight-engine/pkg/search"
)

// SearchHandler handles resource-retrieval HTTP requests.
type SearchHandler struct {
	locator *search.Locator
	logger  *zap.Logger
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(locator *search.Locator, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{locator: locator, logger: logger}
}

// RegisterRoutes registers the search handler's routes on the given mux.
func (h *SearchHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/search", h.Search)
}

// Search handles GET /api/search?topic=...
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	topic := strings.TrimSpace(r.URL.Query().Get("topic"))
	if topic == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_input", "topic is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	groups := h.locator.Search(r.Context(), topic)

	if err := WriteJSON(w, http.StatusOK, groups); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
