package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/mcoot/clubregistry/internal/api/response"
)

// maxBodyBytes caps request bodies read by the API
const maxBodyBytes = 100 << 10

// RootHandler answers the acknowledgement endpoints at /
type RootHandler struct {
	logger *slog.Logger
}

// NewRootHandler creates a new root handler
func NewRootHandler(logger *slog.Logger) *RootHandler {
	return &RootHandler{logger: logger}
}

// Get handles GET /
func (h *RootHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.Text(w, http.StatusOK, "A GET request")
}

// Post handles POST /. The body is logged and otherwise ignored.
func (h *RootHandler) Post(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err == nil {
		h.logger.Debug("root post received", slog.String("body", string(body)))
	}

	response.Text(w, http.StatusOK, "POST request received.")
}

// Health handles GET /health
func (h *RootHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
