package apierr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mcoot/clubregistry/internal/api/response"
	"github.com/mcoot/clubregistry/internal/model"
	"github.com/mcoot/clubregistry/internal/services/registry"
)

// Messages for fixed error responses
const (
	MessageUserNotFound   = "User not found"
	MessageInvalidRequest = "Invalid request body"
	MessageServerError    = "Server error"
)

// ErrorResponse is the JSON body of a 500 response
type ErrorResponse struct {
	Error string `json:"error"`
}

// httpError is a client error with a fixed status and plain-text message
type httpError struct {
	status  int
	message string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.message
}

// NewInvalidRequestError creates a 400 error with the given message
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// Writer turns errors into HTTP responses.
// Client errors are plain text; anything unexpected is a 500 with a JSON body
// whose message is hidden in production.
type Writer struct {
	production bool
	logger     *slog.Logger
}

// NewWriter creates a Writer
func NewWriter(production bool, logger *slog.Logger) *Writer {
	return &Writer{
		production: production,
		logger:     logger,
	}
}

// WriteError writes an error response to the response writer
func (wr *Writer) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var he *httpError
	var ve *registry.ValidationError
	switch {
	case errors.As(err, &he):
		response.Text(w, he.status, he.message)
	case errors.As(err, &ve):
		response.Text(w, http.StatusBadRequest, ve.Reason)
	case errors.Is(err, model.ErrUserNotFound):
		response.Text(w, http.StatusNotFound, MessageUserNotFound)
	default:
		wr.WriteInternal(w, r, err)
	}
}

// WriteInternal writes a 500 response for an unexpected error
func (wr *Writer) WriteInternal(w http.ResponseWriter, r *http.Request, err error) {
	message := MessageServerError
	if !wr.production {
		message = err.Error()
		wr.logger.Error("internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	}

	response.JSON(w, http.StatusInternalServerError, ErrorResponse{Error: message})
}
