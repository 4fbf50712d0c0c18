package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mcoot/clubregistry/internal/api/apierr"
	"github.com/mcoot/clubregistry/internal/middleware"
)

// Recovery creates panic recovery middleware for the API.
// A panic becomes a 500 JSON error response.
func Recovery(logger *slog.Logger, errs *apierr.Writer) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, r *http.Request, v any) {
		err, ok := v.(error)
		if !ok {
			err = fmt.Errorf("%v", v)
		}
		errs.WriteInternal(w, r, err)
	})
}
