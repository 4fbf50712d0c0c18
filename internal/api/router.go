package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/clubregistry/internal/api/apierr"
	"github.com/mcoot/clubregistry/internal/api/handler"
	"github.com/mcoot/clubregistry/internal/api/middleware"
	"github.com/mcoot/clubregistry/internal/api/response"
	basemiddleware "github.com/mcoot/clubregistry/internal/middleware"
	"github.com/mcoot/clubregistry/internal/services/registry"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger   *slog.Logger
	Registry *registry.Service
	// Production hides internal error details and shortens request logs
	Production bool
	// PublicURL prefixes Location headers (optional)
	PublicURL string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	errs := apierr.NewWriter(cfg.Production, cfg.Logger)

	// Create handlers
	rootHandler := handler.NewRootHandler(cfg.Logger)
	userHandler := handler.NewUserHandler(cfg.Registry, errs, cfg.PublicURL)

	r.HandleFunc("/", rootHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/", rootHandler.Post).Methods(http.MethodPost)
	r.HandleFunc("/health", rootHandler.Health).Methods(http.MethodGet)

	// User routes
	r.HandleFunc("/user", userHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/user", userHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/user/{userId}", userHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/user/{userId}", userHandler.Delete).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)

	// Middleware wraps the whole router so unmatched routes and preflights
	// are logged and carry the same headers
	var h http.Handler = r
	h = middleware.CORS()(h)
	h = middleware.SecurityHeaders()(h)
	h = basemiddleware.Logging(cfg.Logger, !cfg.Production)(h)
	h = middleware.Recovery(cfg.Logger, errs)(h)
	return h
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	response.Text(w, http.StatusNotFound, "Cannot "+r.Method+" "+r.URL.Path)
}
