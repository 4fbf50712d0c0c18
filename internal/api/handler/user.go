package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/clubregistry/internal/api/apierr"
	"github.com/mcoot/clubregistry/internal/api/request"
	"github.com/mcoot/clubregistry/internal/api/response"
	"github.com/mcoot/clubregistry/internal/model"
	"github.com/mcoot/clubregistry/internal/services/registry"
)

// UserHandler handles the /user endpoints
type UserHandler struct {
	registry  *registry.Service
	errs      *apierr.Writer
	publicURL string
}

// NewUserHandler creates a new user handler.
// publicURL prefixes the Location header of created users; empty gives a relative path.
func NewUserHandler(reg *registry.Service, errs *apierr.Writer, publicURL string) *UserHandler {
	return &UserHandler{
		registry:  reg,
		errs:      errs,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// List handles GET /user
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.registry.List(r.Context())
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UsersFromModel(users))
}

// Get handles GET /user/{userId}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.UserID(mux.Vars(r)["userId"])

	user, err := h.registry.Get(r.Context(), id)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}

// Register handles POST /user
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	// An empty body is an empty registration and fails the required-field checks
	req, err := request.DecodeRegisterUser(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.errs.WriteError(w, r, apierr.NewInvalidRequestError(apierr.MessageInvalidRequest))
		return
	}

	user, err := h.registry.Register(r.Context(), req.Input())
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	response.Created(w, h.publicURL+"/user/"+string(user.ID), response.UserFromModel(user))
}

// Delete handles DELETE /user/{userId}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.UserID(mux.Vars(r)["userId"])

	if err := h.registry.Remove(r.Context(), id); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	response.NoContent(w)
}
