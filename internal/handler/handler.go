package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/tinybigcorp/user-service/internal/domain"
	"github.com/tinybigcorp/user-service/internal/service"
)

// Handler exposes the user service over HTTP.
type Handler struct {
	svc *service.UserService
	log *logrus.Logger
}

// NewHandler initializes a new HTTP handler.
func NewHandler(svc *service.UserService, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register attaches all user routes to the router.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/{id:[0-9]+}", h.GetUser).Methods(http.MethodGet)
	r.HandleFunc("/users/{id:[0-9]+}", h.UpdateUser).Methods(http.MethodPatch)
	r.HandleFunc("/users/{id:[0-9]+}/deactivate", h.DeactivateUser).Methods(http.MethodPost)
}

// CreateUser handles POST /users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var cmd service.CreateUserCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.svc.CreateUser(r.Context(), cmd)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, dto)
}

// GetUser handles GET /users/{id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	dto, err := h.svc.GetUserByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dto)
}

// ListUsers handles GET /users with optional skip, limit and active
// query parameters.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filter := domain.ListFilter{}
	if v := r.URL.Query().Get("skip"); v != "" {
		skip, err := strconv.Atoi(v)
		if err != nil || skip < 0 {
			h.writeError(w, http.StatusBadRequest, "invalid skip parameter")
			return
		}
		filter.Offset = skip
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			h.writeError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		filter.Limit = limit
	}
	if v := r.URL.Query().Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid active parameter")
			return
		}
		filter.IsActive = &active
	}

	dtos, err := h.svc.ListUsers(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dtos)
}

// UpdateUser handles PATCH /users/{id}.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var cmd service.UpdateUserCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := h.svc.UpdateUser(r.Context(), id, cmd)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dto)
}

// DeactivateUser handles POST /users/{id}/deactivate.
func (h *Handler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	dto, err := h.svc.DeactivateUser(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return id, true
}

// writeServiceError maps domain errors to HTTP statuses: validation to
// 400, not-found to 404, uniqueness conflicts to 409, anything else to
// a generic 500 so internals never leak to clients.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		h.writeError(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		h.writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, domain.ErrUserAlreadyExists):
		h.writeError(w, http.StatusConflict, "user with this email or username already exists")
	default:
		h.log.Errorf("Unhandled service error: %v", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
