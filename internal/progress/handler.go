package progress

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/interview-coach/internal/auth"
	"github.com/saulo-duarte/interview-coach/internal/config"
)

type Handler struct {
	service SessionService
}

func NewHandler(s SessionService) *Handler {
	return &Handler{service: s}
}

// SaveProgress godoc
//
//	@Summary	Save a completed interview session
//	@Tags		progress
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CreateSessionDTO	true	"completed session"
//	@Success	201		{object}	Session
//	@Failure	400		{object}	map[string]string
//	@Failure	401		{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/progress [post]
func (h *Handler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateSessionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body for progress")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.service.Save(r.Context(), userID, dto)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			config.Error(w, http.StatusBadRequest, strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": "))
			return
		}
		config.Error(w, http.StatusInternalServerError, "Error saving progress")
		return
	}

	config.JSON(w, http.StatusCreated, session)
}

// ListProgress godoc
//
//	@Summary	Most recent sessions, newest first
//	@Tags		progress
//	@Produce	json
//	@Success	200	{array}		Session
//	@Failure	401	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/progress [get]
func (h *Handler) ListProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sessions, err := h.service.ListRecent(r.Context(), userID)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "Error fetching progress")
		return
	}
	if sessions == nil {
		sessions = []*Session{}
	}

	config.JSON(w, http.StatusOK, sessions)
}

// GetStats godoc
//
//	@Summary	Statistics over all of the caller's sessions
//	@Tags		progress
//	@Produce	json
//	@Success	200	{object}	StatsSummary
//	@Failure	401	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/progress/stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	stats, err := h.service.Stats(r.Context(), userID)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "Error fetching statistics")
		return
	}

	config.JSON(w, http.StatusOK, stats)
}

// GetSession godoc
//
//	@Summary	One session owned by the caller
//	@Tags		progress
//	@Produce	json
//	@Param		id	path		string	true	"session id"
//	@Success	200	{object}	Session
//	@Failure	401	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/progress/{id} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	session, err := h.service.GetByID(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			config.Error(w, http.StatusNotFound, "Session not found")
			return
		}
		log.WithError(err).Error("Failed to fetch session")
		config.Error(w, http.StatusInternalServerError, "Error fetching session")
		return
	}

	config.JSON(w, http.StatusOK, session)
}
