package question

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/interview-coach/internal/aigateway"
	"github.com/saulo-duarte/interview-coach/internal/config"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuestions godoc
//
//	@Summary	Generate interview questions
//	@Tags		questions
//	@Accept		json
//	@Produce	json
//	@Param		body	body		GenerateRequest	true	"topic, difficulty and optional count"
//	@Success	200		{object}	GenerateResponse
//	@Failure	400		{object}	map[string]string
//	@Failure	401		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/questions/generate [post]
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for question generation")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		writeServiceError(w, log, err, "Error generating questions", "Failed to parse questions from AI")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

// EvaluateAnswer godoc
//
//	@Summary	Score an answer
//	@Tags		questions
//	@Accept		json
//	@Produce	json
//	@Param		body	body		EvaluateRequest	true	"question, answer, topic, difficulty"
//	@Success	200		{object}	Evaluation
//	@Failure	400		{object}	map[string]string
//	@Failure	401		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/questions/evaluate [post]
func (h *Handler) EvaluateAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for answer evaluation")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	eval, err := h.service.EvaluateAnswer(r.Context(), req)
	if err != nil {
		writeServiceError(w, log, err, "Error evaluating answer", "Failed to parse evaluation from AI")
		return
	}

	config.JSON(w, http.StatusOK, eval)
}

// ListTopics godoc
//
//	@Summary	Suggested topics and difficulty levels
//	@Tags		questions
//	@Produce	json
//	@Success	200	{object}	TopicsResponse
//	@Security	BearerAuth
//	@Router		/questions/topics [get]
func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Topics())
}

// writeServiceError maps validation failures to 400. Gateway and parse
// failures share status 500 and differ only in message and log detail.
func writeServiceError(w http.ResponseWriter, log *logrus.Entry, err error, gatewayMsg, parseMsg string) {
	var (
		valErr   *ValidationError
		parseErr *ParseError
		gwErr    *aigateway.Error
	)

	switch {
	case errors.As(err, &valErr):
		log.WithField("field", valErr.Field).Warn(valErr.Error())
		config.Error(w, http.StatusBadRequest, valErr.Error())
	case errors.As(err, &parseErr):
		log.WithError(parseErr.Err).WithField("raw", parseErr.Raw).Errorf("Failed to parse %s from model output", parseErr.Target)
		config.Error(w, http.StatusInternalServerError, parseMsg)
	case errors.As(err, &gwErr):
		log.WithError(gwErr.Err).WithFields(logrus.Fields{
			"provider": gwErr.Provider,
			"model":    gwErr.Model,
		}).Error("Completion service failed")
		config.Error(w, http.StatusInternalServerError, gatewayMsg)
	default:
		log.WithError(err).Error(gatewayMsg)
		config.Error(w, http.StatusInternalServerError, gatewayMsg)
	}
}
