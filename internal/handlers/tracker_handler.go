package handlers

import (
	"net/http"
	"strings"

	"dsa_tracker/internal/middleware"
	"dsa_tracker/internal/model"
	"dsa_tracker/internal/service"
	"dsa_tracker/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type TrackerHandler struct {
	service service.TrackerService
}

func NewTrackerHandler(s service.TrackerService) *TrackerHandler {
	return &TrackerHandler{service: s}
}

// GetTopics はトピック一覧を返します
func (h *TrackerHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	topics, err := h.service.ListTopics(r.Context(), session)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, topics, logger)
}

// GetTopic はトピック画面 (問題一覧と進捗) を返します
func (h *TrackerHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	topicID, err := pathParam(r, "topic_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	view, err := h.service.TopicView(r.Context(), session, topicID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

// GetDashboard はトピック別と全体の進捗を返します
func (h *TrackerHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	view, err := h.service.Dashboard(r.Context(), session)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

// ToggleProblem は問題の完了フラグを反転します
func (h *TrackerHandler) ToggleProblem(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	problemID, err := pathParam(r, "problem_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.Toggle(r.Context(), session, problemID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

func pathParam(r *http.Request, name string) (string, error) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	if value == "" {
		return "", model.NewAppError("INVALID_PATH_PARAM", name+"が指定されていません。", name, model.ErrInvalidInput)
	}
	return value, nil
}
