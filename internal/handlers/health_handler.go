package handlers

import (
	"net/http"

	"dsa_tracker/internal/config"
	"dsa_tracker/internal/middleware"
	"dsa_tracker/internal/webutil"

	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Health はセッションDBへの疎通を確認します。リモートサービスは確認しません。
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		logger.Error("Health check failed: could not ping DB", "error", err)
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Version: config.AppVersion}, logger)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: config.AppVersion}, logger)
}
