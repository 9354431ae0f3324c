// Package handlers は HTTP リクエストを解析してサービスを呼び出し、JSON レスポンスを返します。
package handlers

import (
	"log/slog"
	"net/http"

	"valentine_week/internal/middleware"
	"valentine_week/internal/model"
	"valentine_week/internal/service"
	"valentine_week/internal/webutil"
)

// ProgressHandler は /progress 配下のリクエストを処理します
type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// GetProgress は進捗を返します。初回は初期状態を作成する
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetProgress"))

	progress, err := h.service.GetProgress(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// CompleteDay は指定された日を完了にします
func (h *ProgressHandler) CompleteDay(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CompleteDay"))

	var req model.CompleteDayRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is not valid JSON.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if err := webutil.ValidateRequest(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	progress, err := h.service.CompleteDay(r.Context(), *req.DayNumber)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// ResetProgress は進捗を削除します。次回の取得で初期状態が作られる
func (h *ProgressHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ResetProgress"))

	if err := h.service.ResetProgress(r.Context()); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Progress reset successfully"}, logger)
}
