package handlers

import (
	"log/slog"
	"net/http"

	"valentine_week/internal/middleware"
	"valentine_week/internal/model"
	"valentine_week/internal/service"
	"valentine_week/internal/webutil"
)

// StatusHandler は疎通確認レコードの作成と一覧を処理します
type StatusHandler struct {
	service service.StatusService
	logger  *slog.Logger
}

func NewStatusHandler(s service.StatusService, logger *slog.Logger) *StatusHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusHandler{
		service: s,
		logger:  logger,
	}
}

func (h *StatusHandler) CreateStatusCheck(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CreateStatusCheck"))

	var req model.CreateStatusCheckRequest
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

	status, err := h.service.CreateStatusCheck(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, status, logger)
}

func (h *StatusHandler) ListStatusChecks(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListStatusChecks"))

	statuses, err := h.service.ListStatusChecks(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if statuses == nil {
		statuses = []*model.StatusCheck{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, statuses, logger)
}
