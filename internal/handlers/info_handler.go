package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"valentine_week/internal/config"
	"valentine_week/internal/middleware"
	"valentine_week/internal/model"
	"valentine_week/internal/webutil"
)

// rootMessage は API ルートが返すメッセージ
const rootMessage = "Valentine's Week App API"

// Pinger はストアへの疎通確認を行います (repository.Backend が実装)
type Pinger interface {
	Ping(ctx context.Context) error
}

// InfoHandler は API 情報とヘルスチェックを返します
type InfoHandler struct {
	pinger Pinger
}

func NewInfoHandler(pinger Pinger) *InfoHandler {
	return &InfoHandler{pinger: pinger}
}

func (h *InfoHandler) Root(w http.ResponseWriter, r *http.Request) {
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: rootMessage}, middleware.GetLogger(r.Context()))
}

// Health はストアに Ping し、失敗時は 503 を返します
func (h *InfoHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			logger.Error("Health check failed: could not ping store", slog.Any("error", err))
			webutil.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
			}, logger)
			return
		}
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": config.AppName,
		"version": config.AppVersion,
	}, logger)
}
