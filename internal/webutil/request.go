package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"valentine_week/internal/model"
)

// maxBodyBytes はリクエストボディの上限
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディを dst にデコードします。
// 空のボディ、不正なJSON、未知のフィールドは model.ErrInvalidInput になる。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if !errors.Is(err, io.EOF) {
			slog.Debug("Error decoding JSON body", slog.Any("error", err))
		}
		return model.ErrInvalidInput
	}
	return nil
}
