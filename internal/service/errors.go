package service

import (
	"errors"

	"valentine_week/internal/model"
)

// storeAppError はリポジトリのエラーをクライアント向けの AppError に変換します。
// 接続できない場合は STORE_UNAVAILABLE (503) になる。
func storeAppError(message string, err error) *model.AppError {
	if errors.Is(err, model.ErrStoreUnavailable) {
		return model.NewAppError("STORE_UNAVAILABLE", "The data store is currently unavailable.", "", err)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", message, "", err)
}

func progressNotFoundError(err error) *model.AppError {
	if err == nil {
		err = model.ErrNotFound
	}
	return model.NewAppError("NOT_FOUND", "Progress not found", "", err)
}

func invalidDayNumberError() *model.AppError {
	return model.NewAppError("INVALID_DAY_NUMBER", "Invalid day number", "day_number", model.ErrInvalidInput)
}
