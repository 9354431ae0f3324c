//go:generate mockery --name StatusRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"

	"valentine_week/internal/middleware"
	"valentine_week/internal/model"

	"gorm.io/gorm"
)

// StatusRepository は疎通確認レコードを保存します
type StatusRepository interface {
	Create(ctx context.Context, status *model.StatusCheck) error
	// List は作成順に最大 limit 件を返す
	List(ctx context.Context, limit int) ([]*model.StatusCheck, error)
}

type gormStatusRepository struct {
	db *gorm.DB
}

func NewGormStatusRepository(db *gorm.DB) StatusRepository {
	return &gormStatusRepository{db: db}
}

func (r *gormStatusRepository) Create(ctx context.Context, status *model.StatusCheck) error {
	logger := middleware.GetLogger(ctx)
	if err := r.db.WithContext(ctx).Create(status).Error; err != nil {
		logger.Error("Error creating status check in DB", "error", err, "client_name", status.ClientName)
		return wrapStoreError("gormStatusRepository.Create", err)
	}
	return nil
}

func (r *gormStatusRepository) List(ctx context.Context, limit int) ([]*model.StatusCheck, error) {
	logger := middleware.GetLogger(ctx)
	var statuses []*model.StatusCheck
	result := r.db.WithContext(ctx).Order("timestamp ASC").Limit(limit).Find(&statuses)
	if result.Error != nil {
		logger.Error("Error listing status checks in DB", "error", result.Error)
		return nil, wrapStoreError("gormStatusRepository.List", result.Error)
	}
	return statuses, nil
}
