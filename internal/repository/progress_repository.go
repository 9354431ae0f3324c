//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"

	"valentine_week/internal/middleware"
	"valentine_week/internal/model"

	"gorm.io/gorm"
)

// progressSingletonKey は唯一の進捗ドキュメントを識別するキー
const progressSingletonKey = "valentine_week"

// ProgressRepository は唯一の進捗ドキュメントの永続化を担います
type ProgressRepository interface {
	// Fetch は現在のドキュメントを返す。存在しない場合は (nil, nil)
	Fetch(ctx context.Context) (*model.UserProgress, error)
	// Create は新規ドキュメントを保存する。既に存在する場合は model.ErrConflict
	Create(ctx context.Context, progress *model.UserProgress) error
	// Replace はドキュメント全体を置き換える。progress.Version が保存済みの値と一致しない場合は
	// model.ErrConflict、ドキュメントが存在しない場合は model.ErrNotFound。成功時は Version を進める
	Replace(ctx context.Context, progress *model.UserProgress) error
	// DeleteAll はドキュメントを削除する。存在しなくてもエラーにならない
	DeleteAll(ctx context.Context) error
}

type gormProgressRepository struct {
	db *gorm.DB
}

func NewGormProgressRepository(db *gorm.DB) ProgressRepository {
	return &gormProgressRepository{db: db}
}

func (r *gormProgressRepository) Fetch(ctx context.Context) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.UserProgress
	result := r.db.WithContext(ctx).Where("singleton_key = ?", progressSingletonKey).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.Error("Error fetching progress from DB", "error", result.Error)
		return nil, wrapStoreError("gormProgressRepository.Fetch", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) Create(ctx context.Context, progress *model.UserProgress) error {
	logger := middleware.GetLogger(ctx)
	progress.SingletonKey = progressSingletonKey
	if progress.Version == 0 {
		progress.Version = 1
	}
	result := r.db.WithContext(ctx).Create(progress)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Progress already exists, create rejected", "user_id", progress.UserID)
			return model.ErrConflict
		}
		logger.Error("Error creating progress in DB", "error", result.Error, "user_id", progress.UserID)
		return wrapStoreError("gormProgressRepository.Create", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) Replace(ctx context.Context, progress *model.UserProgress) error {
	logger := middleware.GetLogger(ctx)
	expected := progress.Version

	// version が一致した行だけを更新する (compare-and-swap)
	result := r.db.WithContext(ctx).
		Model(&model.UserProgress{}).
		Where("singleton_key = ? AND version = ?", progressSingletonKey, expected).
		Updates(map[string]interface{}{
			"user_id":       progress.UserID,
			"days":          progress.Days,
			"replay_mode":   progress.ReplayMode,
			"all_completed": progress.AllCompleted,
			"created_at":    progress.CreatedAt,
			"updated_at":    progress.UpdatedAt,
			"version":       expected + 1,
		})
	if result.Error != nil {
		logger.Error("Error replacing progress in DB", "error", result.Error, "version", expected)
		return wrapStoreError("gormProgressRepository.Replace", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.UserProgress{}).Where("singleton_key = ?", progressSingletonKey).Count(&count).Error; err != nil {
			logger.Error("Error checking progress existence in DB", "error", err)
			return wrapStoreError("gormProgressRepository.Replace", err)
		}
		if count == 0 {
			return model.ErrNotFound
		}
		logger.Warn("Progress version mismatch on replace", "version", expected)
		return model.ErrConflict
	}

	progress.Version = expected + 1
	return nil
}

func (r *gormProgressRepository) DeleteAll(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.UserProgress{})
	if result.Error != nil {
		logger.Error("Error deleting progress in DB", "error", result.Error)
		return wrapStoreError("gormProgressRepository.DeleteAll", result.Error)
	}
	logger.Debug("Progress deleted", "rows", result.RowsAffected)
	return nil
}
