package repository

import (
	"context"
	"errors"
	"log/slog"

	"valentine_week/internal/middleware"
	"valentine_week/internal/model"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const (
	redisProgressKey = "valentine:progress"
	redisStatusKey   = "valentine:status_checks"
)

// NewRedisClient は redis:// 形式のURLからクライアントを作成し、Ping で疎通確認します
func NewRedisClient(ctx context.Context, redisURL string, appLogger *slog.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		appLogger.Error("Error pinging Redis", slog.Any("error", err))
		_ = client.Close()
		return nil, wrapStoreError("repository.NewRedisClient", err)
	}
	appLogger.Info("Redis connection established", slog.String("addr", opts.Addr), slog.Int("db", opts.DB))
	return client, nil
}

type redisProgressRepository struct {
	client *redis.Client
}

func NewRedisProgressRepository(client *redis.Client) ProgressRepository {
	return &redisProgressRepository{client: client}
}

func (r *redisProgressRepository) Fetch(ctx context.Context) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)
	raw, err := r.client.Get(ctx, redisProgressKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logger.Error("Error fetching progress from Redis", "error", err)
		return nil, wrapStoreError("redisProgressRepository.Fetch", err)
	}
	var progress model.UserProgress
	if err := sonic.Unmarshal(raw, &progress); err != nil {
		logger.Error("Error decoding progress from Redis", "error", err)
		return nil, wrapStoreError("redisProgressRepository.Fetch", err)
	}
	return &progress, nil
}

func (r *redisProgressRepository) Create(ctx context.Context, progress *model.UserProgress) error {
	logger := middleware.GetLogger(ctx)
	if progress.Version == 0 {
		progress.Version = 1
	}
	data, err := sonic.Marshal(progress)
	if err != nil {
		return wrapStoreError("redisProgressRepository.Create", err)
	}
	ok, err := r.client.SetNX(ctx, redisProgressKey, data, 0).Result()
	if err != nil {
		logger.Error("Error creating progress in Redis", "error", err, "user_id", progress.UserID)
		return wrapStoreError("redisProgressRepository.Create", err)
	}
	if !ok {
		logger.Warn("Progress already exists, create rejected", "user_id", progress.UserID)
		return model.ErrConflict
	}
	return nil
}

func (r *redisProgressRepository) Replace(ctx context.Context, progress *model.UserProgress) error {
	logger := middleware.GetLogger(ctx)
	expected := progress.Version

	// WATCH 中にキーが変更されると EXEC が失敗し redis.TxFailedErr になる
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, redisProgressKey).Bytes()
		if errors.Is(err, redis.Nil) {
			return model.ErrNotFound
		}
		if err != nil {
			return err
		}
		var current model.UserProgress
		if err := sonic.Unmarshal(raw, &current); err != nil {
			return err
		}
		if current.Version != expected {
			return model.ErrConflict
		}

		next := *progress
		next.Version = expected + 1
		data, err := sonic.Marshal(&next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, redisProgressKey, data, 0)
			return nil
		})
		return err
	}, redisProgressKey)

	switch {
	case err == nil:
		progress.Version = expected + 1
		return nil
	case errors.Is(err, model.ErrNotFound):
		return model.ErrNotFound
	case errors.Is(err, model.ErrConflict), errors.Is(err, redis.TxFailedErr):
		logger.Warn("Progress version mismatch on replace", "version", expected)
		return model.ErrConflict
	default:
		logger.Error("Error replacing progress in Redis", "error", err, "version", expected)
		return wrapStoreError("redisProgressRepository.Replace", err)
	}
}

func (r *redisProgressRepository) DeleteAll(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)
	n, err := r.client.Del(ctx, redisProgressKey).Result()
	if err != nil {
		logger.Error("Error deleting progress in Redis", "error", err)
		return wrapStoreError("redisProgressRepository.DeleteAll", err)
	}
	logger.Debug("Progress deleted", "rows", n)
	return nil
}

type redisStatusRepository struct {
	client *redis.Client
}

func NewRedisStatusRepository(client *redis.Client) StatusRepository {
	return &redisStatusRepository{client: client}
}

func (r *redisStatusRepository) Create(ctx context.Context, status *model.StatusCheck) error {
	logger := middleware.GetLogger(ctx)
	data, err := sonic.Marshal(status)
	if err != nil {
		return wrapStoreError("redisStatusRepository.Create", err)
	}
	if err := r.client.RPush(ctx, redisStatusKey, data).Err(); err != nil {
		logger.Error("Error creating status check in Redis", "error", err, "client_name", status.ClientName)
		return wrapStoreError("redisStatusRepository.Create", err)
	}
	return nil
}

func (r *redisStatusRepository) List(ctx context.Context, limit int) ([]*model.StatusCheck, error) {
	logger := middleware.GetLogger(ctx)
	raws, err := r.client.LRange(ctx, redisStatusKey, 0, int64(limit)-1).Result()
	if err != nil {
		logger.Error("Error listing status checks in Redis", "error", err)
		return nil, wrapStoreError("redisStatusRepository.List", err)
	}
	statuses := make([]*model.StatusCheck, 0, len(raws))
	for _, raw := range raws {
		var s model.StatusCheck
		if err := sonic.UnmarshalString(raw, &s); err != nil {
			logger.Warn("Skipping undecodable status check", "error", err)
			continue
		}
		statuses = append(statuses, &s)
	}
	return statuses, nil
}
