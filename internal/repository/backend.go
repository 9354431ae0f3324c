package repository

import (
	"context"
	"fmt"
	"log/slog"

	"valentine_week/internal/config"

	"gorm.io/gorm"
)

// Backend は設定されたドライバで開いた永続化層一式です。
// 接続ハンドルを持つのは Backend (とその Repository) だけ。
type Backend struct {
	Driver   string
	Progress ProgressRepository
	Status   StatusRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping はヘルスチェック用にバックエンドへの疎通を確認します
func (b *Backend) Ping(ctx context.Context) error {
	if b.ping == nil {
		return nil
	}
	if err := b.ping(ctx); err != nil {
		return wrapStoreError("Backend.Ping", err)
	}
	return nil
}

// Close は接続を解放します
func (b *Backend) Close(ctx context.Context) error {
	if b.close == nil {
		return nil
	}
	return b.close(ctx)
}

// Open は cfg.Driver に応じて接続を確立し、Repository を組み立てます。
// RDB の場合はマイグレーションも実行する。
func Open(ctx context.Context, cfg config.DatabaseConfig, appLogger *slog.Logger) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverPostgres, config.DriverSQLite:
		db, err := NewDB(cfg.Driver, cfg.URL, appLogger)
		if err != nil {
			return nil, err
		}
		if err := Migrate(db); err != nil {
			appLogger.Error("Error migrating database", slog.Any("error", err))
			return nil, fmt.Errorf("repository.Open: migrate: %w", err)
		}
		backend, err := NewGormBackend(db)
		if err != nil {
			return nil, err
		}
		backend.Driver = cfg.Driver
		return backend, nil

	case config.DriverMongo:
		client, err := NewMongoClient(ctx, cfg.URL, appLogger)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Name)
		return &Backend{
			Driver:   cfg.Driver,
			Progress: NewMongoProgressRepository(db),
			Status:   NewMongoStatusRepository(db),
			ping:     func(ctx context.Context) error { return client.Ping(ctx, nil) },
			close:    client.Disconnect,
		}, nil

	case config.DriverRedis:
		client, err := NewRedisClient(ctx, cfg.URL, appLogger)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Driver:   cfg.Driver,
			Progress: NewRedisProgressRepository(client),
			Status:   NewRedisStatusRepository(client),
			ping:     func(ctx context.Context) error { return client.Ping(ctx).Err() },
			close:    func(context.Context) error { return client.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("repository.Open: unsupported database driver %q", cfg.Driver)
	}
}

// NewGormBackend は既に開いている GORM 接続から Backend を組み立てます (テストでも使用)
func NewGormBackend(db *gorm.DB) (*Backend, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("repository.NewGormBackend: %w", err)
	}
	return &Backend{
		Driver:   db.Dialector.Name(),
		Progress: NewGormProgressRepository(db),
		Status:   NewGormStatusRepository(db),
		ping:     sqlDB.PingContext,
		close:    func(context.Context) error { return sqlDB.Close() },
	}, nil
}
