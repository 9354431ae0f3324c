//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"valentine_week/internal/config"
	"valentine_week/internal/metrics"
	"valentine_week/internal/middleware"
	"valentine_week/internal/model"
	"valentine_week/internal/repository"

	"github.com/google/uuid"
)

// ProgressService は8日間のアンロック進捗の状態遷移を扱います
type ProgressService interface {
	// GetProgress は FetchProgress と InitializeIfAbsent を続けて実行する
	GetProgress(ctx context.Context) (*model.UserProgress, error)
	// FetchProgress は保存済みの進捗を返す。存在しない場合は (nil, nil)
	FetchProgress(ctx context.Context) (*model.UserProgress, error)
	// InitializeIfAbsent は current が nil のときだけ初期状態の進捗を作成する
	InitializeIfAbsent(ctx context.Context, current *model.UserProgress) (*model.UserProgress, error)
	CompleteDay(ctx context.Context, dayNumber int) (*model.UserProgress, error)
	ResetProgress(ctx context.Context) error
}

type progressService struct {
	progRepo repository.ProgressRepository
	cfg      *config.Config
	recorder metrics.Recorder
	now      func() time.Time
}

func NewProgressService(progRepo repository.ProgressRepository, cfg *config.Config, recorder metrics.Recorder) ProgressService {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &progressService{
		progRepo: progRepo,
		cfg:      cfg,
		recorder: recorder,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *progressService) GetProgress(ctx context.Context) (*model.UserProgress, error) {
	current, err := s.FetchProgress(ctx)
	if err != nil {
		return nil, err
	}
	return s.InitializeIfAbsent(ctx, current)
}

func (s *progressService) FetchProgress(ctx context.Context) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)
	progress, err := s.progRepo.Fetch(ctx)
	if err != nil {
		logger.Error("Failed to fetch progress from repository", "error", err)
		return nil, storeAppError("Failed to fetch progress.", err)
	}
	return progress, nil
}

func (s *progressService) InitializeIfAbsent(ctx context.Context, current *model.UserProgress) (*model.UserProgress, error) {
	if current != nil {
		return current, nil
	}
	logger := middleware.GetLogger(ctx)

	progress := model.NewUserProgress(uuid.NewString(), s.now())
	err := s.progRepo.Create(ctx, progress)
	if errors.Is(err, model.ErrConflict) {
		// 同時に初回アクセスがあり、先に作成された方を返す
		logger.Info("Progress was created concurrently, returning the stored document")
		existing, fetchErr := s.progRepo.Fetch(ctx)
		if fetchErr != nil {
			logger.Error("Failed to re-fetch progress after create conflict", "error", fetchErr)
			return nil, storeAppError("Failed to fetch progress.", fetchErr)
		}
		if existing == nil {
			return nil, model.NewAppError("CONFLICT", "Progress changed while initializing, please retry.", "", err)
		}
		return existing, nil
	}
	if err != nil {
		logger.Error("Failed to create initial progress", "error", err)
		return nil, storeAppError("Failed to initialize progress.", err)
	}

	s.recorder.IncProgressInitialized()
	logger.Info("Initialized progress", "user_id", progress.UserID)
	return progress, nil
}

func (s *progressService) CompleteDay(ctx context.Context, dayNumber int) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx).With("day_number", dayNumber)

	// 範囲外の日付はストアに触れずに弾く
	if !model.ValidDayNumber(dayNumber) {
		logger.Warn("Rejected invalid day number")
		return nil, invalidDayNumberError()
	}

	maxAttempts := s.cfg.App.ReplaceMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = config.DefaultReplaceMaxAttempts
	}

	for attempt := 1; ; attempt++ {
		progress, err := s.progRepo.Fetch(ctx)
		if err != nil {
			logger.Error("Failed to fetch progress from repository", "error", err)
			return nil, storeAppError("Failed to fetch progress.", err)
		}
		if progress == nil {
			logger.Warn("Progress not found, day completion rejected")
			return nil, progressNotFoundError(nil)
		}

		wasReplay := progress.ReplayMode
		if err := progress.CompleteDay(dayNumber, s.now()); err != nil {
			logger.Error("Stored progress does not contain the requested day", "days", len(progress.Days))
			return nil, invalidDayNumberError()
		}

		err = s.progRepo.Replace(ctx, progress)
		switch {
		case err == nil:
			s.recorder.IncDayCompleted(dayNumber)
			if !wasReplay && progress.ReplayMode {
				s.recorder.IncReplayEntered()
				logger.Info("All days completed, replay mode entered")
			}
			logger.Info("Day completed", "completed_count", progress.CompletedCount(), "version", progress.Version)
			return progress, nil

		case errors.Is(err, model.ErrConflict):
			s.recorder.IncReplaceConflict()
			if attempt >= maxAttempts {
				logger.Warn("Giving up after repeated replace conflicts", "attempts", attempt)
				return nil, model.NewAppError("CONFLICT", "Progress was modified concurrently, please retry.", "", err)
			}
			logger.Debug("Replace conflict, retrying with fresh progress", "attempt", attempt)

		case errors.Is(err, model.ErrNotFound):
			// fetch と replace の間にリセットされた
			logger.Warn("Progress disappeared before replace")
			return nil, progressNotFoundError(err)

		default:
			logger.Error("Failed to replace progress", "error", err)
			return nil, storeAppError("Failed to save progress.", err)
		}
	}
}

func (s *progressService) ResetProgress(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)
	if err := s.progRepo.DeleteAll(ctx); err != nil {
		logger.Error("Failed to delete progress", "error", err)
		return storeAppError("Failed to reset progress.", err)
	}
	s.recorder.IncProgressReset()
	logger.Info("Progress reset")
	return nil
}
