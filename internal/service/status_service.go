//go:generate mockery --name StatusService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"strings"
	"time"

	"valentine_week/internal/config"
	"valentine_week/internal/middleware"
	"valentine_week/internal/model"
	"valentine_week/internal/repository"

	"github.com/google/uuid"
)

// StatusService は疎通確認レコードの作成と一覧を扱います
type StatusService interface {
	CreateStatusCheck(ctx context.Context, req *model.CreateStatusCheckRequest) (*model.StatusCheck, error)
	ListStatusChecks(ctx context.Context) ([]*model.StatusCheck, error)
}

type statusService struct {
	statusRepo repository.StatusRepository
	cfg        *config.Config
}

func NewStatusService(statusRepo repository.StatusRepository, cfg *config.Config) StatusService {
	return &statusService{
		statusRepo: statusRepo,
		cfg:        cfg,
	}
}

func (s *statusService) CreateStatusCheck(ctx context.Context, req *model.CreateStatusCheckRequest) (*model.StatusCheck, error) {
	logger := middleware.GetLogger(ctx)

	clientName := strings.TrimSpace(req.ClientName)
	if clientName == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "client_name is required.", "client_name", model.ErrInvalidInput)
	}

	status := &model.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.statusRepo.Create(ctx, status); err != nil {
		logger.Error("Failed to create status check", "error", err)
		return nil, storeAppError("Failed to create status check.", err)
	}
	logger.Info("Status check created", "id", status.ID, "client_name", status.ClientName)
	return status, nil
}

func (s *statusService) ListStatusChecks(ctx context.Context) ([]*model.StatusCheck, error) {
	logger := middleware.GetLogger(ctx)

	limit := s.cfg.App.StatusListLimit
	if limit <= 0 {
		limit = config.DefaultStatusListLimit
	}
	statuses, err := s.statusRepo.List(ctx, limit)
	if err != nil {
		logger.Error("Failed to list status checks", "error", err)
		return nil, storeAppError("Failed to list status checks.", err)
	}
	if statuses == nil {
		statuses = []*model.StatusCheck{}
	}
	return statuses, nil
}
