package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clean-backend/internal/cache"
	"clean-backend/internal/models"
	"clean-backend/internal/timeutil"
)

type logStore interface {
	List(ctx context.Context, filter models.LogFilter) ([]models.RFIDLog, error)
	ListRange(ctx context.Context, from, to string) ([]models.RFIDLog, error)
	Get(ctx context.Context, id int) (*models.RFIDLog, error)
	Delete(ctx context.Context, id int) error
	UpdateChecklist(ctx context.Context, id int, req *models.ChecklistRequest) (*models.RFIDLog, error)
	DashboardSummary(ctx context.Context, filter models.DashboardFilter) (*models.DashboardSummary, error)
}

// LogService covers the supervisor side of the access log: listing,
// detail, checklist completion and the dashboard aggregate.
type LogService struct {
	logs logStore
}

func NewLogService(logs logStore) *LogService {
	return &LogService{logs: logs}
}

func (s *LogService) List(ctx context.Context, filter models.LogFilter) ([]models.RFIDLog, error) {
	return s.logs.List(ctx, filter)
}

func (s *LogService) Get(ctx context.Context, id int) (*models.RFIDLog, error) {
	return s.logs.Get(ctx, id)
}

func (s *LogService) Delete(ctx context.Context, id int) error {
	if err := s.logs.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateSummaries(ctx)
	return nil
}

// SubmitChecklist stores the six criteria and moves the log to selesai.
func (s *LogService) SubmitChecklist(ctx context.Context, id int, req *models.ChecklistRequest) (*models.RFIDLog, error) {
	updated, err := s.logs.UpdateChecklist(ctx, id, req)
	if err != nil {
		return nil, err
	}
	cache.InvalidateSummaries(ctx)
	return updated, nil
}

// Summary computes the dashboard counts. Tanggal defaults to today in the
// configured timezone. Results are cached briefly since the dashboard
// polls.
func (s *LogService) Summary(ctx context.Context, filter models.DashboardFilter) (*models.DashboardSummary, error) {
	if filter.Tanggal == "" {
		filter.Tanggal = timeutil.Today()
	}
	if _, err := time.Parse(timeutil.DateLayout, filter.Tanggal); err != nil {
		return nil, NewValidationError("tanggal harus berformat YYYY-MM-DD")
	}

	key := fmt.Sprintf("%s%s:%s:%s", cache.SummaryKeyPrefix, filter.Tanggal, filter.Ruangan, filter.Petugas)
	if data, ok := cache.GetCached(ctx, key); ok {
		var summary models.DashboardSummary
		if err := json.Unmarshal(data, &summary); err == nil {
			return &summary, nil
		}
	}

	summary, err := s.logs.DashboardSummary(ctx, filter)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(summary); err == nil {
		cache.SetCached(ctx, key, data, 30*time.Second)
	}

	return summary, nil
}
