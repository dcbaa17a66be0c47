package services

import (
	"context"
	"testing"

	"clean-backend/internal/models"
	"clean-backend/internal/timeutil"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogStore struct {
	logs       map[int]*models.RFIDLog
	lastFilter models.DashboardFilter
	summary    *models.DashboardSummary
}

func newFakeLogStore() *fakeLogStore {
	return &fakeLogStore{
		logs:    make(map[int]*models.RFIDLog),
		summary: &models.DashboardSummary{},
	}
}

func (f *fakeLogStore) List(_ context.Context, _ models.LogFilter) ([]models.RFIDLog, error) {
	var out []models.RFIDLog
	for _, l := range f.logs {
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeLogStore) ListRange(_ context.Context, _, _ string) ([]models.RFIDLog, error) {
	return f.List(context.Background(), models.LogFilter{})
}

func (f *fakeLogStore) Get(_ context.Context, id int) (*models.RFIDLog, error) {
	l, ok := f.logs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return l, nil
}

func (f *fakeLogStore) Delete(_ context.Context, id int) error {
	if _, ok := f.logs[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.logs, id)
	return nil
}

func (f *fakeLogStore) UpdateChecklist(_ context.Context, id int, req *models.ChecklistRequest) (*models.RFIDLog, error) {
	l, ok := f.logs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	l.ChecklistLantai = bool(req.ChecklistLantai)
	l.ChecklistKacaJendela = bool(req.ChecklistKacaJendela)
	l.ChecklistPintu = bool(req.ChecklistPintu)
	l.ChecklistLawaLawa = bool(req.ChecklistLawaLawa)
	l.ChecklistLubangAngin = bool(req.ChecklistLubangAngin)
	l.ChecklistKusenJendelaDanPintu = bool(req.ChecklistKusenJendelaDanPintu)
	l.ChecklistKeterangan = req.ChecklistKeterangan
	l.Status = models.LogStatusSelesai
	return l, nil
}

func (f *fakeLogStore) DashboardSummary(_ context.Context, filter models.DashboardFilter) (*models.DashboardSummary, error) {
	f.lastFilter = filter
	return f.summary, nil
}

func TestSubmitChecklistMarksSelesai(t *testing.T) {
	store := newFakeLogStore()
	store.logs[7] = &models.RFIDLog{ID: 7, Status: models.LogStatusTercatat}
	svc := NewLogService(store)

	updated, err := svc.SubmitChecklist(context.Background(), 7, &models.ChecklistRequest{
		ChecklistLantai:     true,
		ChecklistKeterangan: "lantai sudah dipel",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LogStatusSelesai, updated.Status)
	assert.True(t, updated.ChecklistLantai)
	assert.Equal(t, "lantai sudah dipel", updated.ChecklistKeterangan)
}

func TestSummaryDefaultsToToday(t *testing.T) {
	store := newFakeLogStore()
	svc := NewLogService(store)

	_, err := svc.Summary(context.Background(), models.DashboardFilter{})
	require.NoError(t, err)
	assert.Equal(t, timeutil.Today(), store.lastFilter.Tanggal)
}

func TestSummaryRejectsBadDate(t *testing.T) {
	svc := NewLogService(newFakeLogStore())

	_, err := svc.Summary(context.Background(), models.DashboardFilter{Tanggal: "31-12-2025"})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestSummaryPassesFiltersThrough(t *testing.T) {
	store := newFakeLogStore()
	store.summary = &models.DashboardSummary{RuanganBersih: 3, TotalRuangan: 10}
	svc := NewLogService(store)

	summary, err := svc.Summary(context.Background(), models.DashboardFilter{
		Tanggal: "2025-06-01",
		Ruangan: "Lobi",
		Petugas: "Budi",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.RuanganBersih)
	assert.Equal(t, "Lobi", store.lastFilter.Ruangan)
	assert.Equal(t, "Budi", store.lastFilter.Petugas)
}

func TestDeleteMissingLog(t *testing.T) {
	svc := NewLogService(newFakeLogStore())
	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
