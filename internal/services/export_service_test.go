package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"clean-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type staticRangeStore struct {
	logs []models.RFIDLog
}

func (s *staticRangeStore) ListRange(_ context.Context, _, _ string) ([]models.RFIDLog, error) {
	return s.logs, nil
}

func TestExportRangeValidation(t *testing.T) {
	svc := NewExportService(&staticRangeStore{})

	cases := []struct{ from, to string }{
		{"not-a-date", "2025-06-01"},
		{"2025-06-01", "not-a-date"},
		{"2025-06-02", "2025-06-01"},
	}
	for _, tc := range cases {
		_, err := svc.ExportRange(context.Background(), tc.from, tc.to)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr, "from=%s to=%s", tc.from, tc.to)
	}
}

func TestExportRangeProducesWorkbook(t *testing.T) {
	store := &staticRangeStore{logs: []models.RFIDLog{
		{
			ID:              1,
			CardUID:         "CARD1",
			PetugasName:     "Budi",
			Ruangan:         "Lobi",
			Waktu:           time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC),
			Tanggal:         "2025-06-01",
			Status:          models.LogStatusSelesai,
			ChecklistLantai: true,
		},
	}}
	svc := NewExportService(store)

	data, err := svc.ExportRange(context.Background(), "2025-06-01", "2025-06-07")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Log Kebersihan", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Tanggal", header)

	petugas, err := f.GetCellValue("Log Kebersihan", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Budi", petugas)

	lantai, err := f.GetCellValue("Log Kebersihan", "G2")
	require.NoError(t, err)
	assert.Equal(t, "Ya", lantai)
}
