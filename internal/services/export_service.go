package services

import (
	"bytes"
	"context"
	"time"

	"clean-backend/internal/models"
	"clean-backend/internal/timeutil"

	"github.com/xuri/excelize/v2"
)

type logRangeStore interface {
	ListRange(ctx context.Context, from, to string) ([]models.RFIDLog, error)
}

// ExportService renders the access log as an XLSX workbook for the
// supervisor's recap download.
type ExportService struct {
	logs logRangeStore
}

func NewExportService(logs logRangeStore) *ExportService {
	return &ExportService{logs: logs}
}

var exportHeaders = []string{
	"No", "Tanggal", "Waktu", "Petugas", "Ruangan", "Status",
	"Lantai", "Kaca Jendela", "Pintu", "Lawa-lawa", "Lubang Angin",
	"Kusen Jendela & Pintu", "Keterangan",
}

// ExportRange builds a workbook of logs between from and to inclusive.
// Both bounds are YYYY-MM-DD dates; from must not be after to.
func (s *ExportService) ExportRange(ctx context.Context, from, to string) ([]byte, error) {
	fromDay, err := time.Parse(timeutil.DateLayout, from)
	if err != nil {
		return nil, NewValidationError("from harus berformat YYYY-MM-DD")
	}
	toDay, err := time.Parse(timeutil.DateLayout, to)
	if err != nil {
		return nil, NewValidationError("to harus berformat YYYY-MM-DD")
	}
	if fromDay.After(toDay) {
		return nil, NewValidationError("from tidak boleh setelah to")
	}

	logs, err := s.logs.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Log Kebersihan"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, err
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, l := range logs {
		row := i + 2
		values := []interface{}{
			i + 1,
			l.Tanggal,
			timeutil.ToLocal(l.Waktu).Format(timeutil.TimeLayout),
			l.PetugasName,
			l.Ruangan,
			l.Status,
			yesNo(l.ChecklistLantai),
			yesNo(l.ChecklistKacaJendela),
			yesNo(l.ChecklistPintu),
			yesNo(l.ChecklistLawaLawa),
			yesNo(l.ChecklistLubangAngin),
			yesNo(l.ChecklistKusenJendelaDanPintu),
			l.ChecklistKeterangan,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	// Widen the name and room columns so the recap is readable as-is
	f.SetColWidth(sheetName, "B", "C", 12)
	f.SetColWidth(sheetName, "D", "E", 25)
	f.SetColWidth(sheetName, "M", "M", 30)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yesNo(checked bool) string {
	if checked {
		return "Ya"
	}
	return "Tidak"
}
