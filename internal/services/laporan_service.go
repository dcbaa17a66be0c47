package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clean-backend/internal/models"
	"clean-backend/internal/timeutil"
)

type laporanKebersihanStore interface {
	Create(ctx context.Context, req *models.CreateLaporanKebersihanRequest) (*models.LaporanKebersihan, error)
	Get(ctx context.Context, id int) (*models.LaporanKebersihan, error)
	List(ctx context.Context) ([]models.LaporanKebersihan, error)
	UpdateValidation(ctx context.Context, id int, req *models.ValidateLaporanRequest) error
	Delete(ctx context.Context, id int) error
	DistinctPetugas(ctx context.Context) ([]string, error)
	DistinctRuangan(ctx context.Context) ([]string, error)
	PetugasRuanganPairs(ctx context.Context) ([]models.PetugasRuangan, error)
}

type laporanKebutuhanStore interface {
	Create(ctx context.Context, req *models.CreateLaporanKebutuhanRequest) (*models.LaporanKebutuhan, error)
	List(ctx context.Context) ([]models.LaporanKebutuhan, error)
	Delete(ctx context.Context, id int) error
}

// LaporanService covers both report types: cleaning reports with photo and
// validation workflow, and the plain supplies reports.
type LaporanService struct {
	kebersihan laporanKebersihanStore
	kebutuhan  laporanKebutuhanStore
	notifier   notifier
}

func NewLaporanService(kebersihan laporanKebersihanStore, kebutuhan laporanKebutuhanStore, notifier notifier) *LaporanService {
	return &LaporanService{kebersihan: kebersihan, kebutuhan: kebutuhan, notifier: notifier}
}

func (s *LaporanService) CreateKebersihan(ctx context.Context, req *models.CreateLaporanKebersihanRequest) (*models.LaporanKebersihan, error) {
	if strings.TrimSpace(req.Petugas) == "" {
		return nil, NewValidationError("petugas wajib diisi")
	}
	if strings.TrimSpace(req.Ruangan) == "" {
		return nil, NewValidationError("ruangan wajib diisi")
	}
	if req.Tanggal == "" {
		return nil, NewValidationError("tanggal wajib diisi")
	}
	if _, err := time.Parse(timeutil.DateLayout, req.Tanggal); err != nil {
		return nil, NewValidationError("tanggal harus berformat YYYY-MM-DD")
	}

	lap, err := s.kebersihan.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	lap.StatusDisplay = validationLabel(lap.StatusValidasi)
	return lap, nil
}

func (s *LaporanService) ListKebersihan(ctx context.Context) ([]models.LaporanKebersihan, error) {
	list, err := s.kebersihan.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].StatusDisplay = validationLabel(list[i].StatusValidasi)
	}
	return list, nil
}

// Validate records the supervisor's inspection: the validation status flip
// plus the checklist filled in while checking the room.
func (s *LaporanService) Validate(ctx context.Context, id int, req *models.ValidateLaporanRequest) error {
	if req.StatusValidasi != models.LaporanBelumDicek && req.StatusValidasi != models.LaporanSudahDicek {
		return NewValidationError("status_validasi harus belum_dicek atau sudah_dicek")
	}
	return s.kebersihan.UpdateValidation(ctx, id, req)
}

// DeleteKebersihan removes the report and returns its stored photo
// filename, empty when the report had none, so the caller can unlink the
// file.
func (s *LaporanService) DeleteKebersihan(ctx context.Context, id int) (string, error) {
	lap, err := s.kebersihan.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.kebersihan.Delete(ctx, id); err != nil {
		return "", err
	}
	return lap.Foto, nil
}

func (s *LaporanService) UniquePetugas(ctx context.Context) ([]string, error) {
	return s.kebersihan.DistinctPetugas(ctx)
}

func (s *LaporanService) UniqueRuangan(ctx context.Context) ([]string, error) {
	return s.kebersihan.DistinctRuangan(ctx)
}

func (s *LaporanService) PetugasRuanganMapping(ctx context.Context) ([]models.PetugasRuangan, error) {
	return s.kebersihan.PetugasRuanganPairs(ctx)
}

func (s *LaporanService) CreateKebutuhan(ctx context.Context, req *models.CreateLaporanKebutuhanRequest) (*models.LaporanKebutuhan, error) {
	if strings.TrimSpace(req.Ruangan) == "" {
		return nil, NewValidationError("ruangan wajib diisi")
	}
	if strings.TrimSpace(req.Pengguna) == "" {
		return nil, NewValidationError("pengguna wajib diisi")
	}
	if strings.TrimSpace(req.Catatan) == "" {
		return nil, NewValidationError("catatan wajib diisi")
	}
	if req.Tanggal == "" {
		req.Tanggal = timeutil.Today()
	} else if _, err := time.Parse(timeutil.DateLayout, req.Tanggal); err != nil {
		return nil, NewValidationError("tanggal harus berformat YYYY-MM-DD")
	}

	lap, err := s.kebutuhan.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.notifier.Dispatch(fmt.Sprintf(
		"📦 <b>Laporan kebutuhan</b>\nRuangan: %s\nPelapor: %s\nCatatan: %s",
		lap.Ruangan, lap.Pengguna, lap.Catatan))

	return lap, nil
}

func (s *LaporanService) ListKebutuhan(ctx context.Context) ([]models.LaporanKebutuhan, error) {
	return s.kebutuhan.List(ctx)
}

func (s *LaporanService) DeleteKebutuhan(ctx context.Context, id int) error {
	return s.kebutuhan.Delete(ctx, id)
}

func validationLabel(status string) string {
	if status == models.LaporanSudahDicek {
		return "Sudah Dicek"
	}
	return "Belum Dicek"
}
