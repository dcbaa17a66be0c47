package services

import (
	"context"
	"strings"

	"clean-backend/internal/cache"
	"clean-backend/internal/models"
)

type ruanganStore interface {
	Create(ctx context.Context, req *models.RuanganRequest) (*models.Ruangan, error)
	Get(ctx context.Context, id int) (*models.Ruangan, error)
	List(ctx context.Context) ([]models.Ruangan, error)
	Update(ctx context.Context, id int, req *models.RuanganRequest) (*models.Ruangan, error)
	Delete(ctx context.Context, id int) error
	ListByPetugas(ctx context.Context, petugas string) ([]models.Ruangan, error)
	DistinctPetugas(ctx context.Context) ([]string, error)
}

type RuanganService struct {
	rooms ruanganStore
}

func NewRuanganService(rooms ruanganStore) *RuanganService {
	return &RuanganService{rooms: rooms}
}

func (s *RuanganService) Create(ctx context.Context, req *models.RuanganRequest) (*models.Ruangan, error) {
	if strings.TrimSpace(req.NamaRuangan) == "" {
		return nil, NewValidationError("nama_ruangan wajib diisi")
	}
	ruangan, err := s.rooms.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	cache.InvalidateSummaries(ctx)
	return ruangan, nil
}

func (s *RuanganService) Get(ctx context.Context, id int) (*models.Ruangan, error) {
	return s.rooms.Get(ctx, id)
}

func (s *RuanganService) List(ctx context.Context) ([]models.Ruangan, error) {
	return s.rooms.List(ctx)
}

func (s *RuanganService) Update(ctx context.Context, id int, req *models.RuanganRequest) (*models.Ruangan, error) {
	if strings.TrimSpace(req.NamaRuangan) == "" {
		return nil, NewValidationError("nama_ruangan wajib diisi")
	}
	ruangan, err := s.rooms.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	cache.InvalidateSummaries(ctx)
	return ruangan, nil
}

func (s *RuanganService) ListByPetugas(ctx context.Context, petugas string) ([]models.Ruangan, error) {
	if strings.TrimSpace(petugas) == "" {
		return nil, NewValidationError("petugas wajib diisi")
	}
	return s.rooms.ListByPetugas(ctx, petugas)
}

func (s *RuanganService) PetugasList(ctx context.Context) ([]string, error) {
	return s.rooms.DistinctPetugas(ctx)
}

func (s *RuanganService) Delete(ctx context.Context, id int) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateSummaries(ctx)
	return nil
}
