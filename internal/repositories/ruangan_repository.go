package repositories

import (
	"context"

	"clean-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RuanganRepository struct {
	DB *pgxpool.Pool
}

func NewRuanganRepository(db *pgxpool.Pool) *RuanganRepository {
	return &RuanganRepository{DB: db}
}

// Create inserts a new room
func (r *RuanganRepository) Create(ctx context.Context, req *models.RuanganRequest) (*models.Ruangan, error) {
	var ruangan models.Ruangan
	err := r.DB.QueryRow(ctx,
		`INSERT INTO daftar_ruangan(nama_ruangan, petugas_kebersihan, penanggung_jawab, koordinator_kebersihan)
		 VALUES($1, $2, $3, $4)
		 RETURNING id, nama_ruangan, COALESCE(petugas_kebersihan, ''), COALESCE(penanggung_jawab, ''),
		           COALESCE(koordinator_kebersihan, ''), created_at, updated_at`,
		req.NamaRuangan, req.PetugasKebersihan, req.PenanggungJawab, req.KoordinatorKebersihan,
	).Scan(&ruangan.ID, &ruangan.NamaRuangan, &ruangan.PetugasKebersihan,
		&ruangan.PenanggungJawab, &ruangan.KoordinatorKebersihan, &ruangan.CreatedAt, &ruangan.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &ruangan, nil
}

// Get retrieves a room by ID
func (r *RuanganRepository) Get(ctx context.Context, id int) (*models.Ruangan, error) {
	var ruangan models.Ruangan
	err := r.DB.QueryRow(ctx,
		`SELECT id, nama_ruangan, COALESCE(petugas_kebersihan, ''), COALESCE(penanggung_jawab, ''),
		        COALESCE(koordinator_kebersihan, ''), created_at, updated_at
		 FROM daftar_ruangan WHERE id = $1`, id,
	).Scan(&ruangan.ID, &ruangan.NamaRuangan, &ruangan.PetugasKebersihan,
		&ruangan.PenanggungJawab, &ruangan.KoordinatorKebersihan, &ruangan.CreatedAt, &ruangan.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &ruangan, nil
}

// List returns all rooms ordered by name
func (r *RuanganRepository) List(ctx context.Context) ([]models.Ruangan, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, nama_ruangan, COALESCE(petugas_kebersihan, ''), COALESCE(penanggung_jawab, ''),
		        COALESCE(koordinator_kebersihan, ''), created_at, updated_at
		 FROM daftar_ruangan ORDER BY nama_ruangan`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Ruangan
	for rows.Next() {
		var ruangan models.Ruangan
		if err := rows.Scan(&ruangan.ID, &ruangan.NamaRuangan, &ruangan.PetugasKebersihan,
			&ruangan.PenanggungJawab, &ruangan.KoordinatorKebersihan,
			&ruangan.CreatedAt, &ruangan.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, ruangan)
	}
	return list, rows.Err()
}

// Update modifies a room in place
func (r *RuanganRepository) Update(ctx context.Context, id int, req *models.RuanganRequest) (*models.Ruangan, error) {
	var ruangan models.Ruangan
	err := r.DB.QueryRow(ctx,
		`UPDATE daftar_ruangan
		 SET nama_ruangan = $1, petugas_kebersihan = $2, penanggung_jawab = $3,
		     koordinator_kebersihan = $4, updated_at = NOW()
		 WHERE id = $5
		 RETURNING id, nama_ruangan, COALESCE(petugas_kebersihan, ''), COALESCE(penanggung_jawab, ''),
		           COALESCE(koordinator_kebersihan, ''), created_at, updated_at`,
		req.NamaRuangan, req.PetugasKebersihan, req.PenanggungJawab, req.KoordinatorKebersihan, id,
	).Scan(&ruangan.ID, &ruangan.NamaRuangan, &ruangan.PetugasKebersihan,
		&ruangan.PenanggungJawab, &ruangan.KoordinatorKebersihan, &ruangan.CreatedAt, &ruangan.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &ruangan, nil
}

// ListByPetugas returns rooms whose informal cleaning staff field matches
func (r *RuanganRepository) ListByPetugas(ctx context.Context, petugas string) ([]models.Ruangan, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, nama_ruangan, COALESCE(petugas_kebersihan, ''), COALESCE(penanggung_jawab, ''),
		        COALESCE(koordinator_kebersihan, ''), created_at, updated_at
		 FROM daftar_ruangan WHERE petugas_kebersihan = $1 ORDER BY nama_ruangan`,
		petugas,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Ruangan
	for rows.Next() {
		var ruangan models.Ruangan
		if err := rows.Scan(&ruangan.ID, &ruangan.NamaRuangan, &ruangan.PetugasKebersihan,
			&ruangan.PenanggungJawab, &ruangan.KoordinatorKebersihan,
			&ruangan.CreatedAt, &ruangan.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, ruangan)
	}
	return list, rows.Err()
}

// DistinctPetugas lists the cleaning staff names present in the directory
func (r *RuanganRepository) DistinctPetugas(ctx context.Context) ([]string, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT DISTINCT petugas_kebersihan FROM daftar_ruangan
		 WHERE petugas_kebersihan IS NOT NULL AND petugas_kebersihan <> ''
		 ORDER BY petugas_kebersihan`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes a room; card assignments pointing at it cascade away
func (r *RuanganRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM daftar_ruangan WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
