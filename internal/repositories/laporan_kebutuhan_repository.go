package repositories

import (
	"context"

	"clean-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LaporanKebutuhanRepository struct {
	DB *pgxpool.Pool
}

func NewLaporanKebutuhanRepository(db *pgxpool.Pool) *LaporanKebutuhanRepository {
	return &LaporanKebutuhanRepository{DB: db}
}

// Create inserts a new supplies report
func (r *LaporanKebutuhanRepository) Create(ctx context.Context, req *models.CreateLaporanKebutuhanRequest) (*models.LaporanKebutuhan, error) {
	var lap models.LaporanKebutuhan
	err := r.DB.QueryRow(ctx,
		`INSERT INTO laporan_kebutuhan(ruangan, tanggal, pengguna, catatan)
		 VALUES($1, $2, $3, $4)
		 RETURNING id, ruangan, to_char(tanggal, 'YYYY-MM-DD'), pengguna, catatan, created_at`,
		req.Ruangan, req.Tanggal, req.Pengguna, req.Catatan,
	).Scan(&lap.ID, &lap.Ruangan, &lap.Tanggal, &lap.Pengguna, &lap.Catatan, &lap.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &lap, nil
}

// List returns all supplies reports, newest first
func (r *LaporanKebutuhanRepository) List(ctx context.Context) ([]models.LaporanKebutuhan, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, ruangan, to_char(tanggal, 'YYYY-MM-DD'), pengguna, catatan, created_at
		 FROM laporan_kebutuhan ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.LaporanKebutuhan
	for rows.Next() {
		var lap models.LaporanKebutuhan
		if err := rows.Scan(&lap.ID, &lap.Ruangan, &lap.Tanggal, &lap.Pengguna,
			&lap.Catatan, &lap.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, lap)
	}
	return list, rows.Err()
}

// Delete removes a supplies report
func (r *LaporanKebutuhanRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM laporan_kebutuhan WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
