package repositories

import (
	"context"

	"clean-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LaporanKebersihanRepository struct {
	DB *pgxpool.Pool
}

func NewLaporanKebersihanRepository(db *pgxpool.Pool) *LaporanKebersihanRepository {
	return &LaporanKebersihanRepository{DB: db}
}

const laporanKebersihanColumns = `id, petugas, to_char(tanggal, 'YYYY-MM-DD'), ruangan,
	COALESCE(catatan, ''), COALESCE(foto, ''), status_validasi,
	checklist_lantai, checklist_kaca_jendela, checklist_pintu, checklist_lawa_lawa,
	checklist_lubang_angin, checklist_kusen_jendela_dan_pintu,
	COALESCE(checklist_keterangan, ''), created_at`

// Create inserts a new cleaning report
func (r *LaporanKebersihanRepository) Create(ctx context.Context, req *models.CreateLaporanKebersihanRequest) (*models.LaporanKebersihan, error) {
	var lap models.LaporanKebersihan
	err := r.DB.QueryRow(ctx,
		`INSERT INTO laporan_kebersihan(petugas, tanggal, ruangan, catatan, foto, status_validasi)
		 VALUES($1, $2, $3, $4, $5, $6)
		 RETURNING `+laporanKebersihanColumns,
		req.Petugas, req.Tanggal, req.Ruangan, req.Catatan, req.Foto, models.LaporanBelumDicek,
	).Scan(&lap.ID, &lap.Petugas, &lap.Tanggal, &lap.Ruangan, &lap.Catatan, &lap.Foto,
		&lap.StatusValidasi, &lap.ChecklistLantai, &lap.ChecklistKacaJendela, &lap.ChecklistPintu,
		&lap.ChecklistLawaLawa, &lap.ChecklistLubangAngin, &lap.ChecklistKusenJendelaDanPintu,
		&lap.ChecklistKeterangan, &lap.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &lap, nil
}

// List returns all cleaning reports, newest first
func (r *LaporanKebersihanRepository) List(ctx context.Context) ([]models.LaporanKebersihan, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+laporanKebersihanColumns+` FROM laporan_kebersihan ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.LaporanKebersihan
	for rows.Next() {
		var lap models.LaporanKebersihan
		if err := rows.Scan(&lap.ID, &lap.Petugas, &lap.Tanggal, &lap.Ruangan, &lap.Catatan,
			&lap.Foto, &lap.StatusValidasi, &lap.ChecklistLantai, &lap.ChecklistKacaJendela,
			&lap.ChecklistPintu, &lap.ChecklistLawaLawa, &lap.ChecklistLubangAngin,
			&lap.ChecklistKusenJendelaDanPintu, &lap.ChecklistKeterangan, &lap.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, lap)
	}
	return list, rows.Err()
}

// Get retrieves a single report
func (r *LaporanKebersihanRepository) Get(ctx context.Context, id int) (*models.LaporanKebersihan, error) {
	var lap models.LaporanKebersihan
	err := r.DB.QueryRow(ctx,
		`SELECT `+laporanKebersihanColumns+` FROM laporan_kebersihan WHERE id = $1`, id,
	).Scan(&lap.ID, &lap.Petugas, &lap.Tanggal, &lap.Ruangan, &lap.Catatan, &lap.Foto,
		&lap.StatusValidasi, &lap.ChecklistLantai, &lap.ChecklistKacaJendela, &lap.ChecklistPintu,
		&lap.ChecklistLawaLawa, &lap.ChecklistLubangAngin, &lap.ChecklistKusenJendelaDanPintu,
		&lap.ChecklistKeterangan, &lap.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &lap, nil
}

// DistinctPetugas lists staff names that have submitted reports
func (r *LaporanKebersihanRepository) DistinctPetugas(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "petugas")
}

// DistinctRuangan lists rooms that appear in reports
func (r *LaporanKebersihanRepository) DistinctRuangan(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "ruangan")
}

func (r *LaporanKebersihanRepository) distinctColumn(ctx context.Context, column string) ([]string, error) {
	// column is one of two fixed names, never user input
	rows, err := r.DB.Query(ctx,
		`SELECT DISTINCT `+column+` FROM laporan_kebersihan ORDER BY `+column)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// PetugasRuanganPairs returns the distinct staff-to-room pairs seen in reports
func (r *LaporanKebersihanRepository) PetugasRuanganPairs(ctx context.Context) ([]models.PetugasRuangan, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT DISTINCT petugas, ruangan FROM laporan_kebersihan ORDER BY petugas, ruangan`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []models.PetugasRuangan
	for rows.Next() {
		var pair models.PetugasRuangan
		if err := rows.Scan(&pair.Petugas, &pair.Ruangan); err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, rows.Err()
}

// UpdateValidation sets a report's validation status together with the
// checklist the supervisor filled in
func (r *LaporanKebersihanRepository) UpdateValidation(ctx context.Context, id int, req *models.ValidateLaporanRequest) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE laporan_kebersihan
		 SET status_validasi = $1, checklist_lantai = $2, checklist_kaca_jendela = $3,
		     checklist_pintu = $4, checklist_lawa_lawa = $5, checklist_lubang_angin = $6,
		     checklist_kusen_jendela_dan_pintu = $7, checklist_keterangan = $8
		 WHERE id = $9`,
		req.StatusValidasi, bool(req.ChecklistLantai), bool(req.ChecklistKacaJendela), bool(req.ChecklistPintu),
		bool(req.ChecklistLawaLawa), bool(req.ChecklistLubangAngin), bool(req.ChecklistKusenJendelaDanPintu),
		req.ChecklistKeterangan, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a report
func (r *LaporanKebersihanRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM laporan_kebersihan WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
