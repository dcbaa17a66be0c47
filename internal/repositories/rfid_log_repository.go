package repositories

import (
	"context"
	"fmt"
	"strings"

	"clean-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RFIDLogRepository struct {
	DB *pgxpool.Pool
}

func NewRFIDLogRepository(db *pgxpool.Pool) *RFIDLogRepository {
	return &RFIDLogRepository{DB: db}
}

const logColumns = `id, card_uid, petugas_name, ruangan, waktu, to_char(tanggal, 'YYYY-MM-DD'), status,
	checklist_lantai, checklist_kaca_jendela, checklist_pintu, checklist_lawa_lawa,
	checklist_lubang_angin, checklist_kusen_jendela_dan_pintu,
	COALESCE(checklist_keterangan, ''), checklist_at`

func scanLog(row pgx.Row, l *models.RFIDLog) error {
	return row.Scan(&l.ID, &l.CardUID, &l.PetugasName, &l.Ruangan, &l.Waktu, &l.Tanggal, &l.Status,
		&l.ChecklistLantai, &l.ChecklistKacaJendela, &l.ChecklistPintu, &l.ChecklistLawaLawa,
		&l.ChecklistLubangAngin, &l.ChecklistKusenJendelaDanPintu,
		&l.ChecklistKeterangan, &l.ChecklistAt)
}

// FindTodayTap returns the admitted tap for a card on the given date, or
// pgx.ErrNoRows when the card has not tapped yet.
func (r *RFIDLogRepository) FindTodayTap(ctx context.Context, cardUID, tanggal string) (*models.RFIDLog, error) {
	var l models.RFIDLog
	row := r.DB.QueryRow(ctx,
		`SELECT `+logColumns+` FROM rfid_logs WHERE card_uid = $1 AND tanggal = $2`,
		cardUID, tanggal,
	)
	if err := scanLog(row, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Insert stores an admitted tap. A unique violation on (card_uid, tanggal)
// surfaces as a pgconn error with code 23505 for the service to map.
func (r *RFIDLogRepository) Insert(ctx context.Context, l *models.RFIDLog) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO rfid_logs(card_uid, petugas_name, ruangan, waktu, tanggal, status)
		 VALUES($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		l.CardUID, l.PetugasName, l.Ruangan, l.Waktu, l.Tanggal, l.Status,
	).Scan(&l.ID)
}

// List returns logs newest first, narrowed by the optional filters.
// Search matches petugas name or card UID, Room matches the room snapshot;
// both are partial and case-insensitive. Status and Tanggal are exact.
func (r *RFIDLogRepository) List(ctx context.Context, filter models.LogFilter) ([]models.RFIDLog, error) {
	query := `SELECT ` + logColumns + ` FROM rfid_logs`

	var conditions []string
	var args []interface{}
	argNum := 1

	if filter.Search != "" {
		conditions = append(conditions,
			fmt.Sprintf("(petugas_name ILIKE $%d OR card_uid ILIKE $%d)", argNum, argNum))
		args = append(args, "%"+filter.Search+"%")
		argNum++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argNum))
		args = append(args, filter.Status)
		argNum++
	}
	if filter.Tanggal != "" {
		conditions = append(conditions, fmt.Sprintf("tanggal = $%d", argNum))
		args = append(args, filter.Tanggal)
		argNum++
	}
	if filter.Room != "" {
		conditions = append(conditions, fmt.Sprintf("ruangan ILIKE $%d", argNum))
		args = append(args, "%"+filter.Room+"%")
		argNum++
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY waktu DESC"

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.RFIDLog
	for rows.Next() {
		var l models.RFIDLog
		if err := scanLog(rows, &l); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// ListRange returns logs between two dates inclusive, oldest first.
// Used by the spreadsheet export.
func (r *RFIDLogRepository) ListRange(ctx context.Context, from, to string) ([]models.RFIDLog, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+logColumns+` FROM rfid_logs
		 WHERE tanggal BETWEEN $1 AND $2
		 ORDER BY waktu ASC`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.RFIDLog
	for rows.Next() {
		var l models.RFIDLog
		if err := scanLog(rows, &l); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// Get retrieves one log plus the card's current room assignments
func (r *RFIDLogRepository) Get(ctx context.Context, id int) (*models.RFIDLog, error) {
	var l models.RFIDLog
	row := r.DB.QueryRow(ctx,
		`SELECT `+logColumns+` FROM rfid_logs WHERE id = $1`, id,
	)
	if err := scanLog(row, &l); err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx,
		`SELECT dr.id, dr.nama_ruangan
		 FROM rfid_cards c
		 JOIN rfid_ruangan_relasi rr ON rr.rfid_card_id = c.id
		 JOIN daftar_ruangan dr ON dr.id = rr.ruangan_id
		 WHERE c.card_uid = $1
		 ORDER BY dr.nama_ruangan`,
		l.CardUID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var room models.RoomLookup
		if err := rows.Scan(&room.ID, &room.NamaRuangan); err != nil {
			return nil, err
		}
		l.RuanganList = append(l.RuanganList, room)
	}
	return &l, rows.Err()
}

// Delete removes a log entry
func (r *RFIDLogRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM rfid_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateChecklist stores the six criteria, flips the status to selesai and
// stamps checklist_at.
func (r *RFIDLogRepository) UpdateChecklist(ctx context.Context, id int, req *models.ChecklistRequest) (*models.RFIDLog, error) {
	var l models.RFIDLog
	row := r.DB.QueryRow(ctx,
		`UPDATE rfid_logs
		 SET checklist_lantai = $1, checklist_kaca_jendela = $2, checklist_pintu = $3,
		     checklist_lawa_lawa = $4, checklist_lubang_angin = $5,
		     checklist_kusen_jendela_dan_pintu = $6, checklist_keterangan = $7,
		     status = $8, checklist_at = NOW()
		 WHERE id = $9
		 RETURNING `+logColumns,
		bool(req.ChecklistLantai), bool(req.ChecklistKacaJendela), bool(req.ChecklistPintu),
		bool(req.ChecklistLawaLawa), bool(req.ChecklistLubangAngin), bool(req.ChecklistKusenJendelaDanPintu),
		req.ChecklistKeterangan, models.LogStatusSelesai, id,
	)
	if err := scanLog(row, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// DashboardSummary computes the per-day aggregate for the supervisor view.
// Every count honours the same filter set so the cards on the dashboard
// stay consistent with each other.
func (r *RFIDLogRepository) DashboardSummary(ctx context.Context, filter models.DashboardFilter) (*models.DashboardSummary, error) {
	conditions := []string{"tanggal = $1"}
	args := []interface{}{filter.Tanggal}
	argNum := 2

	if filter.Ruangan != "" {
		conditions = append(conditions, fmt.Sprintf("ruangan ILIKE $%d", argNum))
		args = append(args, "%"+filter.Ruangan+"%")
		argNum++
	}
	if filter.Petugas != "" {
		conditions = append(conditions, fmt.Sprintf("petugas_name ILIKE $%d", argNum))
		args = append(args, "%"+filter.Petugas+"%")
		argNum++
	}

	where := strings.Join(conditions, " AND ")

	var summary models.DashboardSummary
	err := r.DB.QueryRow(ctx,
		`SELECT
			COUNT(*) FILTER (WHERE status = 'selesai'),
			COUNT(DISTINCT petugas_name),
			COUNT(*) FILTER (WHERE status = 'tercatat')
		 FROM rfid_logs WHERE `+where,
		args...,
	).Scan(&summary.RuanganBersih, &summary.PetugasAktif, &summary.BelumDicek)
	if err != nil {
		return nil, err
	}

	roomQuery := `SELECT COUNT(*) FROM daftar_ruangan`
	var roomArgs []interface{}
	if filter.Ruangan != "" {
		roomQuery += ` WHERE nama_ruangan ILIKE $1`
		roomArgs = append(roomArgs, "%"+filter.Ruangan+"%")
	}
	if err := r.DB.QueryRow(ctx, roomQuery, roomArgs...).Scan(&summary.TotalRuangan); err != nil {
		return nil, err
	}

	summary.PerluPembersihan = summary.TotalRuangan - summary.RuanganBersih - summary.BelumDicek
	if summary.PerluPembersihan < 0 {
		summary.PerluPembersihan = 0
	}

	return &summary, nil
}
