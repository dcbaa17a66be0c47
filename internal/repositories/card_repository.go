package repositories

import (
	"context"

	"clean-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CardRepository struct {
	DB *pgxpool.Pool
}

func NewCardRepository(db *pgxpool.Pool) *CardRepository {
	return &CardRepository{DB: db}
}

// CreateWithRooms inserts a card and its room assignments in one transaction
func (r *CardRepository) CreateWithRooms(ctx context.Context, card *models.Card, roomIDs []int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO rfid_cards(card_uid, petugas_name, keterangan, status)
		 VALUES($1, $2, $3, $4)
		 RETURNING id, registered_at`,
		card.CardUID, card.PetugasName, card.Keterangan, card.Status,
	).Scan(&card.ID, &card.RegisteredAt)
	if err != nil {
		return err
	}

	for _, roomID := range roomIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO rfid_ruangan_relasi(rfid_card_id, ruangan_id)
			 VALUES($1, $2)
			 ON CONFLICT (rfid_card_id, ruangan_id) DO NOTHING`,
			card.ID, roomID,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// UpdateWithRooms updates the card row and replaces its full assignment set
func (r *CardRepository) UpdateWithRooms(ctx context.Context, id int, req *models.UpdateCardRequest) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE rfid_cards
		 SET petugas_name = $1, keterangan = $2, status = $3
		 WHERE id = $4`,
		req.PetugasName, req.Keterangan, req.Status, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	// Replace-all semantics: drop every assignment, then re-insert
	_, err = tx.Exec(ctx, `DELETE FROM rfid_ruangan_relasi WHERE rfid_card_id = $1`, id)
	if err != nil {
		return err
	}

	for _, roomID := range req.Ruangan {
		_, err = tx.Exec(ctx,
			`INSERT INTO rfid_ruangan_relasi(rfid_card_id, ruangan_id)
			 VALUES($1, $2)
			 ON CONFLICT (rfid_card_id, ruangan_id) DO NOTHING`,
			id, roomID,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Get retrieves a card by ID with its room assignments
func (r *CardRepository) Get(ctx context.Context, id int) (*models.Card, error) {
	var card models.Card
	err := r.DB.QueryRow(ctx,
		`SELECT id, card_uid, petugas_name, COALESCE(keterangan, ''), status, registered_at
		 FROM rfid_cards WHERE id = $1`, id,
	).Scan(&card.ID, &card.CardUID, &card.PetugasName, &card.Keterangan, &card.Status, &card.RegisteredAt)
	if err != nil {
		return nil, err
	}

	rooms, err := r.roomsForCard(ctx, card.ID)
	if err != nil {
		return nil, err
	}
	card.Ruangan = rooms
	return &card, nil
}

// GetByUID retrieves a card by its UID with its room assignments
func (r *CardRepository) GetByUID(ctx context.Context, cardUID string) (*models.Card, error) {
	var card models.Card
	err := r.DB.QueryRow(ctx,
		`SELECT id, card_uid, petugas_name, COALESCE(keterangan, ''), status, registered_at
		 FROM rfid_cards WHERE card_uid = $1`, cardUID,
	).Scan(&card.ID, &card.CardUID, &card.PetugasName, &card.Keterangan, &card.Status, &card.RegisteredAt)
	if err != nil {
		return nil, err
	}

	rooms, err := r.roomsForCard(ctx, card.ID)
	if err != nil {
		return nil, err
	}
	card.Ruangan = rooms
	return &card, nil
}

// List returns all cards with their room assignments, newest first
func (r *CardRepository) List(ctx context.Context) ([]models.Card, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, card_uid, petugas_name, COALESCE(keterangan, ''), status, registered_at
		 FROM rfid_cards ORDER BY registered_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var card models.Card
		if err := rows.Scan(&card.ID, &card.CardUID, &card.PetugasName,
			&card.Keterangan, &card.Status, &card.RegisteredAt); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One extra round trip per card is fine at this fleet size
	for i := range cards {
		rooms, err := r.roomsForCard(ctx, cards[i].ID)
		if err != nil {
			return nil, err
		}
		cards[i].Ruangan = rooms
	}

	return cards, nil
}

// Delete removes a card; assignments go with it via ON DELETE CASCADE
func (r *CardRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM rfid_cards WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveRoom detaches a single room from a card
func (r *CardRepository) RemoveRoom(ctx context.Context, cardID, roomID int) error {
	tag, err := r.DB.Exec(ctx,
		`DELETE FROM rfid_ruangan_relasi WHERE rfid_card_id = $1 AND ruangan_id = $2`,
		cardID, roomID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CardRepository) roomsForCard(ctx context.Context, cardID int) ([]models.RoomLookup, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT dr.id, dr.nama_ruangan
		 FROM rfid_ruangan_relasi rr
		 JOIN daftar_ruangan dr ON dr.id = rr.ruangan_id
		 WHERE rr.rfid_card_id = $1
		 ORDER BY dr.nama_ruangan`,
		cardID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []models.RoomLookup{}
	for rows.Next() {
		var room models.RoomLookup
		if err := rows.Scan(&room.ID, &room.NamaRuangan); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}
