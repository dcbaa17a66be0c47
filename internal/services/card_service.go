package services

import (
	"context"
	"errors"
	"strings"

	"clean-backend/internal/cache"
	"clean-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type cardStore interface {
	CreateWithRooms(ctx context.Context, card *models.Card, roomIDs []int) error
	UpdateWithRooms(ctx context.Context, id int, req *models.UpdateCardRequest) error
	Get(ctx context.Context, id int) (*models.Card, error)
	GetByUID(ctx context.Context, cardUID string) (*models.Card, error)
	List(ctx context.Context) ([]models.Card, error)
	Delete(ctx context.Context, id int) error
	RemoveRoom(ctx context.Context, cardID, roomID int) error
}

type CardService struct {
	cards cardStore
}

func NewCardService(cards cardStore) *CardService {
	return &CardService{cards: cards}
}

// Register creates a new card. The device path sends only the UID; the
// web path sends the full metadata with room ids.
func (s *CardService) Register(ctx context.Context, req *models.CreateCardRequest) (*models.Card, error) {
	cardUID := strings.TrimSpace(req.CardUID)
	if cardUID == "" {
		return nil, NewValidationError("card_uid wajib diisi")
	}

	if _, err := s.cards.GetByUID(ctx, cardUID); err == nil {
		return nil, ErrCardAlreadyRegistered
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.CardStatusActive
	}
	if status != models.CardStatusActive && status != models.CardStatusInactive {
		return nil, NewValidationError("status harus active atau inactive")
	}

	card := &models.Card{
		CardUID:     cardUID,
		PetugasName: strings.TrimSpace(req.PetugasName),
		Keterangan:  req.Keterangan,
		Status:      status,
	}

	if err := s.cards.CreateWithRooms(ctx, card, cleanRoomIDs(req.Ruangan)); err != nil {
		// A concurrent registration can slip past the lookup above; the
		// unique constraint on card_uid reports it.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrCardAlreadyRegistered
		}
		return nil, err
	}

	cache.InvalidateSummaries(ctx)
	return s.cards.Get(ctx, card.ID)
}

// Update replaces the card metadata and its full room assignment set
func (s *CardService) Update(ctx context.Context, id int, req *models.UpdateCardRequest) (*models.Card, error) {
	if strings.TrimSpace(req.PetugasName) == "" {
		return nil, NewValidationError("petugas_name wajib diisi")
	}
	if req.Status != models.CardStatusActive && req.Status != models.CardStatusInactive {
		return nil, NewValidationError("status harus active atau inactive")
	}

	req.Ruangan = cleanRoomIDs(req.Ruangan)
	if err := s.cards.UpdateWithRooms(ctx, id, req); err != nil {
		return nil, err
	}

	cache.InvalidateSummaries(ctx)
	return s.cards.Get(ctx, id)
}

// cleanRoomIDs drops the zero values that blank room selects in the web
// form arrive as, so they never reach the assignment insert.
func cleanRoomIDs(ids []int) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id > 0 {
			out = append(out, id)
		}
	}
	return out
}

// Check is the device-facing lookup: registered or not, never an error for
// an unknown UID.
func (s *CardService) Check(ctx context.Context, cardUID string) (*models.CheckCardResponse, error) {
	cardUID = strings.TrimSpace(cardUID)
	if cardUID == "" {
		return nil, NewValidationError("card_uid wajib diisi")
	}

	card, err := s.cards.GetByUID(ctx, cardUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.CheckCardResponse{Registered: false}, nil
		}
		return nil, err
	}

	return &models.CheckCardResponse{
		Registered:  true,
		ID:          card.ID,
		PetugasName: card.PetugasName,
		Ruangan:     card.Ruangan,
	}, nil
}

func (s *CardService) Get(ctx context.Context, id int) (*models.Card, error) {
	return s.cards.Get(ctx, id)
}

func (s *CardService) List(ctx context.Context) ([]models.Card, error) {
	return s.cards.List(ctx)
}

func (s *CardService) Delete(ctx context.Context, id int) error {
	if err := s.cards.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateSummaries(ctx)
	return nil
}

// RemoveRoom detaches one room from a card without touching the rest of
// the assignment set.
func (s *CardService) RemoveRoom(ctx context.Context, cardID, roomID int) error {
	if err := s.cards.RemoveRoom(ctx, cardID, roomID); err != nil {
		return err
	}
	cache.InvalidateSummaries(ctx)
	return nil
}
