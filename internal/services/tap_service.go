package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"clean-backend/internal/cache"
	"clean-backend/internal/metrics"
	"clean-backend/internal/models"
	"clean-backend/internal/timeutil"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// UnassignedLabel is stored in the log when the card has no room
// assignments at tap time.
const UnassignedLabel = "Belum ditugaskan"

type cardLookup interface {
	GetByUID(ctx context.Context, cardUID string) (*models.Card, error)
}

type tapStore interface {
	FindTodayTap(ctx context.Context, cardUID, tanggal string) (*models.RFIDLog, error)
	Insert(ctx context.Context, l *models.RFIDLog) error
}

type notifier interface {
	Dispatch(text string)
}

// TapService implements the daily tap gate: one admitted tap per card per
// day, enforced by a pre-check plus the unique index on (card_uid, tanggal).
type TapService struct {
	cards    cardLookup
	logs     tapStore
	notifier notifier
}

func NewTapService(cards cardLookup, logs tapStore, notifier notifier) *TapService {
	return &TapService{cards: cards, logs: logs, notifier: notifier}
}

// Tap processes a device tap. The sequence is fixed: check the daily gate,
// resolve the card, snapshot the assignment, insert, notify.
func (s *TapService) Tap(ctx context.Context, req *models.TapRequest) (*models.RFIDLog, error) {
	cardUID := strings.TrimSpace(req.CardUID)
	if cardUID == "" {
		return nil, NewValidationError("card_uid wajib diisi")
	}

	today := timeutil.Today()

	// Gate check comes before card resolution, so a card that already
	// tapped today keeps getting the conflict even if it has since been
	// deleted. A store failure here rejects the tap rather than risking a
	// duplicate admission.
	prior, err := s.logs.FindTodayTap(ctx, cardUID, today)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if prior != nil {
		metrics.TapsRejected.WithLabelValues("daily_limit").Inc()
		return nil, &AlreadyTappedError{Waktu: prior.Waktu, PetugasName: prior.PetugasName}
	}

	card, err := s.cards.GetByUID(ctx, cardUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			metrics.TapsRejected.WithLabelValues("unregistered").Inc()
			s.notifier.Dispatch(fmt.Sprintf(
				"⚠️ <b>Kartu tidak terdaftar</b>\nUID: %s\nWaktu: %s",
				cardUID, timeutil.Now().Format(timeutil.DateTimeLayout)))
			return nil, ErrCardNotRegistered
		}
		return nil, err
	}

	logEntry := &models.RFIDLog{
		CardUID:     cardUID,
		PetugasName: card.PetugasName,
		Ruangan:     roomSnapshot(card.Ruangan),
		Waktu:       timeutil.Now(),
		Tanggal:     today,
		Status:      models.LogStatusTercatat,
	}

	if err := s.logs.Insert(ctx, logEntry); err != nil {
		// Two taps raced past the pre-check; the unique index caught the
		// second one. Report it as the same daily-limit conflict.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			metrics.TapsRejected.WithLabelValues("daily_limit").Inc()
			winner, findErr := s.logs.FindTodayTap(ctx, cardUID, today)
			if findErr != nil {
				log.Printf("[Tap] lost race but could not load winning tap: %v", findErr)
				return nil, &AlreadyTappedError{Waktu: timeutil.Now(), PetugasName: card.PetugasName}
			}
			return nil, &AlreadyTappedError{Waktu: winner.Waktu, PetugasName: winner.PetugasName}
		}
		return nil, err
	}

	metrics.TapsAdmitted.Inc()
	cache.InvalidateSummaries(ctx)

	s.notifier.Dispatch(fmt.Sprintf(
		"🧹 <b>Tap masuk</b>\nPetugas: %s\nRuangan: %s\nWaktu: %s",
		logEntry.PetugasName, logEntry.Ruangan,
		timeutil.ToLocal(logEntry.Waktu).Format(timeutil.DateTimeLayout)))

	return logEntry, nil
}

// roomSnapshot joins the current assignment names for the denormalized
// ruangan column.
func roomSnapshot(rooms []models.RoomLookup) string {
	if len(rooms) == 0 {
		return UnassignedLabel
	}
	names := make([]string, len(rooms))
	for i, room := range rooms {
		names[i] = room.NamaRuangan
	}
	return strings.Join(names, ", ")
}
