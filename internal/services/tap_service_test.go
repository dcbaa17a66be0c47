package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"clean-backend/internal/models"
	"clean-backend/internal/timeutil"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCardLookup struct {
	cards map[string]*models.Card
}

func (f *fakeCardLookup) GetByUID(_ context.Context, cardUID string) (*models.Card, error) {
	card, ok := f.cards[cardUID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return card, nil
}

type fakeTapStore struct {
	mu        sync.Mutex
	taps      map[string]*models.RFIDLog // keyed by card_uid + tanggal
	findErr   error
	insertErr error
	inserted  []*models.RFIDLog
}

func newFakeTapStore() *fakeTapStore {
	return &fakeTapStore{taps: make(map[string]*models.RFIDLog)}
}

func (f *fakeTapStore) FindTodayTap(_ context.Context, cardUID, tanggal string) (*models.RFIDLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	tap, ok := f.taps[cardUID+"|"+tanggal]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return tap, nil
}

func (f *fakeTapStore) Insert(_ context.Context, l *models.RFIDLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	l.ID = len(f.inserted) + 1
	f.inserted = append(f.inserted, l)
	f.taps[l.CardUID+"|"+l.Tanggal] = l
	return nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (f *fakeNotifier) Dispatch(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, text)
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func TestTapAfterCardDeletedStillConflicts(t *testing.T) {
	store := newFakeTapStore()
	tapped := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	store.taps["ABC123|"+timeutil.Today()] = &models.RFIDLog{
		CardUID: "ABC123", PetugasName: "Budi", Waktu: tapped, Tanggal: timeutil.Today(),
	}

	// Card removed from the registry after this morning's tap. The gate
	// still answers first.
	svc := NewTapService(&fakeCardLookup{cards: map[string]*models.Card{}}, store, &fakeNotifier{})

	_, err := svc.Tap(context.Background(), &models.TapRequest{CardUID: "ABC123"})
	var already *AlreadyTappedError
	require.ErrorAs(t, err, &already)
	assert.Equal(t, tapped, already.Waktu)
	assert.Equal(t, "Budi", already.PetugasName)
}

func cardWithRooms(uid, petugas string, rooms ...string) *models.Card {
	card := &models.Card{ID: 1, CardUID: uid, PetugasName: petugas, Status: models.CardStatusActive}
	for i, name := range rooms {
		card.Ruangan = append(card.Ruangan, models.RoomLookup{ID: i + 1, NamaRuangan: name})
	}
	return card
}

func TestTapAdmitted(t *testing.T) {
	cards := &fakeCardLookup{cards: map[string]*models.Card{
		"ABC123": cardWithRooms("ABC123", "Budi", "Ruang Server", "Lobi"),
	}}
	store := newFakeTapStore()
	notifier := &fakeNotifier{}
	svc := NewTapService(cards, store, notifier)

	logEntry, err := svc.Tap(context.Background(), &models.TapRequest{CardUID: "ABC123"})
	require.NoError(t, err)

	assert.Equal(t, "ABC123", logEntry.CardUID)
	assert.Equal(t, "Budi", logEntry.PetugasName)
	assert.Equal(t, "Ruang Server, Lobi", logEntry.Ruangan)
	assert.Equal(t, models.LogStatusTercatat, logEntry.Status)
	assert.NotZero(t, logEntry.ID)
	assert.Equal(t, 1, notifier.count())
}

func TestTapUnassignedCard(t *testing.T) {
	cards := &fakeCardLookup{cards: map[string]*models.Card{
		"NOROOM": cardWithRooms("NOROOM", "Siti"),
	}}
	svc := NewTapService(cards, newFakeTapStore(), &fakeNotifier{})

	logEntry, err := svc.Tap(context.Background(), &models.TapRequest{CardUID: "NOROOM"})
	require.NoError(t, err)
	assert.Equal(t, UnassignedLabel, logEntry.Ruangan)
}

func TestTapUnregisteredCard(t *testing.T) {
	cards := &fakeCardLookup{cards: map[string]*models.Card{}}
	notifier := &fakeNotifier{}
	svc := NewTapService(cards, newFakeTapStore(), notifier)

	_, err := svc.Tap(context.Background(), &models.TapRequest{CardUID: "UNKNOWN"})
	assert.ErrorIs(t, err, ErrCardNotRegistered)
	assert.Equal(t, 1, notifier.count(), "unregistered tap should alert the supervisor channel")
}

func TestTapEmptyUID(t *testing.T) {
	svc := NewTapService(&fakeCardLookup{}, newFakeTapStore(), &fakeNotifier{})

	_, err := svc.Tap(context.Background(), &models.TapRequest{CardUID: "   "})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestTapSecondTimeSameDayRejected(t *testing.T) {
	cards := &fakeCardLookup{cards: map[string]*models.Card{
		"ABC123": cardWithRooms("ABC123", "Budi", "Lobi"),
	}}
	store := newFakeTapStore()
	svc := NewTapService(cards, store, &fakeNotifier{})

	first, err := svc.Tap(context.Background(), &models.TapRequest{CardUID: "ABC123"})
	require.NoError(t, err)

	_, err = svc.Tap(context.Background(), &models.TapRequest{CardUID: "ABC123"})
	var tapped *AlreadyTappedError
	require.ErrorAs(t, err, &tapped)
	assert.Equal(t, first.Waktu, tapped.Waktu)
	assert.Equal(t, "Budi", tapped.PetugasName)
	assert.Len(t, store.inserted, 1, "second tap must not insert")
}

func TestTapGateStoreFailureRejects(t *testing.T) {
	cards := &fakeCardLookup{cards: map[string]*models.Card{
		"ABC123": cardWithRooms("ABC123", "Budi", "Lobi"),
	}}
	store := newFakeTapStore()
	store.findErr = errors.New("connection reset")
	svc := NewTapService(cards, store, &fakeNotifier{})

	_, err := svc.Tap(context.Background(), &models.TapRequest{CardUID: "ABC123"})
	require.Error(t, err)
	assert.Empty(t, store.inserted, "tap must not be admitted when the gate cannot be checked")
}

func TestTapRaceMapsUniqueViolationToConflict(t *testing.T) {
	cards := &fakeCardLookup{cards: map[string]*models.Card{
		"ABC123": cardWithRooms("ABC123", "Budi", "Lobi"),
	}}
	// Simulate losing the race: the pre-check sees nothing but the insert
	// hits the unique index, after which the winning row is visible.
	winnerTime := time.Now().Add(-time.Minute)
	raceStore := &racingTapStore{fakeTapStore: newFakeTapStore(), winner: &models.RFIDLog{
		CardUID: "ABC123", PetugasName: "Budi", Waktu: winnerTime,
	}}
	svc := NewTapService(cards, raceStore, &fakeNotifier{})

	_, err := svc.Tap(context.Background(), &models.TapRequest{CardUID: "ABC123"})
	var tapped *AlreadyTappedError
	require.ErrorAs(t, err, &tapped)
	assert.Equal(t, winnerTime, tapped.Waktu)
}

// racingTapStore reports no prior tap before insert, then reveals the
// winner afterwards.
type racingTapStore struct {
	*fakeTapStore
	winner       *models.RFIDLog
	insertCalled bool
}

func (r *racingTapStore) FindTodayTap(_ context.Context, _, _ string) (*models.RFIDLog, error) {
	if r.insertCalled {
		return r.winner, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *racingTapStore) Insert(_ context.Context, _ *models.RFIDLog) error {
	r.insertCalled = true
	return &pgconn.PgError{Code: "23505"}
}
