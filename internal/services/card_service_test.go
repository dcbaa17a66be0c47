package services

import (
	"context"
	"testing"

	"clean-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCardStore struct {
	byUID   map[string]*models.Card
	byID    map[int]*models.Card
	nextID  int
	deleted []int
}

func newFakeCardStore() *fakeCardStore {
	return &fakeCardStore{
		byUID:  make(map[string]*models.Card),
		byID:   make(map[int]*models.Card),
		nextID: 1,
	}
}

func (f *fakeCardStore) CreateWithRooms(_ context.Context, card *models.Card, roomIDs []int) error {
	card.ID = f.nextID
	f.nextID++
	for _, id := range roomIDs {
		card.Ruangan = append(card.Ruangan, models.RoomLookup{ID: id})
	}
	f.byUID[card.CardUID] = card
	f.byID[card.ID] = card
	return nil
}

func (f *fakeCardStore) UpdateWithRooms(_ context.Context, id int, req *models.UpdateCardRequest) error {
	card, ok := f.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	card.PetugasName = req.PetugasName
	card.Keterangan = req.Keterangan
	card.Status = req.Status
	card.Ruangan = nil
	for _, roomID := range req.Ruangan {
		card.Ruangan = append(card.Ruangan, models.RoomLookup{ID: roomID})
	}
	return nil
}

func (f *fakeCardStore) Get(_ context.Context, id int) (*models.Card, error) {
	card, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return card, nil
}

func (f *fakeCardStore) GetByUID(_ context.Context, cardUID string) (*models.Card, error) {
	card, ok := f.byUID[cardUID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return card, nil
}

func (f *fakeCardStore) List(_ context.Context) ([]models.Card, error) {
	var cards []models.Card
	for _, card := range f.byID {
		cards = append(cards, *card)
	}
	return cards, nil
}

func (f *fakeCardStore) Delete(_ context.Context, id int) error {
	card, ok := f.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	delete(f.byUID, card.CardUID)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCardStore) RemoveRoom(_ context.Context, cardID, roomID int) error {
	card, ok := f.byID[cardID]
	if !ok {
		return pgx.ErrNoRows
	}
	for i, room := range card.Ruangan {
		if room.ID == roomID {
			card.Ruangan = append(card.Ruangan[:i], card.Ruangan[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func TestRegisterCardDefaultsToActive(t *testing.T) {
	svc := NewCardService(newFakeCardStore())

	card, err := svc.Register(context.Background(), &models.CreateCardRequest{CardUID: "CARD1"})
	require.NoError(t, err)
	assert.Equal(t, models.CardStatusActive, card.Status)
}

func TestRegisterDuplicateUID(t *testing.T) {
	svc := NewCardService(newFakeCardStore())

	_, err := svc.Register(context.Background(), &models.CreateCardRequest{CardUID: "CARD1"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &models.CreateCardRequest{CardUID: "CARD1"})
	assert.ErrorIs(t, err, ErrCardAlreadyRegistered)
}

func TestRegisterRejectsUnknownStatus(t *testing.T) {
	svc := NewCardService(newFakeCardStore())

	_, err := svc.Register(context.Background(), &models.CreateCardRequest{
		CardUID: "CARD1",
		Status:  "suspended",
	})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestUpdateReplacesRoomAssignments(t *testing.T) {
	store := newFakeCardStore()
	svc := NewCardService(store)

	card, err := svc.Register(context.Background(), &models.CreateCardRequest{
		CardUID:     "CARD1",
		PetugasName: "Budi",
		Ruangan:     []int{1, 2},
	})
	require.NoError(t, err)
	require.Len(t, card.Ruangan, 2)

	updated, err := svc.Update(context.Background(), card.ID, &models.UpdateCardRequest{
		PetugasName: "Budi",
		Status:      models.CardStatusActive,
		Ruangan:     []int{3},
	})
	require.NoError(t, err)
	require.Len(t, updated.Ruangan, 1)
	assert.Equal(t, 3, updated.Ruangan[0].ID)
}

func TestUpdateSkipsBlankRoomIDs(t *testing.T) {
	store := newFakeCardStore()
	svc := NewCardService(store)

	card, err := svc.Register(context.Background(), &models.CreateCardRequest{
		CardUID:     "CARD1",
		PetugasName: "Budi",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), card.ID, &models.UpdateCardRequest{
		PetugasName: "Budi",
		Status:      models.CardStatusActive,
		Ruangan:     []int{0, 2, 0},
	})
	require.NoError(t, err)
	require.Len(t, updated.Ruangan, 1)
	assert.Equal(t, 2, updated.Ruangan[0].ID)
}

func TestRegisterSkipsBlankRoomIDs(t *testing.T) {
	svc := NewCardService(newFakeCardStore())

	card, err := svc.Register(context.Background(), &models.CreateCardRequest{
		CardUID: "CARD1",
		Ruangan: []int{0, 1},
	})
	require.NoError(t, err)
	require.Len(t, card.Ruangan, 1)
	assert.Equal(t, 1, card.Ruangan[0].ID)
}

// racingCardStore simulates two registrations racing: the lookup misses but
// the insert trips the unique constraint on card_uid.
type racingCardStore struct {
	*fakeCardStore
}

func (r *racingCardStore) CreateWithRooms(context.Context, *models.Card, []int) error {
	return &pgconn.PgError{Code: "23505"}
}

func TestRegisterRaceMapsUniqueViolationToConflict(t *testing.T) {
	svc := NewCardService(&racingCardStore{fakeCardStore: newFakeCardStore()})

	_, err := svc.Register(context.Background(), &models.CreateCardRequest{CardUID: "CARD1"})
	assert.ErrorIs(t, err, ErrCardAlreadyRegistered)
}

func TestCheckUnknownCardIsNotAnError(t *testing.T) {
	svc := NewCardService(newFakeCardStore())

	resp, err := svc.Check(context.Background(), "GHOST")
	require.NoError(t, err)
	assert.False(t, resp.Registered)
}

func TestCheckRegisteredCard(t *testing.T) {
	store := newFakeCardStore()
	svc := NewCardService(store)

	_, err := svc.Register(context.Background(), &models.CreateCardRequest{
		CardUID:     "CARD1",
		PetugasName: "Siti",
	})
	require.NoError(t, err)

	resp, err := svc.Check(context.Background(), "CARD1")
	require.NoError(t, err)
	assert.True(t, resp.Registered)
	assert.Equal(t, "Siti", resp.PetugasName)
}
