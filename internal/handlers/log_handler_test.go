package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clean-backend/internal/models"
	"clean-backend/internal/services"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCards struct {
	cards map[string]*models.Card
}

func (s *stubCards) GetByUID(_ context.Context, uid string) (*models.Card, error) {
	card, ok := s.cards[uid]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return card, nil
}

type stubTapStore struct {
	taps     map[string]*models.RFIDLog
	inserted int
}

func (s *stubTapStore) FindTodayTap(_ context.Context, uid, tanggal string) (*models.RFIDLog, error) {
	tap, ok := s.taps[uid+"|"+tanggal]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return tap, nil
}

func (s *stubTapStore) Insert(_ context.Context, l *models.RFIDLog) error {
	s.inserted++
	l.ID = s.inserted
	s.taps[l.CardUID+"|"+l.Tanggal] = l
	return nil
}

type silentNotifier struct{}

func (silentNotifier) Dispatch(string) {}

func newTapRouter(cards *stubCards, store *stubTapStore) *mux.Router {
	tapService := services.NewTapService(cards, store, silentNotifier{})
	handler := NewLogHandler(tapService, nil, nil)

	r := mux.NewRouter()
	r.HandleFunc("/api/rfid/log", handler.Tap).Methods("POST")
	return r
}

func postTap(t *testing.T, router *mux.Router, cardUID string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(models.TapRequest{CardUID: cardUID})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/rfid/log", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTapEndpointAdmitsFirstTap(t *testing.T) {
	cards := &stubCards{cards: map[string]*models.Card{
		"CARD1": {ID: 1, CardUID: "CARD1", PetugasName: "Budi", Status: models.CardStatusActive},
	}}
	store := &stubTapStore{taps: make(map[string]*models.RFIDLog)}
	router := newTapRouter(cards, store)

	rec := postTap(t, router, "CARD1")
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    models.RFIDLog `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Budi", resp.Data.PetugasName)
	assert.Equal(t, models.LogStatusTercatat, resp.Data.Status)
}

func TestTapEndpointSecondTapConflict(t *testing.T) {
	cards := &stubCards{cards: map[string]*models.Card{
		"CARD1": {ID: 1, CardUID: "CARD1", PetugasName: "Budi", Status: models.CardStatusActive},
	}}
	store := &stubTapStore{taps: make(map[string]*models.RFIDLog)}
	router := newTapRouter(cards, store)

	first := postTap(t, router, "CARD1")
	require.Equal(t, http.StatusCreated, first.Code)

	second := postTap(t, router, "CARD1")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	var resp struct {
		Success     bool   `json:"success"`
		Code        string `json:"code"`
		LastTap     string `json:"lastTap"`
		PetugasName string `json:"petugas_name"`
	}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "SUDAH_TAP_HARI_INI", resp.Code)
	assert.Equal(t, "Budi", resp.PetugasName)
	assert.NotEmpty(t, resp.LastTap)
	assert.Equal(t, 1, store.inserted)
}

func TestTapEndpointUnregisteredCard(t *testing.T) {
	cards := &stubCards{cards: map[string]*models.Card{}}
	store := &stubTapStore{taps: make(map[string]*models.RFIDLog)}
	router := newTapRouter(cards, store)

	rec := postTap(t, router, "GHOST")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "KARTU_TIDAK_TERDAFTAR", resp.Code)
}

func TestTapEndpointMissingUID(t *testing.T) {
	router := newTapRouter(
		&stubCards{cards: map[string]*models.Card{}},
		&stubTapStore{taps: make(map[string]*models.RFIDLog)},
	)

	rec := postTap(t, router, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type stubLogStore struct {
	byID       map[int]*models.RFIDLog
	lastFilter models.LogFilter
}

func (s *stubLogStore) List(_ context.Context, filter models.LogFilter) ([]models.RFIDLog, error) {
	s.lastFilter = filter
	var out []models.RFIDLog
	for _, l := range s.byID {
		out = append(out, *l)
	}
	return out, nil
}

func (s *stubLogStore) ListRange(_ context.Context, _, _ string) ([]models.RFIDLog, error) {
	return nil, nil
}

func (s *stubLogStore) Get(_ context.Context, id int) (*models.RFIDLog, error) {
	l, ok := s.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return l, nil
}

func (s *stubLogStore) Delete(_ context.Context, id int) error {
	if _, ok := s.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.byID, id)
	return nil
}

func (s *stubLogStore) UpdateChecklist(_ context.Context, id int, req *models.ChecklistRequest) (*models.RFIDLog, error) {
	l, ok := s.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	l.Status = models.LogStatusSelesai
	l.ChecklistKeterangan = req.ChecklistKeterangan
	now := time.Now()
	l.ChecklistAt = &now
	return l, nil
}

func (s *stubLogStore) DashboardSummary(_ context.Context, _ models.DashboardFilter) (*models.DashboardSummary, error) {
	return &models.DashboardSummary{TotalRuangan: 5}, nil
}

func newLogRouter(store *stubLogStore) *mux.Router {
	logService := services.NewLogService(store)
	handler := NewLogHandler(nil, logService, nil)

	r := mux.NewRouter()
	r.HandleFunc("/api/rfid/logs", handler.List).Methods("GET")
	r.HandleFunc("/api/rfid/logs/{id}", handler.Get).Methods("GET")
	r.HandleFunc("/api/rfid/logs/{id}/checklist", handler.SubmitChecklist).Methods("PUT")
	r.HandleFunc("/api/rfid/dashboard/summary", handler.Summary).Methods("GET")
	return r
}

func TestListLogsParsesFilters(t *testing.T) {
	store := &stubLogStore{byID: map[int]*models.RFIDLog{}}
	router := newLogRouter(store)

	req := httptest.NewRequest(http.MethodGet,
		"/api/rfid/logs?search=budi&status=selesai&date=2025-06-01&room=lobi", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "budi", store.lastFilter.Search)
	assert.Equal(t, "selesai", store.lastFilter.Status)
	assert.Equal(t, "2025-06-01", store.lastFilter.Tanggal)
	assert.Equal(t, "lobi", store.lastFilter.Room)
}

func TestGetLogNotFound(t *testing.T) {
	router := newLogRouter(&stubLogStore{byID: map[int]*models.RFIDLog{}})

	req := httptest.NewRequest(http.MethodGet, "/api/rfid/logs/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitChecklistEndpoint(t *testing.T) {
	store := &stubLogStore{byID: map[int]*models.RFIDLog{
		3: {ID: 3, CardUID: "CARD1", Status: models.LogStatusTercatat},
	}}
	router := newLogRouter(store)

	body := []byte(`{"checklist_lantai": true, "checklist_keterangan": "aman"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/rfid/logs/3/checklist", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.LogStatusSelesai, store.byID[3].Status)
}

func TestSummaryEndpoint(t *testing.T) {
	router := newLogRouter(&stubLogStore{byID: map[int]*models.RFIDLog{}})

	req := httptest.NewRequest(http.MethodGet, "/api/rfid/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.DashboardSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Data.TotalRuangan)
}
