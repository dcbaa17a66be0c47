package models

import "time"

// Cleaning report validation statuses.
const (
	LaporanBelumDicek = "belum_dicek"
	LaporanSudahDicek = "sudah_dicek"
)

// LaporanKebersihan is a cleaning report submitted by a staff member,
// optionally with a photo, and validated later by a supervisor.
type LaporanKebersihan struct {
	ID             int       `json:"id"`
	Petugas        string    `json:"petugas"`
	Tanggal        string    `json:"tanggal"`
	Ruangan        string    `json:"ruangan"`
	Catatan        string    `json:"catatan"`
	Foto           string    `json:"foto"`
	StatusValidasi string    `json:"status_validasi"`
	StatusDisplay  string    `json:"status_display"`
	CreatedAt      time.Time `json:"created_at"`

	ChecklistLantai               bool   `json:"checklist_lantai"`
	ChecklistKacaJendela          bool   `json:"checklist_kaca_jendela"`
	ChecklistPintu                bool   `json:"checklist_pintu"`
	ChecklistLawaLawa             bool   `json:"checklist_lawa_lawa"`
	ChecklistLubangAngin          bool   `json:"checklist_lubang_angin"`
	ChecklistKusenJendelaDanPintu bool   `json:"checklist_kusen_jendela_dan_pintu"`
	ChecklistKeterangan           string `json:"checklist_keterangan"`
}

// CreateLaporanKebersihanRequest is the multipart form payload; Foto is the
// stored filename, set by the handler after the upload is written to disk.
type CreateLaporanKebersihanRequest struct {
	Petugas string
	Tanggal string
	Ruangan string
	Catatan string
	Foto    string
}

// ValidateLaporanRequest is the supervisor's validation payload: the new
// status plus the checklist filled in during the inspection.
type ValidateLaporanRequest struct {
	StatusValidasi string `json:"status_validasi"`
	ChecklistRequest
}

// PetugasRuangan is one staff-to-room pairing observed in reports.
type PetugasRuangan struct {
	Petugas string `json:"petugas"`
	Ruangan string `json:"ruangan"`
}

// LaporanKebutuhan is the simpler "supplies needed" report.
type LaporanKebutuhan struct {
	ID        int       `json:"id"`
	Ruangan   string    `json:"ruangan"`
	Tanggal   string    `json:"tanggal"`
	Pengguna  string    `json:"pengguna"`
	Catatan   string    `json:"catatan"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateLaporanKebutuhanRequest is the JSON payload for POST /api/laporan.
type CreateLaporanKebutuhanRequest struct {
	Ruangan  string `json:"ruangan"`
	Tanggal  string `json:"tanggal"`
	Pengguna string `json:"pengguna"`
	Catatan  string `json:"catatan"`
}
