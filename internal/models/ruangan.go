package models

import "time"

// Ruangan is one room in the facility directory. PetugasKebersihan is an
// informal denormalized field kept for the report forms; the authoritative
// card-to-room relation lives in rfid_ruangan_relasi.
type Ruangan struct {
	ID                    int       `json:"id"`
	NamaRuangan           string    `json:"nama_ruangan"`
	PetugasKebersihan     string    `json:"petugas_kebersihan"`
	PenanggungJawab       string    `json:"penanggung_jawab"`
	KoordinatorKebersihan string    `json:"koordinator_kebersihan"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// RuanganRequest is shared by create and update.
type RuanganRequest struct {
	NamaRuangan           string `json:"nama_ruangan"`
	PetugasKebersihan     string `json:"petugas_kebersihan"`
	PenanggungJawab       string `json:"penanggung_jawab"`
	KoordinatorKebersihan string `json:"koordinator_kebersihan"`
}
