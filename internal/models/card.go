package models

import "time"

// Card statuses
const (
	CardStatusActive   = "active"
	CardStatusInactive = "inactive"
)

// Card is a registered RFID card. PetugasName stays empty until a
// supervisor assigns the card to a staff member.
type Card struct {
	ID           int          `json:"id"`
	CardUID      string       `json:"card_uid"`
	PetugasName  string       `json:"petugas_name"`
	Keterangan   string       `json:"keterangan"`
	Status       string       `json:"status"`
	RegisteredAt time.Time    `json:"registered_at"`
	Ruangan      []RoomLookup `json:"ruangan"`
}

// RoomLookup is the compact room shape embedded in card and log responses.
type RoomLookup struct {
	ID          int    `json:"id"`
	NamaRuangan string `json:"nama_ruangan"`
}

// CreateCardRequest covers both the device path (card_uid only) and the
// web path (full metadata plus room ids).
type CreateCardRequest struct {
	CardUID     string `json:"card_uid"`
	PetugasName string `json:"petugas_name"`
	Keterangan  string `json:"keterangan"`
	Status      string `json:"status"`
	Ruangan     []int  `json:"ruangan"`
}

// UpdateCardRequest replaces the card row and its full room assignment set.
type UpdateCardRequest struct {
	PetugasName string `json:"petugas_name"`
	Keterangan  string `json:"keterangan"`
	Status      string `json:"status"`
	Ruangan     []int  `json:"ruangan"`
}

// CheckCardResponse is returned by the device-facing check endpoint.
type CheckCardResponse struct {
	Registered  bool         `json:"registered"`
	ID          int          `json:"id,omitempty"`
	PetugasName string       `json:"petugas_name,omitempty"`
	Ruangan     []RoomLookup `json:"ruangan,omitempty"`
}
