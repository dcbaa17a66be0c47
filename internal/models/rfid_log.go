package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Access log statuses. A tap is inserted as "tercatat" and moves to
// "selesai" exactly once, when the checklist is submitted. There is no
// stored rejected state: rejected taps never create a row.
const (
	LogStatusTercatat = "tercatat"
	LogStatusSelesai  = "selesai"
)

// RFIDLog is one admitted tap. PetugasName and Ruangan are snapshots taken
// at tap time, not live joins, so history keeps its original attribution
// even after the card is reassigned.
type RFIDLog struct {
	ID          int       `json:"id"`
	CardUID     string    `json:"card_uid"`
	PetugasName string    `json:"petugas_name"`
	Ruangan     string    `json:"ruangan"`
	Waktu       time.Time `json:"waktu"`
	Tanggal     string    `json:"tanggal"`
	Status      string    `json:"status"`

	ChecklistLantai                bool       `json:"checklist_lantai"`
	ChecklistKacaJendela           bool       `json:"checklist_kaca_jendela"`
	ChecklistPintu                 bool       `json:"checklist_pintu"`
	ChecklistLawaLawa              bool       `json:"checklist_lawa_lawa"`
	ChecklistLubangAngin           bool       `json:"checklist_lubang_angin"`
	ChecklistKusenJendelaDanPintu  bool       `json:"checklist_kusen_jendela_dan_pintu"`
	ChecklistKeterangan            string     `json:"checklist_keterangan"`
	ChecklistAt                    *time.Time `json:"checklist_at,omitempty"`

	// Current room assignments of the card, joined at read time for the
	// detail views. Distinct from the Ruangan snapshot above.
	RuanganList []RoomLookup `json:"ruangan_list,omitempty"`
}

// TapRequest is the device payload for POST /api/rfid/log.
type TapRequest struct {
	CardUID string `json:"card_uid"`
}

// FlexBool tolerates the encodings the form layer sends for the checklist
// fields: JSON booleans, "true"/"false", "1"/"0", "on"/"off" and bare
// numbers.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	s := strings.ToLower(strings.Trim(string(data), `" `))
	switch s {
	case "true", "1", "on", "ya", "yes":
		*b = true
		return nil
	case "false", "0", "off", "tidak", "no", "", "null":
		*b = false
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("cannot parse %q as boolean", s)
	}
	*b = f != 0
	return nil
}

// ChecklistRequest carries the six cleanliness criteria plus a remark.
// The criteria arrive as arbitrary JSON values from the form and are
// coerced to booleans.
type ChecklistRequest struct {
	ChecklistLantai               FlexBool `json:"checklist_lantai"`
	ChecklistKacaJendela          FlexBool `json:"checklist_kaca_jendela"`
	ChecklistPintu                FlexBool `json:"checklist_pintu"`
	ChecklistLawaLawa             FlexBool `json:"checklist_lawa_lawa"`
	ChecklistLubangAngin          FlexBool `json:"checklist_lubang_angin"`
	ChecklistKusenJendelaDanPintu FlexBool `json:"checklist_kusen_jendela_dan_pintu"`
	ChecklistKeterangan           string   `json:"checklist_keterangan"`
}

// LogFilter holds the optional query filters for the log listing.
// Search and Room are partial case-insensitive matches, Status and Tanggal
// are exact.
type LogFilter struct {
	Search  string
	Status  string
	Tanggal string
	Room    string
}

// DashboardSummary is the per-day aggregate for the supervisor dashboard.
type DashboardSummary struct {
	RuanganBersih    int `json:"ruangan_bersih"`
	PetugasAktif     int `json:"petugas_aktif"`
	PerluPembersihan int `json:"perlu_pembersihan"`
	BelumDicek       int `json:"belum_dicek"`
	TotalRuangan     int `json:"total_ruangan"`
}

// DashboardFilter narrows the summary to one room or staff member.
type DashboardFilter struct {
	Tanggal string
	Ruangan string
	Petugas string
}
