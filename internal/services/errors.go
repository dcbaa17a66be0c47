package services

import (
	"errors"
	"fmt"
	"time"
)

// ErrCardNotRegistered means the tapped UID has no card row. The handler
// maps it to 404 with code KARTU_TIDAK_TERDAFTAR.
var ErrCardNotRegistered = errors.New("card not registered")

// ErrCardAlreadyRegistered means a register attempt reused an existing UID.
var ErrCardAlreadyRegistered = errors.New("card already registered")

// ValidationError marks bad input; handlers map it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// AlreadyTappedError is the daily gate conflict: the card already has an
// admitted tap today. Handlers map it to 429 with code SUDAH_TAP_HARI_INI
// and echo the prior tap's time and holder.
type AlreadyTappedError struct {
	Waktu       time.Time
	PetugasName string
}

func (e *AlreadyTappedError) Error() string {
	return fmt.Sprintf("card already tapped today at %s", e.Waktu.Format("15:04:05"))
}
