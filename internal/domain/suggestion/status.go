package suggestion

import (
	"time"

	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
)

// ===============================
// Suggestion Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusSent      Status = "sent"
	StatusConfirmed Status = "confirmed"
	StatusDismissed Status = "dismissed"
)

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Domain Actions
// ===============================

func Send(s *models.Suggestion, now time.Time) error {
	if Status(s.Status) != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	s.Status = string(StatusSent)
	s.SentAt = &now
	return nil
}

func Confirm(s *models.Suggestion, now time.Time) error {
	if Status(s.Status) != StatusSent {
		return httperr.ErrBusiness("invalid_state")
	}
	s.Status = string(StatusConfirmed)
	s.ConfirmedAt = &now
	return nil
}

func Dismiss(s *models.Suggestion) error {
	switch Status(s.Status) {
	case StatusPending, StatusSent:
		s.Status = string(StatusDismissed)
		return nil
	}
	return httperr.ErrBusiness("invalid_state")
}
