package suggestion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
)

func TestSuggestionLifecycle(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s := &models.Suggestion{Status: string(InitialStatus())}

	require.NoError(t, Send(s, now))
	require.Equal(t, string(StatusSent), s.Status)
	require.NotNil(t, s.SentAt)

	require.NoError(t, Confirm(s, now.Add(time.Hour)))
	require.Equal(t, string(StatusConfirmed), s.Status)
	require.NotNil(t, s.ConfirmedAt)
}

func TestSuggestionInvalidTransitions(t *testing.T) {
	now := time.Now()

	// confirmar sem enviar
	s := &models.Suggestion{Status: string(StatusPending)}
	err := Confirm(s, now)
	require.True(t, httperr.IsBusiness(err, "invalid_state"))

	// reenviar
	s = &models.Suggestion{Status: string(StatusSent)}
	require.True(t, httperr.IsBusiness(Send(s, now), "invalid_state"))

	// dispensar algo já confirmado
	s = &models.Suggestion{Status: string(StatusConfirmed)}
	require.True(t, httperr.IsBusiness(Dismiss(s), "invalid_state"))
}

func TestSuggestionDismiss(t *testing.T) {
	s := &models.Suggestion{Status: string(StatusPending)}
	require.NoError(t, Dismiss(s))
	require.Equal(t, string(StatusDismissed), s.Status)

	s = &models.Suggestion{Status: string(StatusSent)}
	require.NoError(t, Dismiss(s))
	require.Equal(t, string(StatusDismissed), s.Status)
}
