package suggest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domainap "github.com/barberbook/barberbook-api/internal/domain/appointment"
	domaincli "github.com/barberbook/barberbook-api/internal/domain/client"
	"github.com/barberbook/barberbook-api/internal/models"
)

func strptr(s string) *string { return &s }

func activeClient(id, name string) models.Client {
	return models.Client{ID: id, Name: name, Status: string(domaincli.StatusActive)}
}

func TestBuildCandidatesCadence(t *testing.T) {
	clients := []models.Client{activeClient("c1", "Ana Souza")}
	aps := []models.Appointment{
		{ClientID: "c1", Date: "2026-01-01", Status: string(domainap.StatusCompleted)},
		{ClientID: "c1", Date: "2026-01-15", Status: string(domainap.StatusCompleted)},
		{ClientID: "c1", Date: "2026-02-12", Status: string(domainap.StatusCompleted)},
	}

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	out := BuildCandidates(clients, aps, nil, now, time.UTC)

	require.Len(t, out, 1)
	cand := out[0]

	// intervalos de 14 e 28 dias: cadência média 21
	require.Equal(t, 21, cand.FrequencyDays)
	require.Equal(t, "2026-02-12", cand.LastVisit)
	require.Equal(t, "2026-03-05", cand.DueDate)
	require.False(t, cand.Overdue)
}

func TestBuildCandidatesOverdue(t *testing.T) {
	clients := []models.Client{activeClient("c1", "Bruno Lima")}
	aps := []models.Appointment{
		{ClientID: "c1", Date: "2026-01-01", Status: string(domainap.StatusCompleted)},
		{ClientID: "c1", Date: "2026-01-11", Status: string(domainap.StatusCompleted)},
	}

	// prevista para 2026-01-21, hoje é bem depois
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	out := BuildCandidates(clients, aps, nil, now, time.UTC)

	require.Len(t, out, 1)
	require.Equal(t, "2026-01-21", out[0].DueDate)
	require.True(t, out[0].Overdue)
}

func TestBuildCandidatesSkipsInactiveAndSparse(t *testing.T) {
	clients := []models.Client{
		{ID: "c1", Name: "Inativo", Status: string(domaincli.StatusInactive)},
		{ID: "c2", Name: "Novo", Status: string(domaincli.StatusNew)},
		activeClient("c3", "Uma Visita"),
	}
	aps := []models.Appointment{
		{ClientID: "c1", Date: "2026-01-01"},
		{ClientID: "c1", Date: "2026-01-10"},
		{ClientID: "c2", Date: "2026-01-01"},
		{ClientID: "c2", Date: "2026-01-10"},
		{ClientID: "c3", Date: "2026-01-01"},
	}

	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	out := BuildCandidates(clients, aps, nil, now, time.UTC)

	require.Empty(t, out)
}

func TestBuildCandidatesIgnoresCancelled(t *testing.T) {
	clients := []models.Client{activeClient("c1", "Carla Dias")}
	aps := []models.Appointment{
		{ClientID: "c1", Date: "2026-01-01", Status: string(domainap.StatusCompleted)},
		{ClientID: "c1", Date: "2026-01-08", Status: string(domainap.StatusCancelled)},
		{ClientID: "c1", Date: "2026-01-15", Status: string(domainap.StatusCompleted)},
	}

	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	out := BuildCandidates(clients, aps, nil, now, time.UTC)

	require.Len(t, out, 1)
	// cancelado não conta: gap único de 14 dias
	require.Equal(t, 14, out[0].FrequencyDays)
}

func TestBuildCandidatesPreferences(t *testing.T) {
	clients := []models.Client{activeClient("c1", "Diego Prado")}
	services := []models.Service{
		{ID: "corte", Name: "Corte"},
		{ID: "barba", Name: "Barba"},
	}
	aps := []models.Appointment{
		// segundas (05 e 12) e uma quarta (21)
		{ClientID: "c1", Date: "2026-01-05", ServiceID: strptr("corte"), Status: string(domainap.StatusCompleted)},
		{ClientID: "c1", Date: "2026-01-12", ServiceID: strptr("corte"), Status: string(domainap.StatusCompleted)},
		{ClientID: "c1", Date: "2026-01-21", ServiceID: strptr("barba"), Status: string(domainap.StatusCompleted)},
	}

	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	out := BuildCandidates(clients, aps, services, now, time.UTC)

	require.Len(t, out, 1)
	require.Equal(t, "Corte", out[0].PreferredService)
	require.Equal(t, []string{"Segunda", "Quarta"}, out[0].PreferredDays)
}

func TestBuildCandidatesSorted(t *testing.T) {
	clients := []models.Client{
		activeClient("c1", "Zeca"),
		activeClient("c2", "Abel"),
	}
	aps := []models.Appointment{
		// Zeca: prevista para 2026-01-19
		{ClientID: "c1", Date: "2026-01-01"},
		{ClientID: "c1", Date: "2026-01-10", Status: string(domainap.StatusCompleted)},
		// Abel: prevista para 2026-02-10
		{ClientID: "c2", Date: "2026-01-01"},
		{ClientID: "c2", Date: "2026-01-21", Status: string(domainap.StatusCompleted)},
	}

	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	out := BuildCandidates(clients, aps, nil, now, time.UTC)

	require.Len(t, out, 2)
	require.Equal(t, "Zeca", out[0].ClientName)
	require.Equal(t, "Abel", out[1].ClientName)
}
