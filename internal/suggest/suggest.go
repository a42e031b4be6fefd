package suggest

import (
	"sort"
	"time"

	domainap "github.com/barberbook/barberbook-api/internal/domain/appointment"
	domaincli "github.com/barberbook/barberbook-api/internal/domain/client"
	"github.com/barberbook/barberbook-api/internal/models"
	"github.com/barberbook/barberbook-api/internal/schedule"
)

// Candidato a agendamento proativo: cliente ativo cuja cadência de
// visitas permite prever a próxima data.
type Candidate struct {
	ClientID      string   `json:"client_id"`
	ClientName    string   `json:"client_name"`
	LastVisit     string   `json:"last_visit"`
	FrequencyDays int      `json:"frequency_days"`
	DueDate       string   `json:"due_date"`

	PreferredService string   `json:"preferred_service"`
	PreferredDays    []string `json:"preferred_days"`

	Overdue bool `json:"overdue"`
}

var weekdayNames = [7]string{
	"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado",
}

// BuildCandidates deriva a tabela "clientes para agendar" do histórico:
// cadência = média dos intervalos entre agendamentos consecutivos,
// data prevista = última visita + cadência. Clientes com menos de dois
// agendamentos datados não têm cadência e ficam de fora; cancelados não
// contam como visita.
func BuildCandidates(
	clients []models.Client,
	aps []models.Appointment,
	services []models.Service,
	now time.Time,
	loc *time.Location,
) []Candidate {

	serviceNames := make(map[string]string, len(services))
	for _, s := range services {
		serviceNames[s.ID] = s.Name
	}

	byClient := make(map[string][]models.Appointment)
	for _, ap := range aps {
		if ap.Status == string(domainap.StatusCancelled) {
			continue
		}
		byClient[ap.ClientID] = append(byClient[ap.ClientID], ap)
	}

	today := schedule.DateString(now.In(loc))

	out := []Candidate{}
	for _, c := range clients {
		if c.Status != string(domaincli.StatusActive) {
			continue
		}

		history := byClient[c.ID]
		dates := distinctSortedDates(history, loc)
		if len(dates) < 2 {
			continue
		}

		last := dates[len(dates)-1]
		cadence := meanGapDays(dates)
		due := last.AddDate(0, 0, cadence)
		dueStr := schedule.DateString(due)

		out = append(out, Candidate{
			ClientID:         c.ID,
			ClientName:       c.Name,
			LastVisit:        schedule.DateString(last),
			FrequencyDays:    cadence,
			DueDate:          dueStr,
			PreferredService: modalService(history, serviceNames),
			PreferredDays:    modalWeekdays(dates),
			Overdue:          dueStr < today,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].DueDate != out[j].DueDate {
			return out[i].DueDate < out[j].DueDate
		}
		return out[i].ClientName < out[j].ClientName
	})
	return out
}

func distinctSortedDates(aps []models.Appointment, loc *time.Location) []time.Time {
	seen := make(map[string]bool, len(aps))
	dates := make([]time.Time, 0, len(aps))
	for _, ap := range aps {
		if seen[ap.Date] {
			continue
		}
		d, err := schedule.ParseDate(ap.Date, loc)
		if err != nil {
			continue
		}
		seen[ap.Date] = true
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func meanGapDays(dates []time.Time) int {
	totalDays := 0
	for i := 1; i < len(dates); i++ {
		totalDays += int(dates[i].Sub(dates[i-1]).Hours() / 24)
	}
	gaps := len(dates) - 1
	cadence := totalDays / gaps
	if cadence < 1 {
		cadence = 1
	}
	return cadence
}

func modalService(aps []models.Appointment, names map[string]string) string {
	counts := make(map[string]int)
	for _, ap := range aps {
		if ap.ServiceID == nil {
			continue
		}
		if name, ok := names[*ap.ServiceID]; ok {
			counts[name]++
		}
	}

	best := ""
	bestCount := 0
	for name, n := range counts {
		if n > bestCount || (n == bestCount && name < best) {
			best = name
			bestCount = n
		}
	}
	return best
}

func modalWeekdays(dates []time.Time) []string {
	counts := make(map[time.Weekday]int)
	for _, d := range dates {
		counts[d.Weekday()]++
	}

	type wd struct {
		day   time.Weekday
		count int
	}
	all := make([]wd, 0, len(counts))
	for day, n := range counts {
		all = append(all, wd{day, n})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].day < all[j].day
	})

	limit := 2
	if len(all) < limit {
		limit = len(all)
	}
	out := make([]string, 0, limit)
	for _, w := range all[:limit] {
		out = append(out, weekdayNames[w.day])
	}
	return out
}
