package reports

import (
	"sort"
	"time"

	domainap "github.com/barberbook/barberbook-api/internal/domain/appointment"
	domaincli "github.com/barberbook/barberbook-api/internal/domain/client"
	"github.com/barberbook/barberbook-api/internal/models"
)

// Agregações puras sobre as coleções completas, recalculadas a cada
// consulta. Datas de agendamento são strings "YYYY-MM-DD", então a
// pertinência ao período [from, to] é comparação lexicográfica inclusiva.

type DateRange struct {
	From string
	To   string
}

func (r DateRange) Contains(date string) bool {
	return date >= r.From && date <= r.To
}

// shiftMonth desloca o período um mês calendário para trás, para a
// comparação mês a mês.
func (r DateRange) shiftMonth() DateRange {
	from, errF := time.Parse("2006-01-02", r.From)
	to, errT := time.Parse("2006-01-02", r.To)
	if errF != nil || errT != nil {
		return DateRange{}
	}
	return DateRange{
		From: subMonthClamped(from).Format("2006-01-02"),
		To:   subMonthClamped(to).Format("2006-01-02"),
	}
}

// subMonthClamped volta um mês prendendo no último dia quando o mês
// anterior é mais curto: 31 de março vira 28 (ou 29) de fevereiro, nunca
// 3 de março. Sem o ajuste o período anterior invadiria o atual.
func subMonthClamped(t time.Time) time.Time {
	shifted := t.AddDate(0, -1, 0)
	if shifted.Day() != t.Day() {
		// AddDate normalizou o estouro de dia para o mês seguinte
		shifted = time.Date(shifted.Year(), shifted.Month(), 0, 0, 0, 0, 0, shifted.Location())
	}
	return shifted
}

func priceByServiceID(services []models.Service) map[string]float64 {
	m := make(map[string]float64, len(services))
	for _, s := range services {
		m[s.ID] = s.Price
	}
	return m
}

// ======================================================
// RECEITA POR DIA
// ======================================================

type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// RevenueByDay soma o preço do serviço de cada agendamento do período,
// agrupado por dia. Agendamentos sem serviço (ou com serviço removido)
// contribuem zero.
func RevenueByDay(aps []models.Appointment, services []models.Service, r DateRange) []DailyRevenue {
	prices := priceByServiceID(services)

	byDay := make(map[string]float64)
	for _, ap := range aps {
		if !r.Contains(ap.Date) {
			continue
		}
		if ap.ServiceID == nil {
			continue
		}
		price, ok := prices[*ap.ServiceID]
		if !ok {
			continue
		}
		byDay[ap.Date] += price
	}

	dates := make([]string, 0, len(byDay))
	for d := range byDay {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]DailyRevenue, 0, len(dates))
	for _, d := range dates {
		out = append(out, DailyRevenue{Date: d, Revenue: byDay[d]})
	}
	return out
}

// ======================================================
// POPULARIDADE DE SERVIÇOS
// ======================================================

type ServiceStat struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Revenue   float64 `json:"revenue"`
}

const popularityLimit = 8

// ServicePopularity agrupa os agendamentos do período por serviço,
// ordena por quantidade decrescente e devolve os 8 primeiros.
func ServicePopularity(aps []models.Appointment, services []models.Service, r DateRange) []ServiceStat {
	nameByID := make(map[string]string, len(services))
	prices := priceByServiceID(services)
	for _, s := range services {
		nameByID[s.ID] = s.Name
	}

	stats := make(map[string]*ServiceStat)
	for _, ap := range aps {
		if !r.Contains(ap.Date) || ap.ServiceID == nil {
			continue
		}
		id := *ap.ServiceID
		name, ok := nameByID[id]
		if !ok {
			continue
		}

		st, exists := stats[id]
		if !exists {
			st = &ServiceStat{ServiceID: id, Name: name}
			stats[id] = st
		}
		st.Count++
		st.Revenue += prices[id]
	}

	out := make([]ServiceStat, 0, len(stats))
	for _, st := range stats {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Revenue > out[j].Revenue
	})

	if len(out) > popularityLimit {
		out = out[:popularityLimit]
	}
	return out
}

// ======================================================
// NOVOS CLIENTES POR MÊS
// ======================================================

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// NewClientsByMonth conta, para cada mês calendário do período, os
// clientes com created_at naquele mês. A adesão é pelo mês inteiro:
// num período de 15/01 a 15/02, um cliente criado em 10/01 conta em
// janeiro mesmo estando antes do from.
func NewClientsByMonth(clients []models.Client, r DateRange, loc *time.Location) []MonthCount {
	from, errF := time.ParseInLocation("2006-01-02", r.From, loc)
	to, errT := time.ParseInLocation("2006-01-02", r.To, loc)
	if errF != nil || errT != nil {
		return []MonthCount{}
	}

	byMonth := make(map[string]int)
	for _, c := range clients {
		byMonth[c.CreatedAt.In(loc).Format("2006-01")]++
	}

	out := []MonthCount{}
	cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, loc)
	last := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, loc)
	for !cursor.After(last) {
		key := cursor.Format("2006-01")
		out = append(out, MonthCount{Month: key, Count: byMonth[key]})
		cursor = cursor.AddDate(0, 1, 0)
	}
	return out
}

// ======================================================
// RETENÇÃO
// ======================================================

type RetentionBucket struct {
	Months int `json:"months"`
	Count  int `json:"count"`
}

// Retention conta, por cliente, os meses distintos do período com pelo
// menos um agendamento, e agrupa os clientes por essa contagem
// (0, 1, 2, 3, 4, 5+).
func Retention(aps []models.Appointment, r DateRange) []RetentionBucket {
	monthsByClient := make(map[string]map[string]bool)
	for _, ap := range aps {
		if !r.Contains(ap.Date) {
			continue
		}
		monthKey := ap.Date[:7]
		if monthsByClient[ap.ClientID] == nil {
			monthsByClient[ap.ClientID] = make(map[string]bool)
		}
		monthsByClient[ap.ClientID][monthKey] = true
	}

	counts := [6]int{}
	for _, months := range monthsByClient {
		n := len(months)
		if n >= 5 {
			counts[5]++
		} else {
			counts[n]++
		}
	}

	out := make([]RetentionBucket, 6)
	for i := range out {
		out[i] = RetentionBucket{Months: i, Count: counts[i]}
	}
	return out
}

// ======================================================
// COMPARAÇÃO MÊS A MÊS
// ======================================================

type Metric struct {
	Current       float64 `json:"current_period"`
	Previous      float64 `json:"previous_period"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

type ComparisonReport struct {
	Revenue      Metric `json:"revenue"`
	Appointments Metric `json:"appointments"`
	NewClients   Metric `json:"new_clients"`
	AvgTicket    Metric `json:"avg_ticket"`
}

// PercentChange devolve a variação percentual. Quando o período anterior
// é zero, a variação reportada é 0.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func newMetric(current, previous float64) Metric {
	return Metric{
		Current:       current,
		Previous:      previous,
		Change:        current - previous,
		ChangePercent: PercentChange(current, previous),
	}
}

type periodTotals struct {
	revenue      float64
	appointments int
	newClients   int
	avgTicket    float64
}

func totalsFor(aps []models.Appointment, services []models.Service, clients []models.Client, r DateRange, loc *time.Location) periodTotals {
	prices := priceByServiceID(services)

	var t periodTotals
	for _, ap := range aps {
		if !r.Contains(ap.Date) {
			continue
		}
		t.appointments++
		if ap.ServiceID != nil {
			t.revenue += prices[*ap.ServiceID]
		}
	}

	for _, c := range clients {
		if r.Contains(c.CreatedAt.In(loc).Format("2006-01-02")) {
			t.newClients++
		}
	}

	if t.appointments > 0 {
		t.avgTicket = t.revenue / float64(t.appointments)
	}
	return t
}

// Comparison calcula receita, agendamentos, novos clientes e ticket médio
// para o período selecionado e para o mesmo período um mês antes.
func Comparison(aps []models.Appointment, services []models.Service, clients []models.Client, r DateRange, loc *time.Location) ComparisonReport {
	prev := r.shiftMonth()

	cur := totalsFor(aps, services, clients, r, loc)
	old := totalsFor(aps, services, clients, prev, loc)

	return ComparisonReport{
		Revenue:      newMetric(cur.revenue, old.revenue),
		Appointments: newMetric(float64(cur.appointments), float64(old.appointments)),
		NewClients:   newMetric(float64(cur.newClients), float64(old.newClients)),
		AvgTicket:    newMetric(cur.avgTicket, old.avgTicket),
	}
}

// ======================================================
// DASHBOARD
// ======================================================

type DashboardStats struct {
	Date              string  `json:"date"`
	AppointmentsToday int     `json:"appointments_today"`
	UpcomingToday     int     `json:"upcoming_today"`
	CompletedToday    int     `json:"completed_today"`
	RevenueToday      float64 `json:"revenue_today"`
	ActiveClients     int     `json:"active_clients"`
}

// Dashboard resume o dia corrente: agendamentos de hoje por status,
// receita esperada (cancelados ficam de fora) e total de clientes ativos.
func Dashboard(aps []models.Appointment, services []models.Service, clients []models.Client, today string) DashboardStats {
	prices := priceByServiceID(services)

	st := DashboardStats{Date: today}
	for _, ap := range aps {
		if ap.Date != today {
			continue
		}
		st.AppointmentsToday++
		switch ap.Status {
		case string(domainap.StatusUpcoming):
			st.UpcomingToday++
		case string(domainap.StatusCompleted):
			st.CompletedToday++
		}
		if ap.Status != string(domainap.StatusCancelled) && ap.ServiceID != nil {
			st.RevenueToday += prices[*ap.ServiceID]
		}
	}

	for _, c := range clients {
		if c.Status == string(domaincli.StatusActive) {
			st.ActiveClients++
		}
	}
	return st
}
