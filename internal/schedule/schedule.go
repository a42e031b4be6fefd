package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/barberbook/barberbook-api/internal/models"
)

// Grade fixa de atendimento: slots de meia hora para o formulário de
// agendamento, slots de uma hora para a visão diária.
const (
	DayStart = "09:00"
	DayEnd   = "18:00"

	BookingSlotMinutes = 30
	DailySlotMinutes   = 60
)

var (
	ErrInvalidDate = errors.New("invalid date format")
	ErrInvalidTime = errors.New("invalid time format")
)

func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

func ParseClockToMinutes(timeStr string) (int, error) {
	tm, err := time.Parse("15:04", timeStr)
	if err != nil {
		return 0, ErrInvalidTime
	}
	return tm.Hour()*60 + tm.Minute(), nil
}

func MinutesToClock(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

func slots(step int) []string {
	startMin, _ := ParseClockToMinutes(DayStart)
	endMin, _ := ParseClockToMinutes(DayEnd)

	out := make([]string, 0, (endMin-startMin)/step+1)
	for cursor := startMin; cursor <= endMin; cursor += step {
		out = append(out, MinutesToClock(cursor))
	}
	return out
}

// BookingSlots retorna a grade de meia hora, 09:00 a 18:00 inclusive.
func BookingSlots() []string {
	return slots(BookingSlotMinutes)
}

// DailySlots retorna a grade horária da visão diária, 09:00 a 17:00.
func DailySlots() []string {
	all := slots(DailySlotMinutes)
	return all[:len(all)-1]
}

func IsBookingSlot(timeStr string) bool {
	for _, s := range BookingSlots() {
		if s == timeStr {
			return true
		}
	}
	return false
}

// SlotOf extrai o slot de um horário armazenado ("HH:MM" ou "HH:MM:SS"):
// os 5 primeiros caracteres. Retorna false para horário malformado.
func SlotOf(timeStr string) (string, bool) {
	if len(timeStr) < 5 {
		return "", false
	}
	prefix := timeStr[:5]
	if _, err := ParseClockToMinutes(prefix); err != nil {
		return "", false
	}
	return prefix, true
}

// IsDatePast informa se a data cai estritamente antes de hoje no fuso dado.
func IsDatePast(dateStr string, loc *time.Location, now time.Time) (bool, error) {
	date, err := ParseDate(dateStr, loc)
	if err != nil {
		return false, err
	}
	startToday := time.Date(now.In(loc).Year(), now.In(loc).Month(), now.In(loc).Day(), 0, 0, 0, 0, loc)
	return date.Before(startToday), nil
}

// FilterByDate devolve apenas os agendamentos cuja data bate exatamente
// com a string "YYYY-MM-DD" informada.
func FilterByDate(aps []models.Appointment, date string) []models.Appointment {
	out := make([]models.Appointment, 0, len(aps))
	for _, ap := range aps {
		if ap.Date == date {
			out = append(out, ap)
		}
	}
	return out
}

type SlotBucket struct {
	Slot         string
	Appointments []models.Appointment
}

// BucketBySlot distribui agendamentos pelos slots dados, casando o prefixo
// "HH:MM" do horário armazenado. Cada agendamento pertence a no máximo um
// slot, independentemente da duração; horários fora da grade ficam de fora.
func BucketBySlot(slotList []string, aps []models.Appointment) []SlotBucket {
	index := make(map[string]int, len(slotList))
	buckets := make([]SlotBucket, len(slotList))
	for i, s := range slotList {
		index[s] = i
		buckets[i] = SlotBucket{Slot: s, Appointments: []models.Appointment{}}
	}

	for _, ap := range aps {
		slot, ok := SlotOf(ap.Time)
		if !ok {
			continue
		}
		if i, found := index[slot]; found {
			buckets[i].Appointments = append(buckets[i].Appointments, ap)
		}
	}

	return buckets
}
