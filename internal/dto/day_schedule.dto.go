package dto

type DayScheduleEntry struct {
	ID          string `json:"id"`
	ClientName  string `json:"client_name"`
	ServiceName string `json:"service_name"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Status      string `json:"status"`
}

type DayScheduleRow struct {
	Slot         string             `json:"slot"`
	Appointments []DayScheduleEntry `json:"appointments"`
}
