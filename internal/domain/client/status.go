package client

// ===============================
// Client Status
// ===============================

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusNew      Status = "new"
)

// "new" é apenas o status inicial; nenhuma ação da aplicação volta para ele.
func InitialStatus() Status {
	return StatusNew
}

func IsValid(s Status) bool {
	switch s {
	case StatusActive, StatusInactive, StatusNew:
		return true
	}
	return false
}
