package schedule

// ===============================
// Status do agendamento
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
)

// InitialStatus é o único status com que um agendamento nasce.
func InitialStatus() Status {
	return StatusScheduled
}

// IsActive diz se o status conta para checagem de conflito.
func IsActive(s Status) bool {
	return s == StatusScheduled
}
