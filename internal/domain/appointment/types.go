package appointment

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusQueue     Status = "QUEUE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusQueue, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsInitial reports whether the status is a legal creation status. Walk-ins
// enter as QUEUE, scheduled bookings as PENDING.
func (s Status) IsInitial() bool {
	return s == StatusPending || s == StatusQueue
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
