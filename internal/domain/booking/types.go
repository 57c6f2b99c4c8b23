package booking

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Source string

const (
	SourceStaff  Source = "staff"
	SourcePublic Source = "public"
)

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	return s == SourceStaff || s == SourcePublic
}

type EventKind string

const (
	EventCompleted EventKind = "booking.completed"
	EventCancelled EventKind = "booking.cancelled"
	EventNoShow    EventKind = "booking.no_show"
)

func (k EventKind) String() string {
	return string(k)
}

var statusEvents = map[Status]EventKind{
	StatusCompleted: EventCompleted,
	StatusCancelled: EventCancelled,
	StatusNoShow:    EventNoShow,
}
