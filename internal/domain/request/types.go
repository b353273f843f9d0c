package request

type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusCanceled Status = "canceled"
	StatusDenied   Status = "denied"
	StatusReturned Status = "returned"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive, StatusCanceled, StatusDenied, StatusReturned:
		return true
	default:
		return false
	}
}

// Decision is the admin verdict on a pending request.
type Decision string

const (
	DecisionActive Decision = "active"
	DecisionDenied Decision = "denied"
)

func (d Decision) IsValid() bool {
	return d == DecisionActive || d == DecisionDenied
}
