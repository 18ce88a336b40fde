package orders

type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusCanceled  Status = "canceled"
)

var validNext = map[Status]map[Status]bool{
	StatusPending:   {StatusProcessed: true, StatusCanceled: true},
	StatusProcessed: {},
	StatusCanceled:  {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

// Terminal reports whether no further transition is permitted.
func (s Status) Terminal() bool {
	return len(validNext[s]) == 0
}
