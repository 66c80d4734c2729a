package appointment

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// Status is the lifecycle of a booked slot on one date. New appointments
// start out booked; cancelled and completed are final.
type Status string

const (
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var transitions = map[Status][]Status{
	StatusBooked: {StatusCancelled, StatusCompleted},
}

// To checks the move from s to next and returns invalid_state when the
// lifecycle does not allow it.
func (s Status) To(next Status) error {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}
