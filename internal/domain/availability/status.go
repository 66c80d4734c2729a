package availability

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusUnavailable:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func (s Status) Bookable() bool {
	return s == StatusAvailable
}
