package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/weekday"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const DateLayout = "2006-01-02"

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := Status(ap.Status).To(StatusCancelled); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := Status(ap.Status).To(StatusCompleted); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// SlotStart places the weekly slot time on date in loc.
func SlotStart(slot *models.AvailabilitySlot, date time.Time, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", slot.Time)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_time")
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	), nil
}

// CheckBookable applies every rule that does not need the database and
// returns the appointment start time.
func CheckBookable(
	worker *models.Worker,
	slot *models.AvailabilitySlot,
	date time.Time,
	loc *time.Location,
	now time.Time,
) (time.Time, error) {

	if !worker.Active {
		return time.Time{}, httperr.ErrBusiness("worker_inactive")
	}

	if slot.WorkerID != worker.ID {
		return time.Time{}, httperr.ErrBusiness("slot_not_found")
	}

	if !availability.Status(slot.Status).Bookable() {
		return time.Time{}, httperr.ErrBusiness("slot_unavailable")
	}

	if weekday.FromTime(date.Weekday()) != weekday.Day(slot.Day) {
		return time.Time{}, httperr.ErrBusiness("day_mismatch")
	}

	start, err := SlotStart(slot, date, loc)
	if err != nil {
		return time.Time{}, err
	}

	if !start.After(now) {
		return time.Time{}, httperr.ErrBusiness("in_the_past")
	}

	return start, nil
}
