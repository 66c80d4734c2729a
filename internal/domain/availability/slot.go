package availability

import (
	"sort"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/weekday"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// SlotInput is one (day, time) entry as sent by the dashboard.
type SlotInput struct {
	Day    string
	Time   string
	Status string
}

// DayGroup is one column of the weekly board.
type DayGroup struct {
	Day   weekday.Day               `json:"day"`
	Label string                    `json:"label"`
	Slots []models.AvailabilitySlot `json:"slots"`
}

// Normalize validates in and returns it with a canonical day name and a
// default status of available.
func Normalize(in SlotInput) (SlotInput, error) {
	day, err := weekday.Parse(in.Day)
	if err != nil {
		return SlotInput{}, err
	}
	if !validators.IsTime(in.Time) {
		return SlotInput{}, httperr.ErrBusiness("invalid_time")
	}

	status := StatusAvailable
	if in.Status != "" {
		if status, err = ParseStatus(in.Status); err != nil {
			return SlotInput{}, err
		}
	}

	return SlotInput{Day: string(day), Time: in.Time, Status: string(status)}, nil
}

// NormalizeWeek validates a full week and rejects repeated (day, time) pairs.
func NormalizeWeek(in []SlotInput) ([]SlotInput, error) {
	out := make([]SlotInput, 0, len(in))
	seen := make(map[string]struct{}, len(in))

	for _, s := range in {
		n, err := Normalize(s)
		if err != nil {
			return nil, err
		}
		key := n.Day + " " + n.Time
		if _, dup := seen[key]; dup {
			return nil, httperr.ErrBusiness("duplicate_slot")
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	return out, nil
}

// SortSlots orders slots by day of week, then by time of day.
func SortSlots(slots []models.AvailabilitySlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		di, dj := weekday.Day(slots[i].Day), weekday.Day(slots[j].Day)
		if di != dj {
			return weekday.Less(di, dj)
		}
		return slots[i].Time < slots[j].Time
	})
}

// GroupByDay always returns seven groups, Monday first, empty days included.
func GroupByDay(slots []models.AvailabilitySlot, lang string) []DayGroup {
	sorted := make([]models.AvailabilitySlot, len(slots))
	copy(sorted, slots)
	SortSlots(sorted)

	days := weekday.All()
	groups := make([]DayGroup, len(days))
	for i, d := range days {
		groups[i] = DayGroup{
			Day:   d,
			Label: d.Label(lang),
			Slots: []models.AvailabilitySlot{},
		}
	}

	for _, s := range sorted {
		idx := weekday.Day(s.Day).Order()
		if idx < 0 {
			continue
		}
		groups[idx].Slots = append(groups[idx].Slots, s)
	}
	return groups
}

// Move recategorizes slot onto day. siblings are the worker's other slots.
func Move(slot *models.AvailabilitySlot, day string, siblings []models.AvailabilitySlot) error {
	target, err := weekday.Parse(day)
	if err != nil {
		return err
	}
	if weekday.Day(slot.Day) == target {
		return nil
	}

	for _, s := range siblings {
		if s.ID != slot.ID && s.Day == string(target) && s.Time == slot.Time {
			return httperr.ErrBusiness("slot_already_exists")
		}
	}

	slot.Day = string(target)
	return nil
}

// SetStatus changes a slot between available and unavailable.
func SetStatus(slot *models.AvailabilitySlot, status string) error {
	st, err := ParseStatus(status)
	if err != nil {
		return err
	}
	slot.Status = string(st)
	return nil
}
