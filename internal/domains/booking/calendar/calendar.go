package calendar

import (
	"time"

	"hallbook/internal/domains/booking/model"
	"hallbook/shared/constant"
)

const (
	StatusAvailable = "available"
	StatusMorning   = "morning"
	StatusEvening   = "evening"
	StatusFull      = "full"
)

// blocking reports whether a booking occupies its slot on the
// calendar. Only confirmed and active bookings block; pending,
// completed, and cancelled never do.
func blocking(b model.Booking) bool {
	return b.Status == model.StatusConfirmed || b.Status == model.StatusActive
}

// Classify reduces one date's bookings to a single availability
// status. A fullday booking, or a morning and an evening booking
// together, make the date full. Duplicate bookings in the same slot
// count once.
func Classify(bookings []model.Booking) string {
	var morning, evening bool

	for _, b := range bookings {
		if !blocking(b) {
			continue
		}

		switch b.TimeSlot {
		case model.SlotFullday:
			return StatusFull
		case model.SlotMorning:
			morning = true
		case model.SlotEvening:
			evening = true
		}
	}

	switch {
	case morning && evening:
		return StatusFull
	case morning:
		return StatusMorning
	case evening:
		return StatusEvening
	default:
		return StatusAvailable
	}
}

// Day is one classified date of a range.
type Day struct {
	Date   string
	Status string
}

// ClassifyRange classifies every date in [from, to] inclusive against
// the given bookings, bucketing them by event date first.
func ClassifyRange(bookings []model.Booking, from, to time.Time) []Day {
	byDate := map[string][]model.Booking{}

	for _, b := range bookings {
		key := b.EventDate.Format(constant.DateOnlyFormat)
		byDate[key] = append(byDate[key], b)
	}

	days := []Day{}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format(constant.DateOnlyFormat)

		days = append(days, Day{
			Date:   key,
			Status: Classify(byDate[key]),
		})
	}

	return days
}
