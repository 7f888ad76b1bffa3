package calendar_test

import (
	"testing"
	"time"

	"hallbook/internal/domains/booking/calendar"
	"hallbook/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		bookings []model.Booking
		want     string
	}{
		{
			name:     "no bookings",
			bookings: nil,
			want:     calendar.StatusAvailable,
		},
		{
			name: "confirmed fullday blocks the date",
			bookings: []model.Booking{
				{TimeSlot: model.SlotFullday, Status: model.StatusConfirmed},
			},
			want: calendar.StatusFull,
		},
		{
			name: "pending fullday does not block",
			bookings: []model.Booking{
				{TimeSlot: model.SlotFullday, Status: model.StatusPending},
			},
			want: calendar.StatusAvailable,
		},
		{
			name: "cancelled and completed do not block",
			bookings: []model.Booking{
				{TimeSlot: model.SlotMorning, Status: model.StatusCancelled},
				{TimeSlot: model.SlotEvening, Status: model.StatusCompleted},
			},
			want: calendar.StatusAvailable,
		},
		{
			name: "confirmed morning and evening together make full",
			bookings: []model.Booking{
				{TimeSlot: model.SlotMorning, Status: model.StatusConfirmed},
				{TimeSlot: model.SlotEvening, Status: model.StatusActive},
			},
			want: calendar.StatusFull,
		},
		{
			name: "only morning taken",
			bookings: []model.Booking{
				{TimeSlot: model.SlotMorning, Status: model.StatusActive},
			},
			want: calendar.StatusMorning,
		},
		{
			name: "only evening taken",
			bookings: []model.Booking{
				{TimeSlot: model.SlotEvening, Status: model.StatusConfirmed},
			},
			want: calendar.StatusEvening,
		},
		{
			name: "duplicate morning bookings count once",
			bookings: []model.Booking{
				{TimeSlot: model.SlotMorning, Status: model.StatusConfirmed},
				{TimeSlot: model.SlotMorning, Status: model.StatusConfirmed},
			},
			want: calendar.StatusMorning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.Classify(tt.bookings))
		})
	}
}

func TestClassifyRange(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	bookings := []model.Booking{
		{TimeSlot: model.SlotFullday, Status: model.StatusConfirmed, EventDate: from},
		{TimeSlot: model.SlotMorning, Status: model.StatusConfirmed, EventDate: from.AddDate(0, 0, 1)},
	}

	days := calendar.ClassifyRange(bookings, from, to)

	assert.Len(t, days, 3)
	assert.Equal(t, calendar.Day{Date: "2025-06-01", Status: calendar.StatusFull}, days[0])
	assert.Equal(t, calendar.Day{Date: "2025-06-02", Status: calendar.StatusMorning}, days[1])
	assert.Equal(t, calendar.Day{Date: "2025-06-03", Status: calendar.StatusAvailable}, days[2])
}
