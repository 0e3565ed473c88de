//go:build unit

package builder

import (
	"expo-gateway/internal/domain/schedule"
)

type ScheduleBuilder struct {
	Days []schedule.Day
}

// NewScheduleBuilder seeds two days sharing one opening time and one day with
// its own, which exercises both column dedupe and empty grid cells.
func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{
		Days: []schedule.Day{
			{
				ID: 1, Date: "2024-05-15", Theme: "Slikarstvo", SeatsLeft: 120,
				Slots: []schedule.Slot{
					{ID: 11, Artist: "Nadežda Petrović", OpensAt: "10:00:00", ClosesAt: "12:00:00"},
					{ID: 12, Artist: "Sava Šumanović", OpensAt: "14:00:00", ClosesAt: "16:00:00"},
				},
			},
			{
				ID: 2, Date: "2024-05-16", Theme: "Skulptura", SeatsLeft: 80,
				Slots: []schedule.Slot{
					{ID: 21, Artist: "Olga Jevrić", OpensAt: "10:00:00", ClosesAt: "13:00:00"},
				},
			},
		},
	}
}

func (b *ScheduleBuilder) WithDays(days ...schedule.Day) *ScheduleBuilder {
	b.Days = days
	return b
}

func (b *ScheduleBuilder) BuildDomain() *schedule.EventInfo {
	return &schedule.EventInfo{
		ID:                7,
		Name:              "FON Expo 2024",
		City:              "Beograd",
		Venue:             "FON",
		StartDate:         "2024-05-15",
		EndDate:           "2024-05-17",
		Description:       "Izložba studentskih radova",
		MaxVisitorsPerDay: 200,
		Days:              b.Days,
	}
}
