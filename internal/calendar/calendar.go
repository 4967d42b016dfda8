package calendar

import "time"

// Day grid bounds: half-hour slots from 08:00 through 19:30.
const (
	gridStartHour = 8
	gridEndHour   = 20
	slotMinutes   = 30
)

// Appointment is the calendar projection of a booking.
type Appointment struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	DurationMin int       `json:"duration_min"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	Color       string    `json:"color"`
}

type Slot struct {
	Time         time.Time     `json:"time"`
	Appointments []Appointment `json:"appointments"`
}

type DayGrid struct {
	Date  time.Time `json:"date"`
	Slots []Slot    `json:"slots"`
}

type WeekGrid struct {
	WeekStart time.Time `json:"week_start"`
	Days      []DayGrid `json:"days"`
}

// StatusColor maps a booking status onto its badge color.
func StatusColor(status string) string {
	switch status {
	case "confirmed":
		return "green"
	case "pending":
		return "yellow"
	case "completed":
		return "blue"
	case "cancelled":
		return "red"
	default:
		return "gray"
	}
}

// DaySlots generates the fixed slot sequence for one day: 24 timestamps at
// 30-minute spacing, 08:00 to 19:30 inclusive.
func DaySlots(date time.Time) []time.Time {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var slots []time.Time
	for hour := gridStartHour; hour < gridEndHour; hour++ {
		for minute := 0; minute < 60; minute += slotMinutes {
			slots = append(slots, dayStart.Add(
				time.Duration(hour)*time.Hour+time.Duration(minute)*time.Minute,
			))
		}
	}
	return slots
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AppointmentsAt filters appointments landing exactly on a slot: same day,
// same hour, same minute.
func AppointmentsAt(slot time.Time, appointments []Appointment) []Appointment {
	out := []Appointment{}
	for _, ap := range appointments {
		if sameDay(ap.Date, slot) &&
			ap.Date.Hour() == slot.Hour() &&
			ap.Date.Minute() == slot.Minute() {
			out = append(out, ap)
		}
	}
	return out
}

// Day builds the day view grid for a date.
func Day(date time.Time, appointments []Appointment) DayGrid {
	times := DaySlots(date)
	slots := make([]Slot, 0, len(times))
	for _, t := range times {
		slots = append(slots, Slot{
			Time:         t,
			Appointments: AppointmentsAt(t, appointments),
		})
	}
	return DayGrid{Date: date, Slots: slots}
}

// WeekStart returns the Sunday beginning the week containing date.
func WeekStart(date time.Time) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// Week builds seven day grids anchored at the week start of date.
func Week(date time.Time, appointments []Appointment) WeekGrid {
	start := WeekStart(date)
	days := make([]DayGrid, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, Day(start.AddDate(0, 0, i), appointments))
	}
	return WeekGrid{WeekStart: start, Days: days}
}
