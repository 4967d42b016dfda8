package catalog

// Bookable start times offered on the booking form.
var BookingTimeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM", "6:00 PM",
}

func IsBookableTime(slot string) bool {
	for _, t := range BookingTimeSlots {
		if t == slot {
			return true
		}
	}
	return false
}
