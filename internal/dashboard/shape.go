package dashboard

import "time"

// BookingView is the joined row shape dashboards render: the booking plus
// the names resolved through its foreign keys.
type BookingView struct {
	ID               string    `json:"id"`
	BookingDate      time.Time `json:"booking_date"`
	ServiceName      string    `json:"service_name"`
	ProfessionalName string    `json:"professional_name,omitempty"`
	ClientID         string    `json:"client_id,omitempty"`
	ClientName       string    `json:"client_name,omitempty"`
	Location         string    `json:"location"`
	Status           string    `json:"status"`
	TotalAmount      float64   `json:"total_amount"`
}

type ClientSummary struct {
	UserName     string         `json:"user_name"`
	TotalSpent   float64        `json:"total_spent"`
	StatusCounts map[string]int `json:"status_counts"`
	Bookings     []BookingView  `json:"bookings"`
	Demo         bool           `json:"demo"`
}

type ProfessionalSummary struct {
	ProfessionalName string         `json:"professional_name"`
	TotalRevenue     float64        `json:"total_revenue"`
	TotalClients     int            `json:"total_clients"`
	StatusCounts     map[string]int `json:"status_counts"`
	Bookings         []BookingView  `json:"bookings"`
	Demo             bool           `json:"demo"`
}

// TotalSpent sums total_amount across every booking, regardless of status.
func TotalSpent(bookings []BookingView) float64 {
	var sum float64
	for _, b := range bookings {
		sum += b.TotalAmount
	}
	return sum
}

// TotalRevenue sums total_amount over completed bookings only.
func TotalRevenue(bookings []BookingView) float64 {
	var sum float64
	for _, b := range bookings {
		if b.Status == "completed" {
			sum += b.TotalAmount
		}
	}
	return sum
}

// DistinctClients counts unique client identifiers across the bookings.
func DistinctClients(bookings []BookingView) int {
	seen := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if b.ClientID == "" {
			continue
		}
		seen[b.ClientID] = struct{}{}
	}
	return len(seen)
}

// CountByStatus feeds the summary cards.
func CountByStatus(bookings []BookingView) map[string]int {
	counts := make(map[string]int)
	for _, b := range bookings {
		counts[b.Status]++
	}
	return counts
}

// ShapeClient assembles a client summary from joined booking rows.
func ShapeClient(userName string, bookings []BookingView) *ClientSummary {
	return &ClientSummary{
		UserName:     userName,
		TotalSpent:   TotalSpent(bookings),
		StatusCounts: CountByStatus(bookings),
		Bookings:     bookings,
	}
}

// ShapeProfessional assembles a professional summary from joined rows.
func ShapeProfessional(name string, bookings []BookingView) *ProfessionalSummary {
	return &ProfessionalSummary{
		ProfessionalName: name,
		TotalRevenue:     TotalRevenue(bookings),
		TotalClients:     DistinctClients(bookings),
		StatusCounts:     CountByStatus(bookings),
		Bookings:         bookings,
	}
}
