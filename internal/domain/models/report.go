package models

type DashboardReport struct {
	TotalBuses         int64            `json:"totalBuses"`
	TotalRoutes        int64            `json:"totalRoutes"`
	TotalCustomers     int64            `json:"totalCustomers"`
	TotalBookings      int64            `json:"totalBookings"`
	BookingsByStatus   map[string]int64 `json:"bookingsByStatus"`
	TotalRevenue       float64          `json:"totalRevenue"`
	UpcomingDepartures []Schedule       `json:"upcomingDepartures"`
}

type RevenueReport struct {
	From   string             `json:"from,omitempty"`
	To     string             `json:"to,omitempty"`
	Total  float64            `json:"total"`
	ByMode map[string]float64 `json:"byMode"`
	Count  int64              `json:"count"`
}

type RouteBookings struct {
	RouteID       int64  `json:"routeId"`
	StartLocation string `json:"startLocation"`
	EndLocation   string `json:"endLocation"`
	Bookings      int64  `json:"bookings"`
	Cancelled     int64  `json:"cancelled"`
}

type BookingsReport struct {
	From    string          `json:"from,omitempty"`
	To      string          `json:"to,omitempty"`
	Total   int64           `json:"total"`
	ByRoute []RouteBookings `json:"byRoute"`
}

type BusMaintenanceCost struct {
	BusID     int64   `json:"busId"`
	BusNumber string  `json:"busNumber"`
	Services  int64   `json:"services"`
	TotalCost float64 `json:"totalCost"`
}

type MaintenanceReport struct {
	From      string               `json:"from,omitempty"`
	To        string               `json:"to,omitempty"`
	TotalCost float64              `json:"totalCost"`
	ByBus     []BusMaintenanceCost `json:"byBus"`
}
