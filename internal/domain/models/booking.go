package models

// Booking is a reserved seat on one scheduled trip.
type Booking struct {
	ID            int64  `json:"bookingId"`
	CustomerID    int64  `json:"customerId"`
	ScheduleID    int64  `json:"scheduleId"`
	SeatNumber    string `json:"seatNumber"`
	BookingDate   string `json:"bookingDate"`
	TravelDate    string `json:"travelDate"`
	Status        string `json:"status"`
	CustomerName  string `json:"customerName,omitempty"`
	StartLocation string `json:"startLocation,omitempty"`
	EndLocation   string `json:"endLocation,omitempty"`
}

type BookingPayload struct {
	CustomerID  int64  `json:"customerId" binding:"required,gt=0"`
	ScheduleID  int64  `json:"scheduleId" binding:"required,gt=0"`
	SeatNumber  string `json:"seatNumber" binding:"required,max=10"`
	BookingDate string `json:"bookingDate" binding:"required,datetime=2006-01-02"`
	TravelDate  string `json:"travelDate" binding:"required,datetime=2006-01-02"`
	Status      string `json:"status" binding:"required,booking_status"`
}

type BookingStatusPayload struct {
	Status string `json:"status" binding:"required,booking_status"`
}

// BookingFilter narrows the booking list; zero values are ignored.
type BookingFilter struct {
	From   string
	To     string
	Status string
}

// BookingTicket is everything printed on an e-ticket.
type BookingTicket struct {
	BookingID      int64
	SeatNumber     string
	TravelDate     string
	Status         string
	CustomerName   string
	PassportNumber string
	Nationality    string
	StartLocation  string
	EndLocation    string
	DepartureTime  string
	ArrivalTime    string
	BusNumber      string
	Fare           float64
	AmountPaid     float64
}

// DeleteResult reports what the booking delete removed.
type DeleteResult struct {
	BookingID       int64 `json:"bookingId"`
	PaymentsRemoved int64 `json:"paymentsRemoved"`
}
