package models

// Route is an origin/destination pair with its base fare.
type Route struct {
	ID                int64   `json:"routeId"`
	StartLocation     string  `json:"startLocation"`
	EndLocation       string  `json:"endLocation"`
	Distance          float64 `json:"distance"`
	EstimatedDuration string  `json:"estimatedDuration"`
	BaseFare          float64 `json:"baseFare"`
}

type RoutePayload struct {
	StartLocation     string   `json:"startLocation" binding:"required"`
	EndLocation       string   `json:"endLocation" binding:"required"`
	Distance          *float64 `json:"distance" binding:"required,gte=0"`
	EstimatedDuration string   `json:"estimatedDuration" binding:"required"`
	BaseFare          *float64 `json:"baseFare" binding:"required,gte=0"`
}

// Schedule is a row of scheduleinformation. Bus and route labels are only
// filled by list queries that join them.
type Schedule struct {
	ID             int64   `json:"scheduleId"`
	BusID          int64   `json:"busId"`
	RouteID        int64   `json:"routeId"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime"`
	Fare           float64 `json:"fare"`
	AvailableSeats int     `json:"availableSeats"`
	BusNumber      string  `json:"busNumber,omitempty"`
	StartLocation  string  `json:"startLocation,omitempty"`
	EndLocation    string  `json:"endLocation,omitempty"`
}

type SchedulePayload struct {
	BusID          int64    `json:"busId" binding:"required,gt=0"`
	RouteID        int64    `json:"routeId" binding:"required,gt=0"`
	DepartureTime  string   `json:"departureTime" binding:"required,datetime=2006-01-02 15:04:05"`
	ArrivalTime    string   `json:"arrivalTime" binding:"required,datetime=2006-01-02 15:04:05"`
	Fare           *float64 `json:"fare" binding:"required,gte=0"`
	AvailableSeats *int     `json:"availableSeats" binding:"required,gte=0"`
}

// ScheduleFilter narrows the schedule list; zero values are ignored.
type ScheduleFilter struct {
	Date    string
	RouteID int64
	BusID   int64
}
