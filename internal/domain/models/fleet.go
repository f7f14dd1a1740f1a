package models

// Bus is a row of the bus table.
type Bus struct {
	ID                int64   `json:"busId"`
	BusNumber         string  `json:"busNumber"`
	YearOfManufacture int     `json:"yearOfManufacture"`
	Capacity          int     `json:"capacity"`
	EngineNumber      string  `json:"engineNumber"`
	Status            string  `json:"status"`
	Mileage           float64 `json:"mileage"`
}

type BusPayload struct {
	BusNumber         string   `json:"busNumber" binding:"required"`
	YearOfManufacture int      `json:"yearOfManufacture" binding:"required,gte=1950,lte=2100"`
	Capacity          int      `json:"capacity" binding:"required,gt=0"`
	EngineNumber      string   `json:"engineNumber" binding:"required"`
	Status            string   `json:"status" binding:"required,bus_status"`
	Mileage           *float64 `json:"mileage" binding:"required,gte=0"`
}

// Maintenance is one service record for a bus.
type Maintenance struct {
	ID              int64   `json:"maintenanceId"`
	BusID           int64   `json:"busId"`
	BusNumber       string  `json:"busNumber,omitempty"`
	MaintenanceDate string  `json:"maintenanceDate"`
	Description     string  `json:"description"`
	Cost            float64 `json:"cost"`
	PerformedBy     string  `json:"performedBy"`
}

type MaintenancePayload struct {
	BusID           int64    `json:"busId" binding:"required,gt=0"`
	MaintenanceDate string   `json:"maintenanceDate" binding:"required,datetime=2006-01-02"`
	Description     string   `json:"description" binding:"required"`
	Cost            *float64 `json:"cost" binding:"required,gte=0"`
	PerformedBy     string   `json:"performedBy"`
}
