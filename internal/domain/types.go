package domain

// Booking statuses.
const (
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
	BookingPending   = "Pending"
)

// Bus statuses.
const (
	BusActive      = "Active"
	BusInactive    = "Inactive"
	BusMaintenance = "Maintenance"
)

// Payment modes.
const (
	PaymentCash         = "Cash"
	PaymentCard         = "Card"
	PaymentMobileMoney  = "MobileMoney"
	PaymentBankTransfer = "BankTransfer"
)

var (
	BookingStatuses = []string{BookingConfirmed, BookingCancelled, BookingPending}
	BusStatuses     = []string{BusActive, BusInactive, BusMaintenance}
	PaymentModes    = []string{PaymentCash, PaymentCard, PaymentMobileMoney, PaymentBankTransfer}
)

// DateRange carries optional YYYY-MM-DD bounds; empty means unbounded.
type DateRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Principal is the authenticated caller resolved from a bearer token.
type Principal struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}
