package models

// Payment is a row of paymentdetails and always references one booking.
type Payment struct {
	ID          int64   `json:"paymentId"`
	BookingID   int64   `json:"bookingId"`
	AmountPaid  float64 `json:"amountPaid"`
	PaymentMode string  `json:"paymentMode"`
	PaymentDate string  `json:"paymentDate"`
}

type PaymentPayload struct {
	BookingID   int64    `json:"bookingId" binding:"required,gt=0"`
	AmountPaid  *float64 `json:"amountPaid" binding:"required,gt=0"`
	PaymentMode string   `json:"paymentMode" binding:"required,payment_mode"`
	PaymentDate string   `json:"paymentDate" binding:"required,datetime=2006-01-02"`
}
