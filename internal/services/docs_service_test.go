package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
)

func TestDocsServiceGenerateETicket(t *testing.T) {
	loader := func(_ context.Context, id int64) (models.BookingTicket, error) {
		return models.BookingTicket{
			BookingID:      id,
			SeatNumber:     "A1",
			TravelDate:     "2025-05-01",
			Status:         "Confirmed",
			CustomerName:   "Amina Yusuf",
			PassportNumber: "P1234567",
			Nationality:    "Kenyan",
			StartLocation:  "Nairobi",
			EndLocation:    "Kampala",
			DepartureTime:  "2025-05-01 07:00",
			ArrivalTime:    "2025-05-01 19:30",
			BusNumber:      "KBX-001",
			Fare:           45,
			AmountPaid:     45,
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateETicket(context.Background(), 10)
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "ETICKET_10_Amina_Yusuf_A1.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestDocsServicePropagatesNotFound(t *testing.T) {
	svc := DocsService{Loader: func(context.Context, int64) (models.BookingTicket, error) {
		return models.BookingTicket{}, domain.NotFoundError{Resource: "Booking"}
	}}
	_, _, err := svc.GenerateETicket(context.Background(), 3)
	if !domain.IsNotFound(err) || !strings.Contains(err.Error(), "Booking") {
		t.Fatalf("expected Booking not found, got %v", err)
	}
}
