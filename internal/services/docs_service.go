package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking documents as PDF.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
	Loader      func(context.Context, int64) (models.BookingTicket, error)
}

// GenerateETicket returns the PDF bytes and a download filename.
func (s DocsService) GenerateETicket(ctx context.Context, bookingID int64) ([]byte, string, error) {
	load := s.Loader
	if load == nil {
		load = s.BookingRepo.Ticket
	}
	t, err := load(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildETicketPDF(t)
}

func buildETicketPDF(t models.BookingTicket) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger      : %s", safe(t.CustomerName, "-")),
		fmt.Sprintf("Passport       : %s", safe(t.PassportNumber, "-")),
		fmt.Sprintf("Nationality    : %s", safe(t.Nationality, "-")),
		fmt.Sprintf("Route          : %s -> %s", safe(t.StartLocation, "-"), safe(t.EndLocation, "-")),
		fmt.Sprintf("Travel date    : %s", safe(t.TravelDate, "-")),
		fmt.Sprintf("Departure      : %s", safe(t.DepartureTime, "-")),
		fmt.Sprintf("Arrival        : %s", safe(t.ArrivalTime, "-")),
		fmt.Sprintf("Bus            : %s", safe(t.BusNumber, "-")),
		fmt.Sprintf("Seat           : %s", safe(t.SeatNumber, "-")),
		fmt.Sprintf("Status         : %s", safe(t.Status, "-")),
		fmt.Sprintf("Fare           : %.2f", t.Fare),
		fmt.Sprintf("Paid           : %.2f", t.AmountPaid),
		fmt.Sprintf("Booking ref    : #%d", t.BookingID),
		fmt.Sprintf("Ticket code    : TCK-%d-%s", t.BookingID, utils.SafeFilenamePart(t.SeatNumber)),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Valid for one passenger and one seat. Present this ticket and your passport at boarding. Issued "+
		time.Now().Format("2006-01-02 15:04")+".", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d_%s.pdf", t.BookingID, utils.SafeFilenamePart(t.CustomerName+"_"+t.SeatNumber))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
