package services

import (
	"context"
	"fmt"

	"busbooking/internal/domain/models"
	"busbooking/internal/events"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"
)

type BookingService struct {
	BookingRepo repositories.BookingRepository
	Events      events.Publisher
	RequestID   string
}

// DeleteWithPayments removes a booking and all of its payments atomically, then
// announces the deletion. A failed publish is logged; the delete stands.
func (s BookingService) DeleteWithPayments(ctx context.Context, bookingID int64) (models.DeleteResult, error) {
	res, err := s.BookingRepo.DeleteWithPayments(ctx, bookingID)
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "delete", fmt.Sprintf("booking_id=%d rolled back: %v", bookingID, err))
		return res, err
	}
	utils.LogEvent(s.RequestID, "booking", "delete",
		fmt.Sprintf("booking_id=%d payments_removed=%d", res.BookingID, res.PaymentsRemoved))

	if s.Events != nil {
		evt := events.BookingDeleted{
			Type:            events.TypeBookingDeleted,
			BookingID:       res.BookingID,
			PaymentsRemoved: res.PaymentsRemoved,
			RequestID:       s.RequestID,
		}
		pubCtx, cancel := context.WithTimeout(ctx, events.PublishTimeout)
		err := s.Events.PublishBookingDeleted(pubCtx, evt)
		cancel()
		if err != nil {
			utils.LogError(s.RequestID, "booking", "publish_deleted", err)
		}
	}
	return res, nil
}
