package handlers

import (
	"slices"
	"sync"

	"busbooking/internal/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the enum rules used by payload binding tags.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		rules := map[string][]string{
			"booking_status": domain.BookingStatuses,
			"bus_status":     domain.BusStatuses,
			"payment_mode":   domain.PaymentModes,
		}
		for tag, allowed := range rules {
			allowed := allowed
			_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return isOneOf(fl.Field().String(), allowed)
			})
		}
	})
}

func isOneOf(v string, allowed []string) bool {
	return slices.Contains(allowed, v)
}
