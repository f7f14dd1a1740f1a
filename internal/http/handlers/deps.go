package handlers

import (
	"strconv"

	"busbooking/internal/events"
	"busbooking/internal/http/middleware"
	"busbooking/internal/repositories"
	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

func (a *API) buses() repositories.BusRepository {
	return repositories.BusRepository{DB: a.DB}
}

func (a *API) routes() repositories.RouteRepository {
	return repositories.RouteRepository{DB: a.DB}
}

func (a *API) customers() repositories.CustomerRepository {
	return repositories.CustomerRepository{DB: a.DB}
}

func (a *API) staff() repositories.StaffRepository {
	return repositories.StaffRepository{DB: a.DB}
}

func (a *API) users() repositories.UserRepository {
	return repositories.UserRepository{DB: a.DB}
}

func (a *API) schedules() repositories.ScheduleRepository {
	return repositories.ScheduleRepository{DB: a.DB}
}

func (a *API) bookings() repositories.BookingRepository {
	return repositories.BookingRepository{DB: a.DB}
}

func (a *API) payments() repositories.PaymentRepository {
	return repositories.PaymentRepository{DB: a.DB}
}

func (a *API) maintenance() repositories.MaintenanceRepository {
	return repositories.MaintenanceRepository{DB: a.DB}
}

func (a *API) activities() repositories.ActivityRepository {
	return repositories.ActivityRepository{DB: a.DB}
}

func (a *API) bookingService(c *gin.Context) services.BookingService {
	pub := a.Events
	if pub == nil {
		pub = events.NoopPublisher{}
	}
	return services.BookingService{BookingRepo: a.bookings(), Events: pub, RequestID: middleware.GetRequestID(c)}
}

func (a *API) reportService(c *gin.Context) services.ReportService {
	return services.ReportService{
		ReportRepo:   repositories.ReportRepository{DB: a.DB},
		ScheduleRepo: a.schedules(),
		Cache:        a.Cache,
		CacheTTL:     a.CacheTTL,
		RequestID:    middleware.GetRequestID(c),
	}
}

func (a *API) docsService(c *gin.Context) services.DocsService {
	return services.DocsService{BookingRepo: a.bookings(), RequestID: middleware.GetRequestID(c)}
}

func (a *API) authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		UserRepo:     a.users(),
		ActivityRepo: a.activities(),
		Secret:       a.JWTSecret,
		TTL:          a.JWTTTL,
		RequestID:    middleware.GetRequestID(c),
	}
}

func (a *API) userService(c *gin.Context) services.UserService {
	return services.UserService{UserRepo: a.users(), RequestID: middleware.GetRequestID(c)}
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
