package api

import (
	"log/slog"
	stdhttp "net/http"

	intconfig "busbooking/internal/config"
	h "busbooking/internal/http/handlers"
	"busbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(env intconfig.Env, a *h.API) *gin.Engine {
	h.RegisterValidators()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.Metrics(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		slog.Warn("failed to set trusted proxies", "error", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", a.DBCheck)
		api.GET("/_routes", h.RoutesIndex)

		auth := api.Group("/auth")
		auth.POST("/login", a.Login)

		admin := api.Group("/admin", middleware.AuthRequired(a.JWTSecret), middleware.RequireRoles("admin"))
		admin.GET("/profile", a.Profile)
		admin.GET("/activities", a.MyActivities)

		mountCRUD(api.Group("/buses"), a.GetBuses, a.GetBus, a.CreateBus, a.UpdateBus, a.DeleteBus)
		mountCRUD(api.Group("/routes"), a.GetRoutes, a.GetRoute, a.CreateRoute, a.UpdateRoute, a.DeleteRoute)
		mountCRUD(api.Group("/schedules"), a.GetSchedules, a.GetSchedule, a.CreateSchedule, a.UpdateSchedule, a.DeleteSchedule)
		mountCRUD(api.Group("/customers"), a.GetCustomers, a.GetCustomer, a.CreateCustomer, a.UpdateCustomer, a.DeleteCustomer)
		mountCRUD(api.Group("/staff"), a.GetStaffList, a.GetStaff, a.CreateStaff, a.UpdateStaff, a.DeleteStaff)
		mountCRUD(api.Group("/users"), a.GetUsers, a.GetUser, a.CreateUser, a.UpdateUser, a.DeleteUser)
		mountCRUD(api.Group("/payments"), a.GetPayments, a.GetPayment, a.CreatePayment, a.UpdatePayment, a.DeletePayment)
		mountCRUD(api.Group("/maintenance"), a.GetMaintenance, a.GetMaintenanceRecord, a.CreateMaintenance, a.UpdateMaintenance, a.DeleteMaintenance)

		activities := api.Group("/activities")
		activities.GET("", a.GetActivities)
		activities.POST("", a.CreateActivity)
		activities.DELETE("/:id", a.DeleteActivity)

		// Bookings are only ever deleted together with their payments.
		bookings := api.Group("/bookings")
		mountCRUD(bookings, a.GetBookings, a.GetBooking, a.CreateBooking, a.UpdateBooking, a.DeleteBooking)
		bookings.GET("/delete", a.DeleteBooking) // legacy ?id=
		bookings.PUT("/:id/status", a.UpdateBookingStatus)
		bookings.GET("/:id/payments", a.GetBookingPayments)
		bookings.GET("/:id/ticket", a.GetBookingTicket)

		reports := api.Group("/reports")
		reports.GET("/dashboard", a.ReportDashboard)
		reports.GET("/revenue", a.ReportRevenue)
		reports.GET("/bookings", a.ReportBookings)
		reports.GET("/maintenance", a.ReportMaintenance)
	}

	h.SetRouter(r)
	return r
}

// mountCRUD registers the standard five routes plus the legacy query-id forms
// (GET /get?id=, POST /update?id=).
func mountCRUD(g *gin.RouterGroup, all, one, add, upd, del gin.HandlerFunc) {
	g.GET("", all)
	g.GET("/get", one)
	g.POST("", add)
	g.POST("/update", upd)
	g.GET("/:id", one)
	g.PUT("/:id", upd)
	g.DELETE("/:id", del)
}
