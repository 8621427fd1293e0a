package components

import (
	"salon-dashboard/internal/handler"
	"salon-dashboard/internal/handler/api"
	"salon-dashboard/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCalendarHandler,
		api.NewAppointmentHandler,
		api.NewStaffHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			calendar *api.CalendarHandler,
			appointment *api.AppointmentHandler,
			staff *api.StaffHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:        auth,
				Calendar:    calendar,
				Appointment: appointment,
				Staff:       staff,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
