package api

import (
	"net/http"

	reqdto "salon-dashboard/internal/handler/dto/request"
	resdto "salon-dashboard/internal/handler/dto/response"
	"salon-dashboard/internal/handler/httperr"
	"salon-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	q queries.AppointmentQueries
}

func NewAppointmentHandler(q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{q: q}
}

// @Summary Get appointment
// @Description Get an appointment by ID
// @Tags appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err, "Appointment not found")
		return
	}
	res, err := resdto.FromAppointmentView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Upcoming appointments
// @Description Next non-cancelled appointments from now, soonest first
// @Tags appointments
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max items (default 10, max 200)"
// @Success 200 {array} resdto.UpcomingResponse
// @Failure 400 {object} httperr.Response
// @Router /appointments/upcoming [get]
func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	var q reqdto.UpcomingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
		return
	}

	items, err := h.q.Upcoming(c.Request.Context(), q.Limit)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list appointments")
		return
	}
	res, err := resdto.FromUpcomingItems(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
