package api

import (
	"net/http"

	reqdto "salon-dashboard/internal/handler/dto/request"
	resdto "salon-dashboard/internal/handler/dto/response"
	"salon-dashboard/internal/handler/httperr"
	"salon-dashboard/internal/handler/middleware"
	"salon-dashboard/internal/pkg/clock"
	"salon-dashboard/internal/usecase/grid"
	"salon-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CalendarHandler forwards grid gestures to the caller's session controller.
type CalendarHandler struct {
	sessions *grid.Sessions
	appts    queries.AppointmentQueries
	clock    clock.Clock
}

func NewCalendarHandler(sessions *grid.Sessions, appts queries.AppointmentQueries, clk clock.Clock) *CalendarHandler {
	return &CalendarHandler{
		sessions: sessions,
		appts:    appts,
		clock:    clk,
	}
}

// @Summary Day board
// @Description Render the day view. Passing date also switches the session to that day.
// @Tags calendar
// @Security BearerAuth
// @Produce json
// @Param date query string false "Day to show (YYYY-MM-DD)"
// @Success 200 {object} resdto.BoardResponse
// @Failure 400 {object} httperr.Response
// @Router /calendar/board [get]
func (h *CalendarHandler) Board(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	var q reqdto.BoardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	day, given, err := q.ParseDate(h.clock.Now().Location())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	if given {
		ctrl.SelectDate(day)
	}

	c.JSON(http.StatusOK, resdto.FromBoard(ctrl.Board(c.Request.Context())))
}

// @Summary Change day
// @Description Jump to a date or step with prev, next or today. Hover, drag and prompt state are cleared.
// @Tags calendar
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SelectDateRequest true "Date or action"
// @Success 200 {object} resdto.BoardResponse
// @Failure 400 {object} httperr.Response
// @Router /calendar/date [post]
func (h *CalendarHandler) SelectDate(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	var req reqdto.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	switch req.Action {
	case reqdto.DateActionPrev:
		ctrl.PrevDay()
	case reqdto.DateActionNext:
		ctrl.NextDay()
	case reqdto.DateActionToday:
		ctrl.Today()
	default:
		day, given, err := req.ParseDate(h.clock.Now().Location())
		if err != nil || !given {
			if err == nil {
				err = errDateOrAction
			}
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Either date or action is required", nil)
			return
		}
		ctrl.SelectDate(day)
	}

	c.JSON(http.StatusOK, resdto.FromBoard(ctrl.Board(c.Request.Context())))
}

// @Summary Pointer move
// @Description Update the hover preview for a column
// @Tags calendar
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param staffId path string true "Staff ID"
// @Param request body reqdto.PointerRequest true "Pointer offset"
// @Success 200 {object} resdto.TargetResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /calendar/columns/{staffId}/pointer-move [post]
func (h *CalendarHandler) PointerMove(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	y, ok := bindPointer(c)
	if !ok {
		return
	}

	target, err := ctrl.PointerMove(c.Request.Context(), c.Param("staffId"), y)
	if err != nil {
		abortWithUsecaseError(c, err, "Staff column not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTarget(target))
}

// @Summary Pointer leave
// @Tags calendar
// @Security BearerAuth
// @Param staffId path string true "Staff ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /calendar/columns/{staffId}/pointer-leave [post]
func (h *CalendarHandler) PointerLeave(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	if err := ctrl.PointerLeave(c.Request.Context(), c.Param("staffId")); err != nil {
		abortWithUsecaseError(c, err, "Staff column not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Start drag
// @Description Issue the drag token for an appointment card
// @Tags calendar
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.DragStartRequest true "Dragged appointment"
// @Success 200 {object} resdto.DragTokenResponse
// @Failure 400 {object} httperr.Response
// @Router /calendar/drag-start [post]
func (h *CalendarHandler) DragStart(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	var req reqdto.DragStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.DragTokenResponse{
		Token: ctrl.DragStart(c.Request.Context(), req.AppointmentID),
	})
}

// @Summary Drag over
// @Description Make the column the drop candidate at the snapped offset
// @Tags calendar
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param staffId path string true "Staff ID"
// @Param request body reqdto.PointerRequest true "Pointer offset"
// @Success 200 {object} resdto.TargetResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /calendar/columns/{staffId}/drag-over [post]
func (h *CalendarHandler) DragOver(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	y, ok := bindPointer(c)
	if !ok {
		return
	}

	target, err := ctrl.DragOver(c.Request.Context(), c.Param("staffId"), y)
	if err != nil {
		abortWithUsecaseError(c, err, "Staff column not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTarget(target))
}

// @Summary Drag leave
// @Tags calendar
// @Security BearerAuth
// @Param staffId path string true "Staff ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /calendar/columns/{staffId}/drag-leave [post]
func (h *CalendarHandler) DragLeave(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	if err := ctrl.DragLeave(c.Request.Context(), c.Param("staffId")); err != nil {
		abortWithUsecaseError(c, err, "Staff column not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Drop
// @Description Move the dragged appointment to the column's previewed slot. Ignored drops still return 200 with their outcome.
// @Tags calendar
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param staffId path string true "Staff ID"
// @Param request body reqdto.DropRequest true "Drag token"
// @Success 200 {object} resdto.DropResponse
// @Failure 404 {object} httperr.Response
// @Router /calendar/columns/{staffId}/drop [post]
func (h *CalendarHandler) Drop(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	// a body that does not bind is treated like a malformed drag payload
	var req reqdto.DropRequest
	_ = c.ShouldBindJSON(&req)

	result, err := ctrl.Drop(c.Request.Context(), c.Param("staffId"), req.Token)
	if err != nil {
		abortWithUsecaseError(c, err, "Staff column not found")
		return
	}

	res := resdto.DropResponse{Outcome: string(result.Outcome)}
	if result.Moved != nil {
		appt, err := resdto.FromAppointmentView(h.appts.Describe(c.Request.Context(), result.Moved))
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		res.Appointment = appt
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Click slot
// @Description Open the creation prompt for the clicked slot
// @Tags calendar
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param staffId path string true "Staff ID"
// @Param request body reqdto.PointerRequest true "Click offset"
// @Success 200 {object} resdto.PromptResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /calendar/columns/{staffId}/click [post]
func (h *CalendarHandler) ClickSlot(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	y, ok := bindPointer(c)
	if !ok {
		return
	}

	prompt, err := ctrl.ClickSlot(c.Request.Context(), c.Param("staffId"), y)
	if err != nil {
		abortWithUsecaseError(c, err, "Staff column not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPrompt(prompt))
}

// @Summary Submit prompt
// @Description Book the open prompt's slot. Empty service and zero duration fall back to the prompt defaults.
// @Tags calendar
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitPromptRequest true "Appointment form"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /calendar/prompt/submit [post]
func (h *CalendarHandler) SubmitPrompt(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	var req reqdto.SubmitPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := ctrl.SubmitPrompt(c.Request.Context(), req.ToForm())
	if err != nil {
		abortWithUsecaseError(c, err, promptErrorMessage(err))
		return
	}

	res, err := resdto.FromAppointmentView(h.appts.Describe(c.Request.Context(), created))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Cancel prompt
// @Tags calendar
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /calendar/prompt/cancel [post]
func (h *CalendarHandler) CancelPrompt(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	ctrl.CancelPrompt()
	c.Status(http.StatusNoContent)
}

// @Summary Select appointment
// @Description Open an appointment card's details
// @Tags calendar
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Router /calendar/appointments/{id}/select [post]
func (h *CalendarHandler) SelectAppointment(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	a, err := ctrl.SelectAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err, "Appointment not found")
		return
	}

	res, err := resdto.FromAppointmentView(h.appts.Describe(c.Request.Context(), a))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CalendarHandler) controller(c *gin.Context) (*grid.Controller, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSessionUser, "Internal server error", nil)
		return nil, false
	}
	return h.sessions.Get(userID), true
}

func bindPointer(c *gin.Context) (float64, bool) {
	var req reqdto.PointerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pointer offset", nil)
		return 0, false
	}
	return *req.Y, true
}
