//go:build unit

package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"salon-dashboard/internal/domain/appointment"
	"salon-dashboard/internal/domain/staff"
	"salon-dashboard/internal/domain/timegrid"
	"salon-dashboard/internal/handler/api"
	resdto "salon-dashboard/internal/handler/dto/response"
	"salon-dashboard/internal/infra/memstore"
	"salon-dashboard/internal/pkg/clock"
	"salon-dashboard/internal/usecase/grid"
	"salon-dashboard/internal/usecase/queries"
	"salon-dashboard/tests/common/builder"
	"salon-dashboard/tests/common/httptest"
	"salon-dashboard/tests/common/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

const sessionToken = "bearer-token"

func oct(day, h, m int) time.Time {
	return time.Date(2026, time.October, day, h, m, 0, 0, time.UTC)
}

type CalendarHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	store    *memstore.ScheduleStore
	sessions *grid.Sessions
}

func TestCalendarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}

func (s *CalendarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(oct(19, 9, 7))
	geometry := timegrid.MustNew(timegrid.DefaultConfig())

	roster, err := memstore.NewStaffRoster([]*staff.Staff{
		builder.NewStaffBuilder().WithID("emp_001").WithName("Maria Santos").MustBuild(),
		builder.NewStaffBuilder().WithID("emp_002").WithName("James Lee").MustBuild(),
		builder.NewStaffBuilder().WithID("emp_003").WithName("Tom Becker").AsInactive().MustBuild(),
	})
	s.Require().NoError(err)

	s.store, err = memstore.NewScheduleStore(logger, []*appointment.Appointment{
		builder.NewAppointmentBuilder().WithID("a1").WithStaffID("emp_001").WithStart(oct(19, 9, 0)).WithDuration(60).MustBuild(),
		builder.NewAppointmentBuilder().WithID("a2").WithStaffID("emp_002").WithStart(oct(19, 11, 0)).WithDuration(15).MustBuild(),
		builder.NewAppointmentBuilder().WithID("a5").WithStaffID("emp_001").WithStart(oct(20, 9, 0)).MustBuild(),
	})
	s.Require().NoError(err)

	s.sessions = grid.NewSessions(grid.Deps{
		Logger:    logger,
		Geometry:  geometry,
		Store:     s.store,
		Roster:    roster,
		Clock:     clk,
		Indicator: grid.NewIndicator(logger, geometry, clk, time.Minute),
		Options:   grid.DefaultOptions(),
	})
	h := api.NewCalendarHandler(s.sessions, queries.NewAppointmentQueries(s.store, roster, clk), clk)

	s.router = gin.New()
	g := s.router.Group("/calendar")
	// stands in for RequireAuth
	g.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", "usr_001")
		}
		c.Next()
	})
	g.GET("/board", h.Board)
	g.POST("/date", h.SelectDate)
	g.POST("/drag-start", h.DragStart)
	g.POST("/prompt/submit", h.SubmitPrompt)
	g.POST("/prompt/cancel", h.CancelPrompt)
	g.POST("/appointments/:id/select", h.SelectAppointment)
	g.POST("/columns/:staffId/pointer-move", h.PointerMove)
	g.POST("/columns/:staffId/pointer-leave", h.PointerLeave)
	g.POST("/columns/:staffId/drag-over", h.DragOver)
	g.POST("/columns/:staffId/drag-leave", h.DragLeave)
	g.POST("/columns/:staffId/drop", h.Drop)
	g.POST("/columns/:staffId/click", h.ClickSlot)
}

func (s *CalendarHandlerTestSuite) board(path string) resdto.BoardResponse {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, sessionToken)
	var board resdto.BoardResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &board)
	return board
}

func (s *CalendarHandlerTestSuite) column(board resdto.BoardResponse, staffID string) resdto.ColumnResponse {
	for _, c := range board.Columns {
		if c.StaffID == staffID {
			return c
		}
	}
	s.FailNow("column not found", staffID)
	return resdto.ColumnResponse{}
}

func (s *CalendarHandlerTestSuite) post(path string, body any) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, body, sessionToken)
}

func (s *CalendarHandlerTestSuite) TestBoard() {
	s.Run("success: renders today's board", func() {
		board := s.board("/calendar/board")

		s.Equal("2026-10-19", board.Date)
		s.Equal(150.0, board.HourHeight)
		s.Equal(1800.0, board.TotalHeight)
		s.Len(board.Axis, 13)
		s.Equal("8 AM", board.Axis[0].Label)
		s.Equal("8 PM", board.Axis[12].Label)
		s.InDelta(167.5, board.CurrentTimeTop, 1e-9)
		s.Nil(board.Prompt)

		s.Require().Len(board.Columns, 2, "inactive staff get no column")
		maria := s.column(board, "emp_001")
		s.Equal("idle", maria.State)
		s.Require().Len(maria.Cards, 1)
		card := maria.Cards[0]
		s.Equal("a1", card.AppointmentID)
		s.Equal(150.0, card.Top)
		s.Equal(150.0, card.Height)
		s.Equal(148.0, card.DisplayHeight)
		s.True(card.ShowTime)
		s.Equal("9:00 AM", card.TimeLabel)

		james := s.column(board, "emp_002")
		s.Require().Len(james.Cards, 1)
		s.Equal(35.5, james.Cards[0].DisplayHeight)
		s.False(james.Cards[0].ShowTime)
	})

	s.Run("success: date query switches the session day", func() {
		board := s.board("/calendar/board?date=2026-10-20")
		s.Equal("2026-10-20", board.Date)
		s.Require().Len(s.column(board, "emp_001").Cards, 1)
		s.Equal("a5", s.column(board, "emp_001").Cards[0].AppointmentID)

		again := s.board("/calendar/board")
		s.Equal("2026-10-20", again.Date)
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/board?date=20261020", nil, sessionToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("error: 500 without a session user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/board", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CalendarHandlerTestSuite) TestSelectDate() {
	s.board("/calendar/board?date=2026-10-19")

	testCases := []struct {
		name     string
		body     map[string]any
		wantDate string
	}{
		{name: "next", body: testutil.Body("action", "next"), wantDate: "2026-10-20"},
		{name: "prev", body: testutil.Body("action", "prev"), wantDate: "2026-10-19"},
		{name: "explicit date", body: testutil.Body("date", "2026-12-24"), wantDate: "2026-12-24"},
		{name: "today", body: testutil.Body("action", "today"), wantDate: "2026-10-19"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.post("/calendar/date", tc.body)
			var board resdto.BoardResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &board)
			s.Equal(tc.wantDate, board.Date)
		})
	}

	s.Run("error: 400 when neither date nor action is given", func() {
		rec := s.post("/calendar/date", testutil.Body())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Either date or action is required")
	})

	s.Run("error: 400 on unknown action", func() {
		rec := s.post("/calendar/date", testutil.Body("action", "tomorrow"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("date change clears the open prompt", func() {
		s.post("/calendar/columns/emp_001/click", testutil.Body("y", 300))
		s.NotNil(s.board("/calendar/board").Prompt)

		s.post("/calendar/date", testutil.Body("action", "next"))
		s.Nil(s.board("/calendar/board").Prompt)
	})
}

func (s *CalendarHandlerTestSuite) TestPointerTracking() {
	s.Run("success: hover preview snaps to the slot", func() {
		rec := s.post("/calendar/columns/emp_001/pointer-move", testutil.Body("y", 200))
		var target resdto.TargetResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &target)
		s.Equal(oct(19, 9, 15), target.Time.UTC())
		s.Equal(187.5, target.Top)

		col := s.column(s.board("/calendar/board"), "emp_001")
		s.Equal("hovering", col.State)
		s.Require().NotNil(col.Target)
	})

	s.Run("success: negative offsets snap to window start", func() {
		rec := s.post("/calendar/columns/emp_001/pointer-move", testutil.Body("y", -12))
		var target resdto.TargetResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &target)
		s.Equal(oct(19, 8, 0), target.Time.UTC())
	})

	s.Run("success: leave returns the column to idle", func() {
		rec := s.post("/calendar/columns/emp_001/pointer-leave", nil)
		s.Equal(http.StatusNoContent, rec.Code)
		col := s.column(s.board("/calendar/board"), "emp_001")
		s.Equal("idle", col.State)
		s.Nil(col.Target)
	})

	s.Run("error: 400 when y is missing", func() {
		rec := s.post("/calendar/columns/emp_001/pointer-move", testutil.Body())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pointer offset")
	})

	s.Run("error: 404 for unknown or inactive columns", func() {
		for _, staffID := range []string{"emp_999", "emp_003"} {
			rec := s.post("/calendar/columns/"+staffID+"/pointer-move", testutil.Body("y", 10))
			httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Staff column not found")
		}
	})
}

func (s *CalendarHandlerTestSuite) TestDragAndDrop() {
	s.Run("success: moves the appointment to the previewed slot", func() {
		rec := s.post("/calendar/drag-start", testutil.Body("appointmentId", "a1"))
		var token resdto.DragTokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &token)
		s.NotEmpty(token.Token)

		rec = s.post("/calendar/columns/emp_002/drag-over", testutil.Body("y", 200))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("drag_over", s.column(s.board("/calendar/board"), "emp_002").State)

		rec = s.post("/calendar/columns/emp_002/drop", testutil.Body("token", token.Token))
		var drop resdto.DropResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &drop)
		s.Equal("moved", drop.Outcome)
		s.Require().NotNil(drop.Appointment)
		s.Equal("emp_002", drop.Appointment.StaffID)
		s.Equal("James Lee", drop.Appointment.StaffName)
		s.Equal(oct(19, 9, 15), drop.Appointment.Start.UTC())
		s.Equal(60, drop.Appointment.DurationMinutes)

		board := s.board("/calendar/board")
		s.Empty(s.column(board, "emp_001").Cards)
		james := s.column(board, "emp_002")
		s.Equal("idle", james.State)
		s.Require().Len(james.Cards, 2)
		s.Equal("a1", james.Cards[0].AppointmentID)
		s.Equal(187.5, james.Cards[0].Top)
	})

	s.Run("ignored: malformed token leaves the schedule untouched", func() {
		before := s.store.All(context.Background())

		s.post("/calendar/columns/emp_001/drag-over", testutil.Body("y", 400))
		rec := s.post("/calendar/columns/emp_001/drop", testutil.Body("token", "%%%not-a-token"))
		var drop resdto.DropResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &drop)
		s.Equal("malformed_payload", drop.Outcome)
		s.Nil(drop.Appointment)
		s.Len(s.store.All(context.Background()), len(before))
		s.Equal("idle", s.column(s.board("/calendar/board"), "emp_001").State)
	})

	s.Run("ignored: drop without a preview target", func() {
		rec := s.post("/calendar/drag-start", testutil.Body("appointmentId", "a2"))
		var token resdto.DragTokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &token)

		rec = s.post("/calendar/columns/emp_001/drop", testutil.Body("token", token.Token))
		var drop resdto.DropResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &drop)
		s.Equal("no_target", drop.Outcome)
	})

	s.Run("ignored: unknown appointment", func() {
		rec := s.post("/calendar/drag-start", testutil.Body("appointmentId", "ghost"))
		var token resdto.DragTokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &token)

		s.post("/calendar/columns/emp_001/drag-over", testutil.Body("y", 0))
		rec = s.post("/calendar/columns/emp_001/drop", testutil.Body("token", token.Token))
		var drop resdto.DropResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &drop)
		s.Equal("unknown_appointment", drop.Outcome)
	})

	s.Run("ignored: unparsable body counts as malformed payload", func() {
		s.post("/calendar/columns/emp_001/drag-over", testutil.Body("y", 0))
		rec := httptest.PerformRaw(s.T(), s.router, http.MethodPost, "/calendar/columns/emp_001/drop", "{not json", sessionToken)
		var drop resdto.DropResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &drop)
		s.Equal("malformed_payload", drop.Outcome)
	})

	s.Run("success: drag leave discards the candidate", func() {
		s.post("/calendar/columns/emp_001/drag-over", testutil.Body("y", 0))
		rec := s.post("/calendar/columns/emp_001/drag-leave", nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal("idle", s.column(s.board("/calendar/board"), "emp_001").State)
	})

	s.Run("error: 404 when dropping on an unknown column", func() {
		rec := s.post("/calendar/columns/emp_999/drop", testutil.Body("token", "x"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Staff column not found")
	})
}

func (s *CalendarHandlerTestSuite) TestCreationPrompt() {
	s.Run("error: 409 when no prompt is open", func() {
		rec := s.post("/calendar/prompt/submit", testutil.Body("clientName", "Ava Chen"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "No appointment prompt is open")
	})

	s.Run("success: click opens a prefilled prompt", func() {
		rec := s.post("/calendar/columns/emp_002/click", testutil.Body("y", 200))
		var prompt resdto.PromptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &prompt)
		s.Equal("emp_002", prompt.StaffID)
		s.Equal("James Lee", prompt.StaffName)
		s.Equal(oct(19, 9, 15), prompt.Time.UTC())
		s.Equal("Swedish Massage", prompt.DefaultService)
		s.Equal(60, prompt.DefaultDuration)
		s.Equal([]int{15, 30, 45, 60, 90, 120}, prompt.DurationOptions)
	})

	s.Run("error: 400 when the client name is missing", func() {
		rec := s.post("/calendar/prompt/submit", testutil.Body("serviceName", "Gel Manicure"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 and prompt stays open on a blank client name", func() {
		rec := s.post("/calendar/prompt/submit", testutil.Body("clientName", "   "))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment form")
		s.NotNil(s.board("/calendar/board").Prompt)
	})

	s.Run("success: submit books the slot with defaults", func() {
		rec := s.post("/calendar/prompt/submit", testutil.Body("clientName", "Ava Chen"))
		var created resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.NotEmpty(created.ID)
		s.Equal("Ava Chen", created.ClientName)
		s.Equal("Swedish Massage", created.ServiceName)
		s.Equal("emp_002", created.StaffID)
		s.Equal(oct(19, 9, 15), created.Start.UTC())
		s.Equal(60, created.DurationMinutes)
		s.Equal("confirmed", created.Status)
		s.Zero(created.PriceCents)

		board := s.board("/calendar/board")
		s.Nil(board.Prompt)
		s.Len(s.column(board, "emp_002").Cards, 2)
	})

	s.Run("success: cancel closes the prompt without booking", func() {
		s.post("/calendar/columns/emp_001/click", testutil.Body("y", 900))
		before := len(s.store.All(context.Background()))

		rec := s.post("/calendar/prompt/cancel", nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Nil(s.board("/calendar/board").Prompt)
		s.Len(s.store.All(context.Background()), before)
	})
}

func (s *CalendarHandlerTestSuite) TestSelectAppointment() {
	s.Run("success: returns the full record", func() {
		rec := s.post("/calendar/appointments/a1/select", nil)
		var res resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("a1", res.ID)
		s.Equal("Maria Santos", res.StaffName)
		s.Equal(oct(19, 10, 0), res.End.UTC())
	})

	s.Run("error: 404 for unknown ids", func() {
		rec := s.post("/calendar/appointments/ghost/select", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}

func (s *CalendarHandlerTestSuite) TestSessionsAreIsolated() {
	s.post("/calendar/columns/emp_001/pointer-move", testutil.Body("y", 100))
	s.Equal(1, s.sessions.Len())

	other := s.sessions.Get("usr_002").Board(context.Background())
	for _, col := range other.Columns {
		s.Equal(grid.StateIdle, col.State)
	}
}
