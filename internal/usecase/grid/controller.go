package grid

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"salon-dashboard/internal/domain/appointment"
	"salon-dashboard/internal/domain/staff"
	"salon-dashboard/internal/domain/timegrid"
	"salon-dashboard/internal/infra"
	"salon-dashboard/internal/pkg/clock"
	"salon-dashboard/internal/pkg/errs"
	"salon-dashboard/internal/pkg/metrics"
	"salon-dashboard/internal/pkg/patch"
)

var (
	ErrColumnNotFound      = errs.New("staff column not found")
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrNoOpenPrompt        = errs.New("no creation prompt is open")
	ErrInvalidPromptForm   = errs.New("invalid appointment form")
)

type Deps struct {
	Logger    *slog.Logger
	Geometry  *timegrid.Geometry
	Store     ScheduleStore
	Roster    StaffRoster
	Clock     clock.Clock
	Indicator *Indicator
	Options   Options
}

type column struct {
	state  ColumnState
	target *Target
}

// Controller holds one session's interaction state over the shared schedule.
// Only MoveAppointment and CreateAppointment reach shared state.
type Controller struct {
	logger    *slog.Logger
	geometry  *timegrid.Geometry
	store     ScheduleStore
	roster    StaffRoster
	clock     clock.Clock
	indicator *Indicator
	opts      Options

	mu      sync.Mutex
	date    time.Time
	columns map[string]*column
	prompt  *Prompt
}

func NewController(d Deps) *Controller {
	c := &Controller{
		logger:    d.Logger,
		geometry:  d.Geometry,
		store:     d.Store,
		roster:    d.Roster,
		clock:     d.Clock,
		indicator: d.Indicator,
		opts:      d.Options,
		columns:   make(map[string]*column),
	}
	c.date = startOfDay(c.clock.Now())
	return c
}

func (c *Controller) Date() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.date
}

// PointerMove records the hover preview. A pointer is over one column at a time.
func (c *Controller) PointerMove(ctx context.Context, staffID string, y float64) (*Target, error) {
	if _, err := c.activeMember(ctx, staffID); err != nil {
		return nil, err
	}
	metrics.IncGesture("pointer_move")

	c.mu.Lock()
	defer c.mu.Unlock()

	for id, col := range c.columns {
		if id != staffID && col.state == StateHovering {
			delete(c.columns, id)
		}
	}
	col := c.column(staffID)
	target := c.snap(staffID, y)
	if col.state != StateDragOver {
		col.state = StateHovering
	}
	col.target = target
	return copyTarget(target), nil
}

func (c *Controller) PointerLeave(ctx context.Context, staffID string) error {
	if _, err := c.activeMember(ctx, staffID); err != nil {
		return err
	}
	metrics.IncGesture("pointer_leave")

	c.mu.Lock()
	defer c.mu.Unlock()
	if col, ok := c.columns[staffID]; ok && col.state == StateHovering {
		delete(c.columns, staffID)
	}
	return nil
}

// DragStart issues the drag token. Unknown ids are not checked here; the drop
// resolves them against the store.
func (c *Controller) DragStart(_ context.Context, appointmentID string) string {
	metrics.IncGesture("drag_start")
	return EncodeDragToken(appointmentID)
}

// DragOver makes staffID the single drop candidate.
func (c *Controller) DragOver(ctx context.Context, staffID string, y float64) (*Target, error) {
	if _, err := c.activeMember(ctx, staffID); err != nil {
		return nil, err
	}
	metrics.IncGesture("drag_over")

	c.mu.Lock()
	defer c.mu.Unlock()

	for id, col := range c.columns {
		if id != staffID && col.state == StateDragOver {
			delete(c.columns, id)
		}
	}
	col := c.column(staffID)
	col.state = StateDragOver
	col.target = c.snap(staffID, y)
	return copyTarget(col.target), nil
}

func (c *Controller) DragLeave(ctx context.Context, staffID string) error {
	if _, err := c.activeMember(ctx, staffID); err != nil {
		return err
	}
	metrics.IncGesture("drag_leave")

	c.mu.Lock()
	defer c.mu.Unlock()
	if col, ok := c.columns[staffID]; ok && col.state == StateDragOver {
		delete(c.columns, staffID)
	}
	return nil
}

// Drop moves the dragged appointment to the column's last computed target.
// Every outcome returns the column to idle; only an unknown column is an error.
func (c *Controller) Drop(ctx context.Context, staffID, token string) (DropResult, error) {
	if _, err := c.activeMember(ctx, staffID); err != nil {
		return DropResult{}, err
	}
	metrics.IncGesture("drop")

	c.mu.Lock()
	var target *Target
	if col, ok := c.columns[staffID]; ok {
		target = col.target
		delete(c.columns, staffID)
	}
	// the gesture is over wherever it landed
	for id, col := range c.columns {
		if col.state == StateDragOver {
			delete(c.columns, id)
		}
	}
	c.mu.Unlock()

	id, err := DecodeDragToken(token)
	if err != nil {
		c.logger.Warn("drop ignored: malformed drag payload",
			slog.String("staff_id", staffID),
			slog.String("error", err.Error()),
		)
		metrics.IncDropIgnored(string(DropMalformedPayload))
		return DropResult{Outcome: DropMalformedPayload}, nil
	}

	if target == nil {
		metrics.IncDropIgnored(string(DropNoTarget))
		return DropResult{Outcome: DropNoTarget}, nil
	}

	moved, ok := c.store.MoveAppointment(ctx, id, staffID, target.Time)
	if !ok {
		metrics.IncDropIgnored(string(DropUnknownAppointment))
		return DropResult{Outcome: DropUnknownAppointment}, nil
	}

	metrics.IncAppointmentMoved()
	c.logger.Info("appointment moved",
		slog.String("appointment_id", moved.ID()),
		slog.String("staff_id", staffID),
		slog.Time("start", moved.Start()),
	)
	return DropResult{Outcome: DropMoved, Moved: moved}, nil
}

// ClickSlot opens the creation prompt for the snapped slot, replacing any open one.
func (c *Controller) ClickSlot(ctx context.Context, staffID string, y float64) (*Prompt, error) {
	member, err := c.activeMember(ctx, staffID)
	if err != nil {
		return nil, err
	}
	metrics.IncGesture("click")

	c.mu.Lock()
	defer c.mu.Unlock()

	target := c.snap(staffID, y)
	c.prompt = &Prompt{
		StaffID:         staffID,
		StaffName:       member.Name(),
		Time:            target.Time,
		Top:             target.Top,
		DefaultService:  c.opts.DefaultService,
		DefaultDuration: c.opts.DefaultDuration,
		DurationOptions: slices.Clone(c.opts.DurationOptions),
		ServiceOptions:  slices.Clone(c.opts.ServiceOptions),
	}
	return copyPrompt(c.prompt), nil
}

// SubmitPrompt books the open prompt's slot. The prompt stays open when the form
// is rejected so the user can correct it.
func (c *Controller) SubmitPrompt(ctx context.Context, form PromptForm) (*appointment.Appointment, error) {
	metrics.IncGesture("prompt_submit")

	c.mu.Lock()
	prompt := c.prompt
	c.mu.Unlock()
	if prompt == nil {
		return nil, errs.Mark(ErrNoOpenPrompt, errs.ErrConflict)
	}

	serviceName := patch.CoalesceZero(strings.TrimSpace(form.ServiceName), prompt.DefaultService)
	// zero means the default; negative durations fall through to validation
	duration := patch.CoalesceZero(form.DurationMinutes, prompt.DefaultDuration)

	created, err := c.store.CreateAppointment(ctx, appointment.Draft{
		ClientName:      form.ClientName,
		ServiceName:     serviceName,
		StaffID:         prompt.StaffID,
		Start:           prompt.Time,
		DurationMinutes: duration,
	})
	if err != nil {
		return nil, errs.Mark(errs.Mark(err, ErrInvalidPromptForm), errs.ErrDomainValidation)
	}

	c.mu.Lock()
	if c.prompt == prompt {
		c.prompt = nil
	}
	c.mu.Unlock()

	metrics.IncAppointmentCreated(created.Status().String())
	c.logger.Info("appointment created",
		slog.String("appointment_id", created.ID()),
		slog.String("staff_id", created.StaffID()),
		slog.Time("start", created.Start()),
		slog.Int("duration_minutes", created.DurationMinutes()),
	)
	return created, nil
}

// CancelPrompt closes the prompt without touching the schedule.
func (c *Controller) CancelPrompt() {
	metrics.IncGesture("prompt_cancel")

	c.mu.Lock()
	c.prompt = nil
	c.mu.Unlock()
}

func (c *Controller) Prompt() *Prompt {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyPrompt(c.prompt)
}

// SelectAppointment returns the full record for the detail view.
func (c *Controller) SelectAppointment(ctx context.Context, id string) (*appointment.Appointment, error) {
	metrics.IncGesture("select")

	a, err := c.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrAppointmentNotFound, errs.ErrNotFound)
		}
		return nil, errs.Wrap(err, "failed to load appointment")
	}
	return a, nil
}

// SelectDate switches the viewed day. Hover, drag and prompt state belong to the
// previous day and are discarded.
func (c *Controller) SelectDate(day time.Time) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.date = startOfDay(day.In(c.clock.Now().Location()))
	c.columns = make(map[string]*column)
	c.prompt = nil
	return c.date
}

func (c *Controller) PrevDay() time.Time {
	return c.SelectDate(c.Date().AddDate(0, 0, -1))
}

func (c *Controller) NextDay() time.Time {
	return c.SelectDate(c.Date().AddDate(0, 0, 1))
}

func (c *Controller) Today() time.Time {
	return c.SelectDate(c.clock.Now())
}

// Board renders the current day. Store reads happen outside the session lock.
func (c *Controller) Board(ctx context.Context) Board {
	members := c.roster.Active(ctx)

	c.mu.Lock()
	date := c.date
	states := make(map[string]column, len(c.columns))
	for id, col := range c.columns {
		states[id] = *col
	}
	prompt := copyPrompt(c.prompt)
	c.mu.Unlock()

	appts := c.store.DayView(ctx, date, staff.ActiveIDs(members))
	cards := groupCards(c.geometry, appts)

	columns := make([]Column, 0, len(members))
	for _, m := range members {
		col := Column{
			StaffID:     m.ID(),
			Name:        m.Name(),
			Designation: m.Designation(),
			Initials:    m.Initials(),
			State:       StateIdle,
			Cards:       cards[m.ID()],
		}
		if st, ok := states[m.ID()]; ok {
			col.State = st.state
			col.Target = copyTarget(st.target)
		}
		if col.Cards == nil {
			col.Cards = []Card{}
		}
		columns = append(columns, col)
	}

	var indicator IndicatorView
	if c.indicator != nil {
		indicator.Top, indicator.Visible = c.indicator.Current()
	} else {
		indicator.Top, indicator.Visible = c.geometry.CurrentTimeOffset(c.clock.Now())
	}

	return Board{
		Date:        date,
		HourHeight:  c.geometry.HourHeight(),
		TotalHeight: c.geometry.TotalHeight(),
		Axis:        buildAxis(c.geometry, date),
		Columns:     columns,
		Indicator:   indicator,
		Prompt:      prompt,
	}
}

func (c *Controller) activeMember(ctx context.Context, staffID string) (*staff.Staff, error) {
	for _, m := range c.roster.Active(ctx) {
		if m.ID() == staffID {
			return m, nil
		}
	}
	return nil, errs.Mark(errs.Wrapf(ErrColumnNotFound, "staff %q", staffID), errs.ErrNotFound)
}

// must hold c.mu
func (c *Controller) column(staffID string) *column {
	col, ok := c.columns[staffID]
	if !ok {
		col = &column{state: StateIdle}
		c.columns[staffID] = col
	}
	return col
}

// must hold c.mu
func (c *Controller) snap(staffID string, y float64) *Target {
	_, top := c.geometry.SnapPixels(y)
	return &Target{
		StaffID: staffID,
		Time:    c.geometry.SnapPixelsToTime(c.date, y),
		Top:     top,
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func copyTarget(t *Target) *Target {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

func copyPrompt(p *Prompt) *Prompt {
	if p == nil {
		return nil
	}
	cp := *p
	cp.DurationOptions = slices.Clone(p.DurationOptions)
	cp.ServiceOptions = slices.Clone(p.ServiceOptions)
	return &cp
}
