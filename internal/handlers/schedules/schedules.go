package schedules

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/internal/dto"
	"github.com/GlebRadaev/paytrace/internal/handlers/apierr"
	"github.com/GlebRadaev/paytrace/internal/service/scheduleservice"
	"github.com/GlebRadaev/paytrace/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, p scheduleservice.CreateParams) (*domain.Schedule, error)
	Get(ctx context.Context, scheduleID string) (*domain.Schedule, error)
	ListByEmployer(ctx context.Context, employerID string) ([]domain.Schedule, error)
	ListForWorker(ctx context.Context, workerID string) ([]domain.Schedule, error)
	ListDue(ctx context.Context, asOf time.Time) ([]domain.Schedule, error)
	UpdateStatus(ctx context.Context, scheduleID string, status domain.ScheduleStatus) (*domain.Schedule, error)
	RunDue(ctx context.Context, asOf time.Time) (*domain.RunReport, error)
	Reconcile(ctx context.Context, scheduleID string) (*domain.Schedule, error)
}

type ScheduleHandler struct {
	scheduleService Service
	now             func() time.Time
}

func New(scheduleService Service) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		now:             time.Now,
	}
}

// asOf parses an optional YYYY-MM-DD date, defaulting to today in UTC.
func (h *ScheduleHandler) asOf(raw string) (time.Time, error) {
	if raw == "" {
		return domain.DateOf(h.now()), nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError("as_of", "must be a date in 2006-01-02 format")
	}
	return t, nil
}

func respondList(w http.ResponseWriter, list []domain.Schedule, err error) {
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	if list == nil {
		list = []domain.Schedule{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// Create godoc
//
//	@Summary		Create a payment schedule
//	@Description	Set up a recurring payment from an employer to a worker.
//	@Tags			Schedules
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateScheduleRequestDTO	true	"Schedule request body"
//	@Success		201		{object}	domain.Schedule
//	@Failure		400		{object}	utils.Response	"Invalid amount, frequency or start date"
//	@Failure		404		{object}	utils.Response	"Employer or worker not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/schedules [post]
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateScheduleRequestDTO
	if err := dto.Decode(r, &req); err != nil {
		apierr.Respond(w, err, nil)
		return
	}

	p := scheduleservice.CreateParams{
		EmployerID: req.EmployerID,
		WorkerID:   req.WorkerID,
		Amount:     req.Amount,
		Frequency:  domain.Frequency(req.Frequency),
		Memo:       req.Memo,
	}
	if req.StartDate != "" {
		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			apierr.Respond(w, domain.NewValidationError("start_date", "must be a date in 2006-01-02 format"), nil)
			return
		}
		p.StartDate = &start
	}

	schedule, err := h.scheduleService.Create(r.Context(), p)
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, schedule)
}

// Get godoc
//
//	@Summary		Get a schedule
//	@Tags			Schedules
//	@Produce		json
//	@Param			id	path		string	true	"Schedule id"
//	@Success		200	{object}	domain.Schedule
//	@Failure		404	{object}	utils.Response	"Schedule not found"
//	@Router			/api/schedules/{id} [get]
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.scheduleService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, schedule)
}

// UpdateStatus godoc
//
//	@Summary		Pause, resume or cancel a schedule
//	@Tags			Schedules
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Schedule id"
//	@Param			request	body		dto.UpdateScheduleRequestDTO	true	"New status"
//	@Success		200		{object}	domain.Schedule
//	@Failure		400		{object}	utils.Response	"Invalid status"
//	@Failure		404		{object}	utils.Response	"Schedule not found"
//	@Failure		409		{object}	utils.Response	"Schedule is cancelled"
//	@Router			/api/schedules/{id} [patch]
func (h *ScheduleHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateScheduleRequestDTO
	if err := dto.Decode(r, &req); err != nil {
		apierr.Respond(w, err, nil)
		return
	}

	schedule, err := h.scheduleService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), domain.ScheduleStatus(req.Status))
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, schedule)
}

// ListByEmployer godoc
//
//	@Summary		Schedules paid by an employer
//	@Tags			Schedules
//	@Produce		json
//	@Param			id	path	string	true	"Employer worker id"
//	@Success		200	{array}	domain.Schedule
//	@Router			/api/schedules/employer/{id} [get]
func (h *ScheduleHandler) ListByEmployer(w http.ResponseWriter, r *http.Request) {
	list, err := h.scheduleService.ListByEmployer(r.Context(), chi.URLParam(r, "id"))
	respondList(w, list, err)
}

// ListForWorker godoc
//
//	@Summary		Schedules paying a worker
//	@Tags			Schedules
//	@Produce		json
//	@Param			id	path	string	true	"Worker id"
//	@Success		200	{array}	domain.Schedule
//	@Router			/api/schedules/worker/{id} [get]
func (h *ScheduleHandler) ListForWorker(w http.ResponseWriter, r *http.Request) {
	list, err := h.scheduleService.ListForWorker(r.Context(), chi.URLParam(r, "id"))
	respondList(w, list, err)
}

// ListDue godoc
//
//	@Summary		Schedules due for payment
//	@Tags			Schedules
//	@Produce		json
//	@Param			as_of	query	string	false	"Date in YYYY-MM-DD, defaults to today"
//	@Success		200		{array}	domain.Schedule
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Security		ApiKeyAuth
//	@Router			/api/schedules/due [get]
func (h *ScheduleHandler) ListDue(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r.URL.Query().Get("as_of"))
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	list, err := h.scheduleService.ListDue(r.Context(), asOf)
	respondList(w, list, err)
}

// ExecuteDue godoc
//
//	@Summary		Run due schedules
//	@Description	Pay every active schedule due on the given date and report each outcome.
//	@Tags			Schedules
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ExecuteDueRequestDTO	false	"Optional run date"
//	@Success		200		{object}	domain.RunReport
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		401		{object}	utils.Response	"Missing or wrong API key"
//	@Security		ApiKeyAuth
//	@Router			/api/schedules/execute-due [post]
func (h *ScheduleHandler) ExecuteDue(w http.ResponseWriter, r *http.Request) {
	var req dto.ExecuteDueRequestDTO
	if err := dto.Decode(r, &req); err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	asOf, err := h.asOf(req.AsOf)
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}

	report, err := h.scheduleService.RunDue(r.Context(), asOf)
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// Reconcile godoc
//
//	@Summary		Settle a held schedule
//	@Description	Look the held payment up on the ledger. A landed payment advances the schedule, a failed or missing one frees the date.
//	@Tags			Schedules
//	@Produce		json
//	@Param			id	path		string	true	"Schedule id"
//	@Success		200	{object}	domain.Schedule
//	@Failure		404	{object}	utils.Response	"Schedule not found"
//	@Failure		409	{object}	utils.Response	"Nothing held, or too early"
//	@Security		ApiKeyAuth
//	@Router			/api/schedules/{id}/reconcile [post]
func (h *ScheduleHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.scheduleService.Reconcile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, schedule)
}
