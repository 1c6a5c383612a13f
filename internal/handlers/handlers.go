package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/paytrace/docs"
	accounthandlers "github.com/GlebRadaev/paytrace/internal/handlers/accounts"
	claimhandlers "github.com/GlebRadaev/paytrace/internal/handlers/claims"
	paymenthandlers "github.com/GlebRadaev/paytrace/internal/handlers/payments"
	reviewhandlers "github.com/GlebRadaev/paytrace/internal/handlers/reviews"
	schedulehandlers "github.com/GlebRadaev/paytrace/internal/handlers/schedules"
	transferhandlers "github.com/GlebRadaev/paytrace/internal/handlers/transfers"
	"github.com/GlebRadaev/paytrace/internal/service"
	"github.com/GlebRadaev/paytrace/pkg/auth"
	"github.com/GlebRadaev/paytrace/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AccountHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	PlatformKey(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Incoming(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ListByEmployer(w http.ResponseWriter, r *http.Request)
	ListForWorker(w http.ResponseWriter, r *http.Request)
	ListDue(w http.ResponseWriter, r *http.Request)
	ExecuteDue(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type ClaimHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	ListForEmployer(w http.ResponseWriter, r *http.Request)
	ListForWorker(w http.ResponseWriter, r *http.Request)
}

type ReviewHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Eligible(w http.ResponseWriter, r *http.Request)
	ReviewsFor(w http.ResponseWriter, r *http.Request)
	ReviewsBy(w http.ResponseWriter, r *http.Request)
	Rating(w http.ResponseWriter, r *http.Request)
	Certificates(w http.ResponseWriter, r *http.Request)
	Invite(w http.ResponseWriter, r *http.Request)
	VerifyInvite(w http.ResponseWriter, r *http.Request)
}

type TransferHandler interface {
	Withdraw(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	DepositCallback(w http.ResponseWriter, r *http.Request)
	PayoutCallback(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AccountHandler  AccountHandler
	PaymentHandler  PaymentHandler
	ScheduleHandler ScheduleHandler
	ClaimHandler    ClaimHandler
	ReviewHandler   ReviewHandler
	TransferHandler TransferHandler

	apiKey  string
	network string
}

func New(s *service.Services, apiKey, network string) *Handlers {
	return &Handlers{
		AccountHandler:  accounthandlers.New(s.AccountService, s.PlatformKey),
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
		ScheduleHandler: schedulehandlers.New(s.ScheduleService),
		ClaimHandler:    claimhandlers.New(s.ClaimService, s.PaymentService),
		ReviewHandler:   reviewhandlers.New(s.ReviewService),
		TransferHandler: transferhandlers.New(s.TransferService),
		apiKey:          apiKey,
		network:         network,
	}
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok", "network": h.network})
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", h.Health)

	operator := auth.OperatorMiddleware(h.apiKey)

	r.Route("/api", func(r chi.Router) {
		r.Get("/platform-key", h.AccountHandler.PlatformKey)

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", h.AccountHandler.Create)
			r.Get("/{identifier}", h.AccountHandler.Profile)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/send", h.PaymentHandler.Send)
			r.Get("/{identifier}", h.PaymentHandler.History)
			r.Get("/{identifier}/incoming", h.PaymentHandler.Incoming)
			r.Get("/{identifier}/stats", h.PaymentHandler.Stats)
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Post("/", h.ScheduleHandler.Create)
			r.Get("/employer/{id}", h.ScheduleHandler.ListByEmployer)
			r.Get("/worker/{id}", h.ScheduleHandler.ListForWorker)
			r.With(operator).Get("/due", h.ScheduleHandler.ListDue)
			r.With(operator).Post("/execute-due", h.ScheduleHandler.ExecuteDue)
			r.Get("/{id}", h.ScheduleHandler.Get)
			r.Patch("/{id}", h.ScheduleHandler.UpdateStatus)
			r.With(operator).Post("/{id}/reconcile", h.ScheduleHandler.Reconcile)
		})

		r.Route("/claims", func(r chi.Router) {
			r.Post("/", h.ClaimHandler.Create)
			r.Get("/employer/{id}", h.ClaimHandler.ListForEmployer)
			r.Get("/worker/{id}", h.ClaimHandler.ListForWorker)
			r.Get("/{id}", h.ClaimHandler.Get)
			r.Patch("/{id}", h.ClaimHandler.UpdateStatus)
			r.Post("/{id}/pay", h.ClaimHandler.Pay)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Post("/", h.ReviewHandler.Submit)
			r.Get("/eligible/{id}", h.ReviewHandler.Eligible)
			r.Get("/for/{id}", h.ReviewHandler.ReviewsFor)
			r.Get("/by/{id}", h.ReviewHandler.ReviewsBy)
			r.Get("/rating/{id}", h.ReviewHandler.Rating)
			r.Get("/certificates/{identifier}", h.ReviewHandler.Certificates)
			r.With(operator).Post("/invite", h.ReviewHandler.Invite)
			r.Get("/invite/verify", h.ReviewHandler.VerifyInvite)
		})

		r.Route("/transfers", func(r chi.Router) {
			r.Post("/withdraw", h.TransferHandler.Withdraw)
			r.Post("/deposit", h.TransferHandler.Deposit)
			r.With(operator).Post("/deposit/callback", h.TransferHandler.DepositCallback)
			r.With(operator).Post("/payout/callback", h.TransferHandler.PayoutCallback)
			r.Get("/{id}", h.TransferHandler.Get)
			r.With(operator).Post("/{id}/reconcile", h.TransferHandler.Reconcile)
		})
	})

	return r
}
