package claims

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/internal/dto"
	"github.com/GlebRadaev/paytrace/internal/handlers/apierr"
	"github.com/GlebRadaev/paytrace/internal/service/claimservice"
	"github.com/GlebRadaev/paytrace/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, p claimservice.CreateParams) (*domain.Claim, error)
	Get(ctx context.Context, claimID string) (*domain.Claim, error)
	ListForEmployer(ctx context.Context, employerID string) ([]domain.Claim, error)
	ListForWorker(ctx context.Context, workerID string) ([]domain.Claim, error)
	UpdateStatus(ctx context.Context, claimID string, status domain.ClaimStatus) (*domain.Claim, error)
	BeginPayment(ctx context.Context, claimID string) (*domain.Claim, error)
	AbortPayment(ctx context.Context, claimID string) (*domain.Claim, error)
	MarkPaid(ctx context.Context, claimID string) (*domain.Claim, error)
}

type Payer interface {
	Send(ctx context.Context, from, to, amount, memo string) (*domain.PaymentResult, error)
}

type ClaimHandler struct {
	claimService Service
	payer        Payer
}

func New(claimService Service, payer Payer) *ClaimHandler {
	return &ClaimHandler{
		claimService: claimService,
		payer:        payer,
	}
}

func respondList(w http.ResponseWriter, list []domain.Claim, err error) {
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	if list == nil {
		list = []domain.Claim{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// Create godoc
//
//	@Summary		Request a payment
//	@Description	A worker asks an employer for an ad-hoc payment.
//	@Tags			Claims
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateClaimRequestDTO	true	"Claim request body"
//	@Success		201		{object}	domain.Claim
//	@Failure		400		{object}	utils.Response	"Invalid amount or identifiers"
//	@Failure		404		{object}	utils.Response	"Worker or employer not found"
//	@Router			/api/claims [post]
func (h *ClaimHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClaimRequestDTO
	if err := dto.Decode(r, &req); err != nil {
		apierr.Respond(w, err, nil)
		return
	}

	p := claimservice.CreateParams{
		WorkerID:   req.WorkerID,
		EmployerID: req.EmployerID,
		Amount:     req.Amount,
		Message:    req.Message,
	}
	if req.ScheduleID != "" {
		p.ScheduleID = &req.ScheduleID
	}
	claim, err := h.claimService.Create(r.Context(), p)
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, claim)
}

// Get godoc
//
//	@Summary		Get a claim
//	@Tags			Claims
//	@Produce		json
//	@Param			id	path		string	true	"Claim id"
//	@Success		200	{object}	domain.Claim
//	@Failure		404	{object}	utils.Response	"Claim not found"
//	@Router			/api/claims/{id} [get]
func (h *ClaimHandler) Get(w http.ResponseWriter, r *http.Request) {
	claim, err := h.claimService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, claim)
}

// UpdateStatus godoc
//
//	@Summary		Approve or reject a claim
//	@Tags			Claims
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Claim id"
//	@Param			request	body		dto.UpdateClaimRequestDTO	true	"approved or rejected"
//	@Success		200		{object}	domain.Claim
//	@Failure		400		{object}	utils.Response	"Invalid status"
//	@Failure		404		{object}	utils.Response	"Claim not found"
//	@Failure		409		{object}	utils.Response	"Claim is not pending"
//	@Router			/api/claims/{id} [patch]
func (h *ClaimHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateClaimRequestDTO
	if err := dto.Decode(r, &req); err != nil {
		apierr.Respond(w, err, nil)
		return
	}

	claim, err := h.claimService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), domain.ClaimStatus(req.Status))
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, claim)
}

// Pay godoc
//
//	@Summary		Pay an approved claim
//	@Description	Claim the approved claim for payment, send the amount from the employer to the worker and mark the claim paid.
//	@Tags			Claims
//	@Produce		json
//	@Param			id	path		string	true	"Claim id"
//	@Success		200	{object}	dto.PayClaimResponseDTO
//	@Failure		404	{object}	utils.Response	"Claim not found"
//	@Failure		409	{object}	utils.Response	"Claim is not approved"
//	@Failure		422	{object}	utils.Response	"Rejected by the ledger"
//	@Failure		504	{object}	utils.Response	"Outcome unknown"
//	@Router			/api/claims/{id}/pay [post]
func (h *ClaimHandler) Pay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimID := chi.URLParam(r, "id")

	claim, err := h.claimService.BeginPayment(ctx, claimID)
	if err != nil {
		var resource any
		if errors.Is(err, domain.ErrConflict) {
			if current, gerr := h.claimService.Get(ctx, claimID); gerr == nil {
				resource = current
			}
		}
		apierr.Respond(w, err, resource)
		return
	}
	ctx = context.WithoutCancel(ctx)

	payment, err := h.payer.Send(ctx, claim.EmployerID, claim.WorkerID, claim.Amount, "Claim "+claim.ClaimID)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionTimeout) {
			zap.L().Warn("claim payment outcome unknown, claim left paying", zap.String("claim_id", claimID), zap.Error(err))
		} else if reverted, aerr := h.claimService.AbortPayment(ctx, claimID); aerr != nil {
			zap.L().Error("failed to reopen claim after failed payment", zap.String("claim_id", claimID), zap.Error(aerr))
		} else {
			claim = reverted
		}
		apierr.Respond(w, err, claim)
		return
	}

	paid, err := h.claimService.MarkPaid(ctx, claimID)
	if err != nil {
		zap.L().Error("claim paid on the ledger but not marked paid",
			zap.String("claim_id", claimID),
			zap.String("tx_hash", payment.TxHash),
			zap.Error(err),
		)
		apierr.Respond(w, err, dto.PayClaimResponseDTO{Claim: claim, Payment: payment})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayClaimResponseDTO{Claim: paid, Payment: payment})
}

// ListForEmployer godoc
//
//	@Summary		Claims addressed to an employer
//	@Tags			Claims
//	@Produce		json
//	@Param			id	path	string	true	"Employer worker id"
//	@Success		200	{array}	domain.Claim
//	@Router			/api/claims/employer/{id} [get]
func (h *ClaimHandler) ListForEmployer(w http.ResponseWriter, r *http.Request) {
	list, err := h.claimService.ListForEmployer(r.Context(), chi.URLParam(r, "id"))
	respondList(w, list, err)
}

// ListForWorker godoc
//
//	@Summary		Claims raised by a worker
//	@Tags			Claims
//	@Produce		json
//	@Param			id	path	string	true	"Worker id"
//	@Success		200	{array}	domain.Claim
//	@Router			/api/claims/worker/{id} [get]
func (h *ClaimHandler) ListForWorker(w http.ResponseWriter, r *http.Request) {
	list, err := h.claimService.ListForWorker(r.Context(), chi.URLParam(r, "id"))
	respondList(w, list, err)
}
