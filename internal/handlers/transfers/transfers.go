package transfers

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/internal/dto"
	"github.com/GlebRadaev/paytrace/internal/handlers/apierr"
	"github.com/GlebRadaev/paytrace/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Withdraw(ctx context.Context, identifier, phone, amount string) (*domain.Transfer, error)
	Deposit(ctx context.Context, identifier, phone, amount string) (*domain.Transfer, error)
	ConfirmDeposit(ctx context.Context, externalID string, success bool) (*domain.Transfer, error)
	ConfirmPayout(ctx context.Context, externalID string, success bool) (*domain.Transfer, error)
	Reconcile(ctx context.Context, transferID string) (*domain.Transfer, error)
	Get(ctx context.Context, transferID string) (*domain.Transfer, error)
}

type TransferHandler struct {
	transferService Service
}

func New(transferService Service) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

// respond writes t, or err with t attached so the caller can see where the transfer stopped.
func respond(w http.ResponseWriter, t *domain.Transfer, err error, status int) {
	if err != nil {
		var resource any
		if t != nil {
			resource = t
		}
		apierr.Respond(w, err, resource)
		return
	}
	utils.RespondWithJSON(w, status, t)
}

// Withdraw godoc
//
//	@Summary		Cash out to mobile money
//	@Description	Burn units to the platform account, then pay their local value to a phone.
//	@Tags			Transfers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Withdrawal body"
//	@Success		200		{object}	domain.Transfer			"Completed, or waiting for the provider"
//	@Failure		400		{object}	utils.Response			"Invalid amount or phone"
//	@Failure		422		{object}	utils.Response			"Burn rejected by the ledger"
//	@Failure		502		{object}	utils.Response			"Burned but not paid out"
//	@Failure		504		{object}	utils.Response			"Burn outcome unknown, reconcile later"
//	@Router			/api/transfers/withdraw [post]
func (h *TransferHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequestDTO
	if err := dto.Decode(r, &req); err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	t, err := h.transferService.Withdraw(r.Context(), req.Identifier, req.Phone, req.Amount)
	respond(w, t, err, http.StatusOK)
}

// Deposit godoc
//
//	@Summary		Top up from mobile money
//	@Description	Collect the local value from a phone, then credit units from the platform account.
//	@Tags			Transfers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Deposit body"
//	@Success		200		{object}	domain.Transfer			"Credited, or waiting for the provider"
//	@Failure		400		{object}	utils.Response			"Invalid amount or phone"
//	@Failure		502		{object}	utils.Response			"Collected but not credited"
//	@Router			/api/transfers/deposit [post]
func (h *TransferHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequestDTO
	if err := dto.Decode(r, &req); err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	t, err := h.transferService.Deposit(r.Context(), req.Identifier, req.Phone, req.Amount)
	respond(w, t, err, http.StatusOK)
}

// DepositCallback godoc
//
//	@Summary		Provider verdict on a collection
//	@Tags			Transfers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositCallbackRequestDTO	true	"Callback body"
//	@Success		200		{object}	domain.Transfer
//	@Failure		404		{object}	utils.Response	"Unknown external id"
//	@Failure		502		{object}	utils.Response	"Collected but not credited"
//	@Security		ApiKeyAuth
//	@Router			/api/transfers/deposit/callback [post]
func (h *TransferHandler) DepositCallback(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositCallbackRequestDTO
	if err := dto.Decode(r, &req); err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	t, err := h.transferService.ConfirmDeposit(r.Context(), req.ExternalID, req.Success)
	respond(w, t, err, http.StatusOK)
}

// PayoutCallback godoc
//
//	@Summary		Provider verdict on a payout
//	@Description	Settle a withdrawal whose payout the provider accepted as pending.
//	@Tags			Transfers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PayoutCallbackRequestDTO	true	"Callback body"
//	@Success		200		{object}	domain.Transfer
//	@Failure		404		{object}	utils.Response	"Unknown external id"
//	@Security		ApiKeyAuth
//	@Router			/api/transfers/payout/callback [post]
func (h *TransferHandler) PayoutCallback(w http.ResponseWriter, r *http.Request) {
	var req dto.PayoutCallbackRequestDTO
	if err := dto.Decode(r, &req); err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	t, err := h.transferService.ConfirmPayout(r.Context(), req.ExternalID, req.Success)
	respond(w, t, err, http.StatusOK)
}

// Reconcile godoc
//
//	@Summary		Reconcile an unconfirmed burn
//	@Description	Look the burn up on the ledger and pay out once if it landed.
//	@Tags			Transfers
//	@Produce		json
//	@Param			id	path		string	true	"Transfer id"
//	@Success		200	{object}	domain.Transfer
//	@Failure		404	{object}	utils.Response	"Transfer not found"
//	@Failure		409	{object}	utils.Response	"Nothing to reconcile, or too early"
//	@Failure		502	{object}	utils.Response	"Burned but not paid out"
//	@Security		ApiKeyAuth
//	@Router			/api/transfers/{id}/reconcile [post]
func (h *TransferHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	t, err := h.transferService.Reconcile(r.Context(), chi.URLParam(r, "id"))
	respond(w, t, err, http.StatusOK)
}

// Get godoc
//
//	@Summary		Get a transfer
//	@Tags			Transfers
//	@Produce		json
//	@Param			id	path		string	true	"Transfer id"
//	@Success		200	{object}	domain.Transfer
//	@Failure		404	{object}	utils.Response	"Transfer not found"
//	@Router			/api/transfers/{id} [get]
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.transferService.Get(r.Context(), chi.URLParam(r, "id"))
	respond(w, t, err, http.StatusOK)
}
