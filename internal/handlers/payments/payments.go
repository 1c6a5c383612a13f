package payments

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/internal/dto"
	"github.com/GlebRadaev/paytrace/internal/handlers/apierr"
	"github.com/GlebRadaev/paytrace/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Send(ctx context.Context, from, to, amount, memo string) (*domain.PaymentResult, error)
	History(ctx context.Context, identifier string, limit int, cursor string) (*domain.PaymentPage, error)
	Stats(ctx context.Context, identifier string) (*domain.PaymentStats, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Send godoc
//
//	@Summary		Send a payment
//	@Description	Transfer native units from a registered account to a worker id, phone or public key.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SendPaymentRequestDTO	true	"Payment request body"
//	@Success		200		{object}	domain.PaymentResult
//	@Failure		400		{object}	utils.Response	"Invalid amount, memo or identifiers"
//	@Failure		404		{object}	utils.Response	"Sender not registered"
//	@Failure		422		{object}	utils.Response	"Rejected by the ledger"
//	@Failure		503		{object}	utils.Response	"Ledger unavailable"
//	@Failure		504		{object}	utils.Response	"Outcome unknown"
//	@Router			/api/payments/send [post]
func (h *PaymentHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.SendPaymentRequestDTO
	if err := dto.Decode(r, &req); err != nil {
		apierr.Respond(w, err, nil)
		return
	}

	res, err := h.paymentService.Send(r.Context(), req.From, req.To, req.Amount, req.Memo)
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

func (h *PaymentHandler) history(w http.ResponseWriter, r *http.Request) (*domain.PaymentPage, bool) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "limit: must be a number")
			return nil, false
		}
		limit = n
	}

	page, err := h.paymentService.History(r.Context(), chi.URLParam(r, "identifier"), limit, r.URL.Query().Get("cursor"))
	if err != nil {
		apierr.Respond(w, err, nil)
		return nil, false
	}
	return page, true
}

// History godoc
//
//	@Summary		Payment history
//	@Description	One page of payments touching an account, newest first, annotated with worker ids.
//	@Tags			Payments
//	@Produce		json
//	@Param			identifier	path		string	true	"Worker id, phone or public key"
//	@Param			limit		query		int		false	"Page size, 1 to 200"
//	@Param			cursor		query		string	false	"Paging token of the last record seen"
//	@Success		200			{object}	domain.PaymentPage
//	@Failure		400			{object}	utils.Response	"Invalid identifier or limit"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Router			/api/payments/{identifier} [get]
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	page, ok := h.history(w, r)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, page)
}

// Incoming godoc
//
//	@Summary		Incoming payments
//	@Description	The incoming subset of one page of payment history.
//	@Tags			Payments
//	@Produce		json
//	@Param			identifier	path		string	true	"Worker id, phone or public key"
//	@Param			limit		query		int		false	"Page size, 1 to 200"
//	@Param			cursor		query		string	false	"Paging token of the last record seen"
//	@Success		200			{object}	domain.PaymentPage
//	@Failure		400			{object}	utils.Response	"Invalid identifier or limit"
//	@Router			/api/payments/{identifier}/incoming [get]
func (h *PaymentHandler) Incoming(w http.ResponseWriter, r *http.Request) {
	page, ok := h.history(w, r)
	if !ok {
		return
	}
	incoming := make([]domain.PaymentRecord, 0, len(page.Records))
	for _, rec := range page.Records {
		if rec.Direction == domain.Incoming {
			incoming = append(incoming, rec)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, domain.PaymentPage{Records: incoming, NextCursor: page.NextCursor})
}

// Stats godoc
//
//	@Summary		Payment statistics
//	@Description	Totals and counterparty counts over the most recent payments of an account.
//	@Tags			Payments
//	@Produce		json
//	@Param			identifier	path		string	true	"Worker id, phone or public key"
//	@Success		200			{object}	domain.PaymentStats
//	@Failure		400			{object}	utils.Response	"Invalid identifier"
//	@Failure		503			{object}	utils.Response	"Ledger unavailable"
//	@Router			/api/payments/{identifier}/stats [get]
func (h *PaymentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.paymentService.Stats(r.Context(), chi.URLParam(r, "identifier"))
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}
