package accounts

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/internal/dto"
	"github.com/GlebRadaev/paytrace/internal/handlers/apierr"
	"github.com/GlebRadaev/paytrace/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	CreateOrGet(ctx context.Context, phone, name string, role domain.Role) (*domain.Worker, bool, error)
	Resolve(ctx context.Context, identifier string) (string, *domain.Worker, error)
}

type AccountHandler struct {
	accountService Service
	platformKey    string
}

func New(accountService Service, platformKey string) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		platformKey:    platformKey,
	}
}

func toDTO(key string, w *domain.Worker) dto.AccountResponseDTO {
	if w == nil {
		return dto.AccountResponseDTO{PublicKey: key}
	}
	return dto.AccountResponseDTO{
		WorkerID:  w.WorkerID,
		Phone:     w.Phone,
		Name:      w.Name,
		Role:      string(w.Role),
		PublicKey: w.PublicKey,
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
	}
}

// Create godoc
//
//	@Summary		Register an account
//	@Description	Create a custodial ledger account for a phone number, or return the existing one.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAccountRequestDTO	true	"Account request body"
//	@Success		201		{object}	dto.AccountResponseDTO		"Account created"
//	@Success		200		{object}	dto.AccountResponseDTO		"Account already registered"
//	@Failure		400		{object}	utils.Response				"Invalid phone or role"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/accounts [post]
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequestDTO
	if err := dto.Decode(r, &req); err != nil {
		apierr.Respond(w, err, nil)
		return
	}

	worker, created, err := h.accountService.CreateOrGet(r.Context(), req.Phone, req.Name, domain.Role(req.Role))
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	resp := toDTO(worker.PublicKey, worker)
	resp.Created = created
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	utils.RespondWithJSON(w, status, resp)
}

// Profile godoc
//
//	@Summary		Look up an account
//	@Description	Resolve a worker id, phone number or ledger public key to an account.
//	@Tags			Accounts
//	@Produce		json
//	@Param			identifier	path		string	true	"Worker id, phone or public key"
//	@Success		200			{object}	dto.AccountResponseDTO
//	@Failure		400			{object}	utils.Response	"Unrecognized identifier"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Router			/api/accounts/{identifier} [get]
func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	key, worker, err := h.accountService.Resolve(r.Context(), chi.URLParam(r, "identifier"))
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(key, worker))
}

// PlatformKey godoc
//
//	@Summary		Platform public key
//	@Description	Public key of the platform account that receives off-ramp burns and pays on-ramp credits.
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	dto.PlatformKeyResponseDTO
//	@Failure		503	{object}	utils.Response	"Platform account not configured"
//	@Router			/api/platform-key [get]
func (h *AccountHandler) PlatformKey(w http.ResponseWriter, _ *http.Request) {
	if h.platformKey == "" {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "platform account not configured")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PlatformKeyResponseDTO{PlatformPublicKey: h.platformKey})
}
