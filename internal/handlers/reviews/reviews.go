package reviews

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/internal/dto"
	"github.com/GlebRadaev/paytrace/internal/handlers/apierr"
	"github.com/GlebRadaev/paytrace/internal/service/reviewservice"
	"github.com/GlebRadaev/paytrace/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Submit(ctx context.Context, p reviewservice.SubmitParams) (*domain.Review, error)
	Eligible(ctx context.Context, userID string) ([]domain.EligibleReviewee, error)
	ReviewsFor(ctx context.Context, userID string) ([]domain.Review, error)
	ReviewsBy(ctx context.Context, userID string) ([]domain.Review, error)
	Rating(ctx context.Context, userID string) (*domain.Rating, error)
	Certificates(ctx context.Context, identifier string) ([]domain.Certificate, error)
	Invite(ctx context.Context, scheduleID, reviewerID string) (*domain.Invitation, error)
	VerifyInvite(ctx context.Context, token string) (*domain.Invitation, error)
}

type ReviewHandler struct {
	reviewService Service
}

func New(reviewService Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

func respondList[T any](w http.ResponseWriter, list []T, err error) {
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	if list == nil {
		list = []T{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// Submit godoc
//
//	@Summary		Submit a review
//	@Description	Review the other party of a long-running schedule. A certificate is minted in the background.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitReviewRequestDTO	true	"Review body"
//	@Success		201		{object}	domain.Review
//	@Failure		400		{object}	utils.Response	"Invalid rating or self-review"
//	@Failure		403		{object}	utils.Response	"No qualifying relationship"
//	@Failure		404		{object}	utils.Response	"Reviewer or reviewee not found"
//	@Failure		409		{object}	utils.Response	"Already reviewed"
//	@Router			/api/reviews [post]
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitReviewRequestDTO
	if err := dto.Decode(r, &req); err != nil {
		apierr.Respond(w, err, nil)
		return
	}

	p := reviewservice.SubmitParams{
		ReviewerID: req.ReviewerID,
		RevieweeID: req.RevieweeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if req.ScheduleID != "" {
		p.ScheduleID = &req.ScheduleID
	}
	review, err := h.reviewService.Submit(r.Context(), p)
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, review)
}

// Eligible godoc
//
//	@Summary		Who a user may review
//	@Tags			Reviews
//	@Produce		json
//	@Param			id	path	string	true	"Worker id"
//	@Success		200	{array}	domain.EligibleReviewee
//	@Failure		404	{object}	utils.Response	"Worker not found"
//	@Router			/api/reviews/eligible/{id} [get]
func (h *ReviewHandler) Eligible(w http.ResponseWriter, r *http.Request) {
	list, err := h.reviewService.Eligible(r.Context(), chi.URLParam(r, "id"))
	respondList(w, list, err)
}

// ReviewsFor godoc
//
//	@Summary		Reviews received by a user
//	@Tags			Reviews
//	@Produce		json
//	@Param			id	path	string	true	"Worker id"
//	@Success		200	{array}	domain.Review
//	@Router			/api/reviews/for/{id} [get]
func (h *ReviewHandler) ReviewsFor(w http.ResponseWriter, r *http.Request) {
	list, err := h.reviewService.ReviewsFor(r.Context(), chi.URLParam(r, "id"))
	respondList(w, list, err)
}

// ReviewsBy godoc
//
//	@Summary		Reviews written by a user
//	@Tags			Reviews
//	@Produce		json
//	@Param			id	path	string	true	"Worker id"
//	@Success		200	{array}	domain.Review
//	@Router			/api/reviews/by/{id} [get]
func (h *ReviewHandler) ReviewsBy(w http.ResponseWriter, r *http.Request) {
	list, err := h.reviewService.ReviewsBy(r.Context(), chi.URLParam(r, "id"))
	respondList(w, list, err)
}

// Rating godoc
//
//	@Summary		Average rating of a user
//	@Tags			Reviews
//	@Produce		json
//	@Param			id	path		string	true	"Worker id"
//	@Success		200	{object}	domain.Rating
//	@Router			/api/reviews/rating/{id} [get]
func (h *ReviewHandler) Rating(w http.ResponseWriter, r *http.Request) {
	rating, err := h.reviewService.Rating(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rating)
}

// Certificates godoc
//
//	@Summary		Review certificates held on the ledger
//	@Description	Claimable and claimed review certificates addressed to a worker id or public key.
//	@Tags			Reviews
//	@Produce		json
//	@Param			identifier	path	string	true	"Worker id or public key"
//	@Success		200			{array}	domain.Certificate
//	@Failure		404			{object}	utils.Response	"Worker not found"
//	@Failure		503			{object}	utils.Response	"Ledger unavailable"
//	@Router			/api/reviews/certificates/{identifier} [get]
func (h *ReviewHandler) Certificates(w http.ResponseWriter, r *http.Request) {
	list, err := h.reviewService.Certificates(r.Context(), chi.URLParam(r, "identifier"))
	respondList(w, list, err)
}

// Invite godoc
//
//	@Summary		Invite a review
//	@Description	Text one party of a schedule a signed link to review the other.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.InviteRequestDTO	true	"Invitation body"
//	@Success		200		{object}	domain.Invitation
//	@Failure		403		{object}	utils.Response	"Reviewer is not a party of the schedule"
//	@Failure		404		{object}	utils.Response	"Schedule not found"
//	@Failure		503		{object}	utils.Response	"Invitations not configured"
//	@Security		ApiKeyAuth
//	@Router			/api/reviews/invite [post]
func (h *ReviewHandler) Invite(w http.ResponseWriter, r *http.Request) {
	var req dto.InviteRequestDTO
	if err := dto.Decode(r, &req); err != nil {
		apierr.Respond(w, err, nil)
		return
	}

	inv, err := h.reviewService.Invite(r.Context(), req.ScheduleID, req.ReviewerID)
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, inv)
}

// VerifyInvite godoc
//
//	@Summary		Verify an invitation link
//	@Tags			Reviews
//	@Produce		json
//	@Param			token	query		string	true	"Invitation token"
//	@Success		200		{object}	domain.Invitation
//	@Failure		400		{object}	utils.Response	"Invalid or expired token"
//	@Router			/api/reviews/invite/verify [get]
func (h *ReviewHandler) VerifyInvite(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "token: is required")
		return
	}
	inv, err := h.reviewService.VerifyInvite(r.Context(), token)
	if err != nil {
		apierr.Respond(w, err, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, inv)
}
