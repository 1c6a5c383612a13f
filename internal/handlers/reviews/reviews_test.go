package reviews

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/internal/service/reviewservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ReviewHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestSubmit(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Accepted",
			body: `{"reviewer_id":"NW-E","reviewee_id":"NW-W","rating":5,"comment":"Always on time"}`,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), reviewservice.SubmitParams{
					ReviewerID: "NW-E", RevieweeID: "NW-W", Rating: 5, Comment: "Always on time",
				}).Return(&domain.Review{ReviewID: "RV-1", Rating: 5}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Rating out of range",
			body: `{"reviewer_id":"NW-E","reviewee_id":"NW-W","rating":6}`,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, domain.NewValidationError("rating", "must be between 1 and 5"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Relationship too young",
			body: `{"reviewer_id":"NW-E","reviewee_id":"NW-W","rating":4,"schedule_id":"SP-1"}`,
			prepareMock: func() {
				id := "SP-1"
				service.EXPECT().Submit(gomock.Any(), reviewservice.SubmitParams{
					ReviewerID: "NW-E", RevieweeID: "NW-W", Rating: 4, ScheduleID: &id,
				}).Return(nil, fmt.Errorf("%w: no qualifying relationship", domain.ErrNotEligible))
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Duplicate",
			body: `{"reviewer_id":"NW-E","reviewee_id":"NW-W","rating":4}`,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflict)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Missing reviewee",
			body:         `{"reviewer_id":"NW-E","rating":4}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Submit(w, httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestReads(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Eligible(gomock.Any(), "NW-E").Return([]domain.EligibleReviewee{{WorkerID: "NW-W", ScheduleID: "SP-1"}}, nil)
	w := httptest.NewRecorder()
	handler.Eligible(w, withParam(httptest.NewRequest(http.MethodGet, "/api/reviews/eligible/NW-E", nil), "id", "NW-E"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SP-1")

	service.EXPECT().ReviewsFor(gomock.Any(), "NW-W").Return(nil, nil)
	w = httptest.NewRecorder()
	handler.ReviewsFor(w, withParam(httptest.NewRequest(http.MethodGet, "/api/reviews/for/NW-W", nil), "id", "NW-W"))
	assert.JSONEq(t, `[]`, w.Body.String())

	service.EXPECT().ReviewsBy(gomock.Any(), "NW-E").Return([]domain.Review{{ReviewID: "RV-1"}}, nil)
	w = httptest.NewRecorder()
	handler.ReviewsBy(w, withParam(httptest.NewRequest(http.MethodGet, "/api/reviews/by/NW-E", nil), "id", "NW-E"))
	assert.Contains(t, w.Body.String(), "RV-1")

	service.EXPECT().Rating(gomock.Any(), "NW-W").Return(&domain.Rating{WorkerID: "NW-W", Average: 4.5, Count: 2}, nil)
	w = httptest.NewRecorder()
	handler.Rating(w, withParam(httptest.NewRequest(http.MethodGet, "/api/reviews/rating/NW-W", nil), "id", "NW-W"))
	assert.JSONEq(t, `{"worker_id":"NW-W","average":4.5,"count":2}`, w.Body.String())

	service.EXPECT().Certificates(gomock.Any(), "NW-W").Return([]domain.Certificate{{AssetCode: "RVW123456789", Claimed: true}}, nil)
	w = httptest.NewRecorder()
	handler.Certificates(w, withParam(httptest.NewRequest(http.MethodGet, "/api/reviews/certificates/NW-W", nil), "identifier", "NW-W"))
	assert.Contains(t, w.Body.String(), "RVW123456789")

	service.EXPECT().Certificates(gomock.Any(), "NW-X").Return(nil, domain.NewNotFoundError("worker", "NW-X"))
	w = httptest.NewRecorder()
	handler.Certificates(w, withParam(httptest.NewRequest(http.MethodGet, "/api/reviews/certificates/NW-X", nil), "identifier", "NW-X"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvite(t *testing.T) {
	handler, service := NewMock(t)
	expires := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)

	service.EXPECT().Invite(gomock.Any(), "SP-1", "NW-E").
		Return(&domain.Invitation{ScheduleID: "SP-1", ReviewerID: "NW-E", Token: "tok", Link: "https://paytrace.app/review?token=tok", ExpiresAt: expires}, nil)
	w := httptest.NewRecorder()
	handler.Invite(w, httptest.NewRequest(http.MethodPost, "/api/reviews/invite", bytes.NewBufferString(`{"schedule_id":"SP-1","reviewer_id":"NW-E"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	var inv domain.Invitation
	require.NoError(t, json.NewDecoder(w.Body).Decode(&inv))
	assert.Equal(t, "tok", inv.Token)

	service.EXPECT().Invite(gomock.Any(), "SP-1", "NW-X").Return(nil, fmt.Errorf("%w: not a party", domain.ErrNotEligible))
	w = httptest.NewRecorder()
	handler.Invite(w, httptest.NewRequest(http.MethodPost, "/api/reviews/invite", bytes.NewBufferString(`{"schedule_id":"SP-1","reviewer_id":"NW-X"}`)))
	assert.Equal(t, http.StatusForbidden, w.Code)

	service.EXPECT().Invite(gomock.Any(), "SP-1", "NW-E").Return(nil, fmt.Errorf("%w: review invitations", domain.ErrNotConfigured))
	w = httptest.NewRecorder()
	handler.Invite(w, httptest.NewRequest(http.MethodPost, "/api/reviews/invite", bytes.NewBufferString(`{"schedule_id":"SP-1","reviewer_id":"NW-E"}`)))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestVerifyInvite(t *testing.T) {
	handler, service := NewMock(t)

	w := httptest.NewRecorder()
	handler.VerifyInvite(w, httptest.NewRequest(http.MethodGet, "/api/reviews/invite/verify", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	service.EXPECT().VerifyInvite(gomock.Any(), "bad").Return(nil, domain.NewValidationError("token", "is invalid or expired"))
	w = httptest.NewRecorder()
	handler.VerifyInvite(w, httptest.NewRequest(http.MethodGet, "/api/reviews/invite/verify?token=bad", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired")

	service.EXPECT().VerifyInvite(gomock.Any(), "good").Return(&domain.Invitation{ScheduleID: "SP-1", ReviewerID: "NW-E"}, nil)
	w = httptest.NewRecorder()
	handler.VerifyInvite(w, httptest.NewRequest(http.MethodGet, "/api/reviews/invite/verify?token=good", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SP-1")
}
