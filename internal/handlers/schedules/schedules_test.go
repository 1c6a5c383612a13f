package schedules

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/internal/service/scheduleservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ScheduleHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	handler.now = func() time.Time { return time.Date(2025, 2, 28, 15, 30, 0, 0, time.UTC) }
	return handler, service
}

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreate(t *testing.T) {
	handler, service := NewMock(t)
	start := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Monthly schedule with start date",
			body: `{"employer_id":"NW-E","worker_id":"NW-W","amount":"100","frequency":"monthly","start_date":"2025-01-31","memo":"Salary"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), scheduleservice.CreateParams{
					EmployerID: "NW-E",
					WorkerID:   "NW-W",
					Amount:     "100",
					Frequency:  domain.Monthly,
					StartDate:  &start,
					Memo:       "Salary",
				}).Return(&domain.Schedule{ScheduleID: "SP-1", NextPaymentDate: start, Status: domain.ScheduleActive}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Unknown frequency",
			body:          `{"employer_id":"NW-E","worker_id":"NW-W","amount":"100","frequency":"daily"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "frequency: must be one of",
		},
		{
			name:          "Malformed start date",
			body:          `{"employer_id":"NW-E","worker_id":"NW-W","amount":"100","frequency":"weekly","start_date":"31/01/2025"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "start_date",
		},
		{
			name: "Unknown worker",
			body: `{"employer_id":"NW-E","worker_id":"NW-X","amount":"100","frequency":"weekly"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.NewNotFoundError("worker", "NW-X"))
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "NW-X",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/schedules", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body domain.Schedule
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "SP-1", body.ScheduleID)
				assert.True(t, start.Equal(body.NextPaymentDate))
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Pause",
			body: `{"status":"paused"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), "SP-1", domain.SchedulePaused).
					Return(&domain.Schedule{ScheduleID: "SP-1", Status: domain.SchedulePaused}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid status",
			body: `{"status":"done"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), "SP-1", domain.ScheduleStatus("done")).
					Return(nil, domain.NewValidationError("status", "must be active, paused or cancelled"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Already cancelled",
			body: `{"status":"active"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), "SP-1", domain.ScheduleActive).Return(nil, scheduleservice.ErrCancelled)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Missing status",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withParam(httptest.NewRequest(http.MethodPatch, "/api/schedules/SP-1", bytes.NewBufferString(tt.body)), "id", "SP-1")
			w := httptest.NewRecorder()

			handler.UpdateStatus(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetAndLists(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Get(gomock.Any(), "SP-9").Return(nil, domain.NewNotFoundError("schedule", "SP-9"))
	w := httptest.NewRecorder()
	handler.Get(w, withParam(httptest.NewRequest(http.MethodGet, "/api/schedules/SP-9", nil), "id", "SP-9"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	service.EXPECT().ListByEmployer(gomock.Any(), "NW-E").Return(nil, nil)
	w = httptest.NewRecorder()
	handler.ListByEmployer(w, withParam(httptest.NewRequest(http.MethodGet, "/api/schedules/employer/NW-E", nil), "id", "NW-E"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	service.EXPECT().ListForWorker(gomock.Any(), "NW-W").Return([]domain.Schedule{{ScheduleID: "SP-1"}, {ScheduleID: "SP-2"}}, nil)
	w = httptest.NewRecorder()
	handler.ListForWorker(w, withParam(httptest.NewRequest(http.MethodGet, "/api/schedules/worker/NW-W", nil), "id", "NW-W"))
	var list []domain.Schedule
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	assert.Len(t, list, 2)
}

func TestListDue(t *testing.T) {
	handler, service := NewMock(t)
	today := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)

	service.EXPECT().ListDue(gomock.Any(), today).Return([]domain.Schedule{{ScheduleID: "SP-1"}}, nil)
	w := httptest.NewRecorder()
	handler.ListDue(w, httptest.NewRequest(http.MethodGet, "/api/schedules/due", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ListDue(w, httptest.NewRequest(http.MethodGet, "/api/schedules/due?as_of=tomorrow", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteDue(t *testing.T) {
	handler, service := NewMock(t)
	next := time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC)

	t.Run("defaults to today", func(t *testing.T) {
		today := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
		report := &domain.RunReport{AsOf: today}
		report.Add(domain.RunDetail{ScheduleID: "SP-1", Status: domain.RunExecuted, TxHash: "h1", NextPaymentDate: &next})
		service.EXPECT().RunDue(gomock.Any(), today).Return(report, nil)

		w := httptest.NewRecorder()
		handler.ExecuteDue(w, httptest.NewRequest(http.MethodPost, "/api/schedules/execute-due", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body domain.RunReport
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, 1, body.Executed)
		require.Len(t, body.Details, 1)
		assert.Equal(t, "h1", body.Details[0].TxHash)
	})

	t.Run("explicit date", func(t *testing.T) {
		asOf := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
		service.EXPECT().RunDue(gomock.Any(), asOf).Return(&domain.RunReport{AsOf: asOf}, nil)

		w := httptest.NewRecorder()
		handler.ExecuteDue(w, httptest.NewRequest(http.MethodPost, "/api/schedules/execute-due", bytes.NewBufferString(`{"as_of":"2025-01-31"}`)))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ExecuteDue(w, httptest.NewRequest(http.MethodPost, "/api/schedules/execute-due", bytes.NewBufferString(`{"as_of":"Jan 31"}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReconcile(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Held payment settled",
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), "SP-1").Return(&domain.Schedule{ScheduleID: "SP-1", Status: domain.ScheduleActive}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Nothing held",
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), "SP-1").Return(&domain.Schedule{ScheduleID: "SP-1"}, scheduleservice.ErrNotHeld)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Unknown schedule",
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), "SP-1").Return(nil, domain.NewNotFoundError("schedule", "SP-1"))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Reconcile(w, withParam(httptest.NewRequest(http.MethodPost, "/api/schedules/SP-1/reconcile", nil), "id", "SP-1"))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
