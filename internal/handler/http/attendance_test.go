package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCheckinService struct {
	checkInResult    attendance.CheckinRecordResponse
	checkInErr       error
	transitionResult attendance.CheckinRecordResponse
	transitionErr    error
	transitionReq    attendance.TransitionRequest
	historyResult    attendance.ListCheckinResponse
}

func (s *stubCheckinService) CheckIn(ctx context.Context) (attendance.CheckinRecordResponse, error) {
	return s.checkInResult, s.checkInErr
}

func (s *stubCheckinService) Transition(ctx context.Context, req attendance.TransitionRequest) (attendance.CheckinRecordResponse, error) {
	s.transitionReq = req
	return s.transitionResult, s.transitionErr
}

func (s *stubCheckinService) GetToday(ctx context.Context) (attendance.CheckinRecordResponse, error) {
	return s.checkInResult, s.checkInErr
}

func (s *stubCheckinService) GetMyHistory(ctx context.Context, filter attendance.MyHistoryFilter) (attendance.ListCheckinResponse, error) {
	return s.historyResult, nil
}

func (s *stubCheckinService) ListHistory(ctx context.Context, filter attendance.HistoryFilter) (attendance.ListCheckinResponse, error) {
	return s.historyResult, nil
}

type envelope struct {
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body"`
}

func newAttendanceRouter(svc attendance.CheckinService) *chi.Mux {
	handler := NewAttendanceHandler(svc)
	r := chi.NewRouter()
	r.Post("/attendances/check-in", handler.CheckIn)
	r.Put("/attendances/{id}", handler.Transition)
	r.Get("/attendances/my", handler.GetMyHistory)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestAttendanceHandler_CheckIn_Success(t *testing.T) {
	svc := &stubCheckinService{
		checkInResult: attendance.CheckinRecordResponse{
			ID:          "rec-1",
			EmployeeID:  "emp-1",
			CheckinDate: "2026-03-09",
			Status:      "checkin",
			DailyHours:  "00:00",
		},
	}
	router := newAttendanceRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/attendances/check-in", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Check-in successful", env.Message)

	var record attendance.CheckinRecordResponse
	require.NoError(t, json.Unmarshal(env.Body, &record))
	assert.Equal(t, "rec-1", record.ID)
	assert.Equal(t, "checkin", record.Status)
}

func TestAttendanceHandler_CheckIn_DuplicateDay(t *testing.T) {
	svc := &stubCheckinService{checkInErr: attendance.ErrAlreadyCheckedIn}
	router := newAttendanceRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/attendances/check-in", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "You have already checked in today", env.Message)
	assert.Empty(t, env.Body)
}

func TestAttendanceHandler_Transition_PassesURLParamID(t *testing.T) {
	svc := &stubCheckinService{
		transitionResult: attendance.CheckinRecordResponse{ID: "rec-9", Status: "break", OnBreak: true},
	}
	router := newAttendanceRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/attendances/rec-9", strings.NewReader(`{"type":"break"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rec-9", svc.transitionReq.ID)
	assert.Equal(t, "break", svc.transitionReq.Type)

	env := decodeEnvelope(t, rec)
	assert.Empty(t, env.Message)

	var record attendance.CheckinRecordResponse
	require.NoError(t, json.Unmarshal(env.Body, &record))
	assert.True(t, record.OnBreak)
}

func TestAttendanceHandler_Transition_InvalidBody(t *testing.T) {
	svc := &stubCheckinService{}
	router := newAttendanceRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/attendances/rec-9", strings.NewReader(`{"type":`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Invalid request format", env.Message)
}

func TestAttendanceHandler_Transition_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"day closed", attendance.ErrDayAlreadyClosed, http.StatusConflict, "You have already checked out today"},
		{"not on break", attendance.ErrNotOnBreak, http.StatusConflict, "You are not on a break"},
		{"lost race", attendance.ErrTransitionConflict, http.StatusConflict, "Attendance record was modified by another request"},
		{"not found", attendance.ErrRecordNotFound, http.StatusNotFound, "Attendance record not found"},
		{"unknown type", attendance.ErrUnknownTransition, http.StatusBadRequest, "Unknown transition type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newAttendanceRouter(&stubCheckinService{transitionErr: tc.err})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/attendances/rec-1", strings.NewReader(`{"type":"checkout"}`))
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantBody, decodeEnvelope(t, rec).Message)
		})
	}
}

func TestAttendanceHandler_GetMyHistory_Empty(t *testing.T) {
	svc := &stubCheckinService{
		historyResult: attendance.ListCheckinResponse{
			Page:    1,
			Limit:   20,
			Records: []attendance.CheckinRecordResponse{},
		},
	}
	router := newAttendanceRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/attendances/my", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var list attendance.ListCheckinResponse
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Body, &list))
	assert.Equal(t, int64(0), list.TotalCount)
	assert.NotNil(t, list.Records)
}
