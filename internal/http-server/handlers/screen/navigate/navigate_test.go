package navigate

import (
	"bytes"
	"encoding/json"
	"eventPlanner/internal/http-server/handlers/screen/navigate/mocks"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/session"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigateHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		path           string
		mockSetup      func(mock *mocks.Navigator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "To events",
			path: "/navigate/events",
			mockSetup: func(mock *mocks.Navigator) {
				mock.On("Navigate", session.ViewEvents).Return(session.ViewEvents, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","view":"events"}`,
		},
		{
			name: "To create from events",
			path: "/navigate/create",
			mockSetup: func(mock *mocks.Navigator) {
				mock.On("Navigate", session.ViewCreate).Return(session.ViewCreate, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","view":"create"}`,
		},
		{
			name: "Transition not allowed",
			path: "/navigate/register",
			mockSetup: func(mock *mocks.Navigator) {
				mock.On("Navigate", session.ViewRegister).
					Return(session.ViewHome, fmt.Errorf("session.Controller.Navigate: %w", session.ErrInvalidTransition))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"action is not available on the current screen"}`,
		},
		{
			name:           "Unknown view",
			path:           "/navigate/settings",
			mockSetup:      func(mock *mocks.Navigator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"unknown view"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			nav := mocks.NewNavigator(t)
			tc.mockSetup(nav)

			router := chi.NewRouter()
			router.Post("/navigate/{view}", New(logger, nav))

			req := httptest.NewRequest(http.MethodPost, tc.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestNavigateLogsRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	nav := mocks.NewNavigator(t)
	nav.On("Navigate", session.ViewSchedule).Return(session.ViewSchedule, nil)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Post("/navigate/{view}", New(logger, nav))

	req := httptest.NewRequest(http.MethodPost, "/navigate/schedule", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-7")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.Split(buf.Bytes(), []byte("\n"))[0], &entry))

	assert.Equal(t, "navigated", entry["msg"])
	assert.Equal(t, "req-7", entry["request_id"])
}
