package createRegistration

import (
	"bytes"
	"encoding/json"
	"errors"
	"eventPlanner/internal/http-server/handlers/action"
	"eventPlanner/internal/http-server/handlers/registration/createRegistration/mocks"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/models"
	"eventPlanner/internal/planner"
	"eventPlanner/internal/session"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateRegistrationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	ann := &models.RegistrationFields{Name: "Ann", Email: "ann@x.io", Phone: "555-0100"}

	var badEmail validator.ValidationErrors
	require.True(t, errors.As(
		validator.New().Struct(models.RegistrationFields{Name: "Ann", Email: "nope", Phone: "1"}),
		&badEmail,
	))

	testCases := []struct {
		name           string
		requestBody    string
		fields         *models.RegistrationFields
		result         session.View
		err            error
		skipMock       bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			requestBody:    `{"name":"Ann","email":"ann@x.io","phone":"555-0100"}`,
			fields:         ann,
			result:         session.ViewSchedule,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","view":"schedule"}`,
		},
		{
			name:           "Empty body submits the draft",
			result:         session.ViewSchedule,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","view":"schedule"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{"name":`,
			skipMock:       true,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Invalid email",
			requestBody:    `{"email":"nope"}`,
			fields:         &models.RegistrationFields{Email: "nope"},
			result:         session.ViewRegister,
			err:            &session.ValidationError{Form: session.FormRegistration, Errors: badEmail},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Email is not a valid email"}`,
		},
		{
			name:           "No event selected",
			result:         session.ViewRegister,
			err:            session.ErrNoEventSelected,
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"no event selected"}`,
		},
		{
			name:           "Event removed meanwhile",
			result:         session.ViewRegister,
			err:            planner.ErrEventNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:           "Not on registration form",
			result:         session.ViewEvents,
			err:            session.ErrInvalidTransition,
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"action is not available on the current screen"}`,
		},
		{
			name:           "Internal server error",
			result:         session.ViewRegister,
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to register"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			submitter := mocks.NewRegistrationSubmitter(t)
			if !tc.skipMock {
				submitter.On("SubmitRegistration", mock.Anything, tc.fields).Return(tc.result, tc.err)
			}

			handler := New(logger, submitter)

			req := httptest.NewRequest(http.MethodPost, "/registrations", bytes.NewBufferString(tc.requestBody))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestSuccessResponseFormat(t *testing.T) {
	t.Parallel()

	submitter := mocks.NewRegistrationSubmitter(t)
	submitter.On("SubmitRegistration", mock.Anything, mock.AnythingOfType("*models.RegistrationFields")).
		Return(session.ViewSchedule, nil)

	handler := New(slogdiscard.NewDiscardLogger(), submitter)

	req := httptest.NewRequest(http.MethodPost, "/registrations",
		bytes.NewBufferString(`{"name":"Bob","email":"bob@x.io","phone":"2"}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp action.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, "", resp.Error)
	assert.Equal(t, session.ViewSchedule, resp.View)
}
