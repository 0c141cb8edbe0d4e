package action

import (
	"bytes"
	"errors"
	"eventPlanner/internal/models"
	"eventPlanner/internal/planner"
	"eventPlanner/internal/session"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFail(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	require.True(t, errors.As(validator.New().Struct(models.RegistrationFields{}), &errs))

	testCases := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"Validation", &session.ValidationError{Form: session.FormRegistration, Errors: errs}, http.StatusBadRequest},
		{"Wrapped validation", fmt.Errorf("op: %w", &session.ValidationError{Errors: errs}), http.StatusBadRequest},
		{"Not found", fmt.Errorf("op: %w", planner.ErrEventNotFound), http.StatusNotFound},
		{"Full", session.ErrEventFull, http.StatusConflict},
		{"No selection", session.ErrNoEventSelected, http.StatusConflict},
		{"Transition", session.ErrInvalidTransition, http.StatusConflict},
		{"Unknown form", session.ErrUnknownForm, http.StatusBadRequest},
		{"Unknown field", session.ErrUnknownField, http.StatusBadRequest},
		{"Invalid value", session.ErrInvalidValue, http.StatusBadRequest},
		{"Other", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			rr := httptest.NewRecorder()

			Fail(rr, req, tc.err, "fallback")

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), `"status":"Error"`)
		})
	}
}

func TestFailHidesInternalErrors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()

	Fail(rr, req, errors.New("disk on fire"), "failed to do it")

	assert.JSONEq(t, `{"status":"Error","error":"failed to do it"}`, rr.Body.String())
}

func TestDecodeOptional(t *testing.T) {
	t.Parallel()

	var fields models.RegistrationFields

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"Ann"}`))
	ok, err := DecodeOptional(req, &fields)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Ann", fields.Name)

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	ok, err = DecodeOptional(req, &fields)
	require.NoError(t, err)
	assert.False(t, ok)

	req = &http.Request{Method: http.MethodPost}
	ok, err = DecodeOptional(req, &fields)
	require.NoError(t, err)
	assert.False(t, ok)

	req = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":`))
	_, err = DecodeOptional(req, &fields)
	assert.Error(t, err)
}

func TestOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()

	OK(rr, req, session.ViewSchedule)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"OK","view":"schedule"}`, rr.Body.String())
}
