package getAllEvents

import (
	"encoding/json"
	"eventPlanner/internal/http-server/handlers/event/getAllEvents/mocks"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/session"
	"eventPlanner/internal/view"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	createAction := view.Action{Label: "Create Event", Target: session.ViewCreate}

	testCases := []struct {
		name      string
		list      view.EventsView
		checkBody func(t *testing.T, resp EventsResponse)
	}{
		{
			name: "Success with events",
			list: view.EventsView{
				CreateAction: createAction,
				Cards: []view.EventCard{
					{ID: "ev-1", Title: "Launch", Capacity: 2, Registered: 1, RegisterEnabled: true, ActionLabel: "Register"},
					{ID: "ev-2", Title: "Retro", Capacity: 1, Registered: 1, RegisterEnabled: false, ActionLabel: "Full"},
				},
			},
			checkBody: func(t *testing.T, resp EventsResponse) {
				require.Len(t, resp.Cards, 2)
				assert.Equal(t, "ev-1", resp.Cards[0].ID)
				assert.True(t, resp.Cards[0].RegisterEnabled)
				assert.Equal(t, "Full", resp.Cards[1].ActionLabel)
				assert.False(t, resp.Cards[1].RegisterEnabled)
				assert.Empty(t, resp.EmptyMessage)
			},
		},
		{
			name: "Success with empty events",
			list: view.EventsView{
				CreateAction: createAction,
				EmptyMessage: "No events created yet. Be the first to create one!",
			},
			checkBody: func(t *testing.T, resp EventsResponse) {
				assert.Empty(t, resp.Cards)
				assert.Equal(t, "No events created yet. Be the first to create one!", resp.EmptyMessage)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewEventsGetter(t)
			getter.On("Events").Return(tc.list)

			handler := New(logger, getter)

			req := httptest.NewRequest(http.MethodGet, "/events", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)

			var resp EventsResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			assert.Equal(t, "OK", resp.Status)
			assert.Equal(t, "", resp.Error)
			assert.Equal(t, createAction, resp.CreateAction)
			tc.checkBody(t, resp)
		})
	}
}
