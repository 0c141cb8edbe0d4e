package getSchedule

import (
	"encoding/json"
	"eventPlanner/internal/http-server/handlers/screen/getSchedule/mocks"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/view"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetScheduleHandler(t *testing.T) {
	t.Parallel()

	schedule := view.ScheduleView{
		Entries: []view.ScheduleEntry{
			{
				RegistrationID: "reg-1",
				EventTitle:     "Launch",
				Date:           view.NotAvailable,
				Time:           view.NotAvailable,
				Location:       view.NotAvailable,
				RegisteredOn:   "10/16/2026",
				RegisteredAgo:  "3 days ago",
			},
		},
	}

	getter := mocks.NewScheduleGetter(t)
	getter.On("Schedule").Return(schedule)

	handler := New(slogdiscard.NewDiscardLogger(), getter)

	req := httptest.NewRequest(http.MethodGet, "/schedule", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp ScheduleResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "OK", resp.Status)
	require.Len(t, resp.Schedule.Entries, 1)
	assert.Equal(t, schedule.Entries[0], resp.Schedule.Entries[0])
	assert.Nil(t, resp.Schedule.BrowseAction)
}
