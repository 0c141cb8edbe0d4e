package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventIsFull(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		capacity   int
		registered int
		full       bool
	}{
		{name: "Empty", capacity: 2, registered: 0, full: false},
		{name: "One seat left", capacity: 2, registered: 1, full: false},
		{name: "At capacity", capacity: 2, registered: 2, full: true},
		{name: "Over capacity", capacity: 1, registered: 3, full: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			event := Event{Capacity: tc.capacity, RegisteredUsers: make([]Registration, tc.registered)}

			assert.Equal(t, tc.full, event.IsFull())
			assert.Equal(t, tc.registered, event.RegisteredCount())
		})
	}
}

func TestEventWithRegistrationCopies(t *testing.T) {
	t.Parallel()

	original := Event{
		ID:              "e1",
		Capacity:        3,
		RegisteredUsers: make([]Registration, 1, 4),
	}

	updated := original.WithRegistration(Registration{ID: "r1", EventID: "e1"})

	require.Len(t, updated.RegisteredUsers, 2)
	assert.Equal(t, "r1", updated.RegisteredUsers[1].ID)
	assert.Len(t, original.RegisteredUsers, 1)

	// Appending to the original backing array must not leak into the copy.
	_ = append(original.RegisteredUsers, Registration{ID: "other"})
	assert.Equal(t, "r1", updated.RegisteredUsers[1].ID)
}

func TestEventDay(t *testing.T) {
	t.Parallel()

	day, err := Event{ID: "e1", Date: "2026-10-20"}.Day()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), day)

	_, err = Event{ID: "e2", Date: "20/10/2026"}.Day()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	for _, c := range Categories {
		parsed, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
		assert.NotEmpty(t, c.Label())
	}

	_, err := ParseCategory("party")
	require.Error(t, err)

	assert.Equal(t, CategoryConference, NewEventFields().Category)
}
