package kafka

import (
	"context"
	"encoding/json"
	"eventPlanner/internal/config"
	"eventPlanner/internal/models"
	"eventPlanner/internal/planner"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordForRegistration(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	reg := models.Registration{ID: "r1", EventID: "e1", EventTitle: "Launch", Name: "Ada", RegisteredAt: at}
	change := planner.Change{
		Kind:         planner.ChangeRegistrationCreated,
		At:           at,
		Event:        models.Event{ID: "e1", Title: "Launch", RegisteredUsers: []models.Registration{reg}},
		Registration: &reg,
	}

	record, err := newRecord("planner.changes", change)
	require.NoError(t, err)

	assert.Equal(t, "planner.changes", record.Topic)
	assert.Equal(t, "r1", string(record.Key))
	require.Len(t, record.Headers, 1)
	assert.Equal(t, "kind", record.Headers[0].Key)
	assert.Equal(t, "registration.created", string(record.Headers[0].Value))

	var decoded planner.Change
	require.NoError(t, json.Unmarshal(record.Value, &decoded))
	assert.Equal(t, planner.ChangeRegistrationCreated, decoded.Kind)
	require.NotNil(t, decoded.Registration)
	assert.Equal(t, "Ada", decoded.Registration.Name)
	assert.Equal(t, "e1", decoded.Event.ID)
}

func TestNewRecordForEvent(t *testing.T) {
	t.Parallel()

	change := planner.Change{
		Kind:  planner.ChangeEventCreated,
		Event: models.Event{ID: "e7", Title: "Meetup", RegisteredUsers: []models.Registration{}},
	}

	record, err := newRecord("topic", change)
	require.NoError(t, err)

	assert.Equal(t, "e7", string(record.Key))
	assert.NotContains(t, string(record.Value), `"registration"`)
}

func unreachable(timeout time.Duration) *config.Kafka {
	return &config.Kafka{
		Brokers:  []string{"127.0.0.1:1"},
		Topic:    "planner.changes",
		ClientID: "event-planner-test",
		Timeout:  timeout,
	}
}

func TestNotifyGivesUpOnUnreachableBroker(t *testing.T) {
	t.Parallel()

	p, err := newPublisher(unreachable(500 * time.Millisecond))
	require.NoError(t, err)
	defer p.Close()

	change := planner.Change{
		Kind:  planner.ChangeEventCreated,
		Event: models.Event{ID: "e1", Title: "Launch", RegisteredUsers: []models.Registration{}},
	}

	done := make(chan error, 1)
	go func() {
		done <- p.Notify(context.Background(), change)
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "notifier.kafka.Notify")
	case <-time.After(10 * time.Second):
		t.Fatal("Notify did not return within the produce timeout")
	}
}

func TestNewPublisherDefaultTimeout(t *testing.T) {
	t.Parallel()

	p, err := newPublisher(unreachable(0))
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, defaultTimeout, p.timeout)
	assert.Equal(t, "planner.changes", p.topic)
}

func TestNewFailsOnUnreachableBroker(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := New(ctx, unreachable(time.Second))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping Kafka")
}
