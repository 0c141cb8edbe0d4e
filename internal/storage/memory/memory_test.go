package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	_, ok, err := s.Get(ctx, "events")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "events", "[]"))
	require.NoError(t, s.Set(ctx, "events", `[{"id":"1"}]`))

	value, ok, err := s.Get(ctx, "events")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, value)

	require.NoError(t, s.Delete(ctx, "events"))

	_, ok, err = s.Get(ctx, "events")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Close())
}
