package portal_test

import (
	"context"
	"testing"

	"github.com/gkrp/dataportal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := portalsdk.NewSDKClient(baseURL)

	t.Run("liveness reports ok", func(t *testing.T) {
		health, err := client.GetLiveness(ctx)
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.NotEmpty(t, health.Version)
	})

	t.Run("readiness includes a database check", func(t *testing.T) {
		health, err := client.GetReadiness(ctx)
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Database)
	})
}
