package portal_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gkrp/dataportal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

// This suite runs against a container WITHOUT the relaxed rate limit
// overrides, so the strict login budget (5 per minute) applies.
func TestLoginRateLimit(t *testing.T) {
	baseURL, cleanup := setupPortalContainerWithDefaultRateLimits(t)
	defer cleanup()

	ctx := context.Background()
	client := portalsdk.NewSDKClient(baseURL)

	// Burn through the strict budget with bad credentials, then confirm
	// the limiter kicks in. The budget covers both the failed attempts
	// and the eventual 429, so 10 tries is comfortably past it.
	var limited *portalsdk.APIError
	for i := 0; i < 10; i++ {
		_, err := client.Login(ctx, "nobody", "wrong-password")
		require.Error(t, err)

		var apiErr *portalsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		if apiErr.StatusCode == http.StatusTooManyRequests {
			limited = apiErr
			break
		}
		require.Equal(t, portalsdk.ErrorCodeInvalidCredentials, apiErr.Code)
	}

	require.NotNil(t, limited, "login was never rate limited")
	require.Equal(t, "rate_limit_exceeded", limited.Code)
}
