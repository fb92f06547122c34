// internal/app/features/authproxy/client.go
package authproxy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// clientPrincipal is the platform auth proxy's identity payload.
type clientPrincipal struct {
	UserID      string `json:"userId"`
	UserDetails string `json:"userDetails"`
}

type principalEnvelope struct {
	ClientPrincipal *clientPrincipal `json:"clientPrincipal"`
}

// fetchPrincipal queries the platform's authentication-status endpoint.
// A nil principal with nil error means the proxy reports no signed-in user.
func fetchPrincipal(ctx context.Context, client *http.Client, statusURL string) (*clientPrincipal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth status endpoint returned %d", resp.StatusCode)
	}

	var env principalEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}
	return env.ClientPrincipal, nil
}
