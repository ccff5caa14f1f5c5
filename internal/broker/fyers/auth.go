package fyers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
)

// AuthURL builds the OAuth authorization URL for the interactive login
// flow.
func AuthURL(baseURL, clientID, redirectURI, state string) string {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	q := url.Values{}
	q.Set("client_id", clientID)
	q.Set("redirect_uri", redirectURI)
	q.Set("response_type", "code")
	q.Set("state", state)
	return baseURL + "/api/v3/generate-authcode?" + q.Encode()
}

// AppIDHash is the SHA-256 of "clientID:clientSecret" expected by the
// token exchange.
func AppIDHash(clientID, clientSecret string) string {
	sum := sha256.Sum256([]byte(clientID + ":" + clientSecret))
	return hex.EncodeToString(sum[:])
}

// ValidateAuthCode exchanges an authorization code for an access token.
func (c *Client) ValidateAuthCode(ctx context.Context, clientSecret, code string) (string, error) {
	payload := map[string]string{
		"grant_type": "authorization_code",
		"appIdHash":  AppIDHash(c.p.ClientID, clientSecret),
		"code":       code,
	}

	resp, err := c.api.POST(ctx, "/api/v3/validate-authcode", payload)
	if err != nil {
		return "", fmt.Errorf("fyers auth: %w", err)
	}

	var env tokenEnvelope
	if err := resp.ParseJSON(&env); err != nil {
		return "", fmt.Errorf("fyers auth: %w", err)
	}
	if env.S != statusOK {
		return "", envelopeErr("auth", env.S, env.Message)
	}
	return env.AccessToken, nil
}
