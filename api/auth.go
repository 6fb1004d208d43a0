package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"

	"github.com/elliot-anderson-afk/kite-api-wrapper/kiteerrors"
	"github.com/elliot-anderson-afk/kite-api-wrapper/utils/log"
)

const routeSessionToken = "/session/token"

// LoginURL returns the URL the user must visit to obtain a request token.
// No network call is made.
func (c *Client) LoginURL() string {
	return fmt.Sprintf("%s/connect/login?api_key=%s&v=%s",
		c.baseURL, url.QueryEscape(c.creds.APIKey), apiVersion)
}

// GenerateSession exchanges a request token for a session. apiSecret
// overrides the resolved secret when non-empty; if no secret is available
// the call fails with an Input error before any network round trip. On
// success the access token is stored, the header state recomputed and the
// token persisted best-effort to the credential file.
func (c *Client) GenerateSession(ctx context.Context, requestToken, apiSecret string) (*UserSession, error) {
	secret := apiSecret
	if secret == "" {
		secret = c.creds.APISecret
	}
	if secret == "" {
		return nil, kiteerrors.New(kiteerrors.Input, "API secret is required to generate a session.")
	}
	if requestToken == "" {
		return nil, kiteerrors.New(kiteerrors.Input, "a request token is required to generate a session.")
	}

	checksum := sha256.Sum256([]byte(c.creds.APIKey + requestToken + secret))
	form := url.Values{
		"api_key":       {c.creds.APIKey},
		"request_token": {requestToken},
		"checksum":      {hex.EncodeToString(checksum[:])},
	}

	var session UserSession
	if err := c.postForm(ctx, routeSessionToken, form, &session); err != nil {
		return nil, err
	}
	if session.AccessToken == "" {
		return nil, kiteerrors.New(kiteerrors.Token,
			"failed to generate session: 'access_token' not found in response.")
	}

	c.SetAccessToken(session.AccessToken)
	log.Info("session generated, access token set")
	return &session, nil
}

// SetAccessToken replaces the session token, recomputes the authorization
// header and persists the token to the credential file best-effort.
func (c *Client) SetAccessToken(accessToken string) {
	c.creds.AccessToken = accessToken
	c.updateHeaders()
	c.resolver.PersistToken(c.creds.Path, accessToken)
	log.Debug("access token updated")
}

// InvalidateSession logs the current access token out on the server and
// clears it locally. The cleared token is not removed from the credential
// file; the next successful login overwrites it.
func (c *Client) InvalidateSession(ctx context.Context) error {
	query := url.Values{
		"api_key":      {c.creds.APIKey},
		"access_token": {c.creds.AccessToken},
	}
	if err := c.deleteJSON(ctx, routeSessionToken, query, nil); err != nil {
		return err
	}
	c.creds.AccessToken = ""
	c.updateHeaders()
	return nil
}
