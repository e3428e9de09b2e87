package fmdapi

import (
	"context"
	"net/http"
	"net/url"
)

// Disconnect ends the current server-side session. Only valid under
// username/password authentication; an API-key client fails with
// ErrNoSession before any network I/O, since Otto authentication has no
// session to end.
//
// A session that was never started is still logged in first and then
// deleted, so Disconnect on an idle client performs two calls. On
// success the cached token is cleared: the session is gone server-side,
// and keeping the token would turn the next operation into an
// invalid-token failure instead of a clean re-login.
func (c *Client) Disconnect(ctx context.Context) error {
	if c.tokens.mode == authAPIKey {
		return &Error{Op: "Disconnect", Err: ErrNoSession}
	}

	token, err := c.tokens.getToken(ctx, false)
	if err != nil {
		return err
	}

	if _, err := c.do(ctx, &apiRequest{
		method: http.MethodDelete,
		path:   "/sessions/" + url.PathEscape(token),
	}); err != nil {
		return err
	}

	c.tokens.clear()
	return nil
}
