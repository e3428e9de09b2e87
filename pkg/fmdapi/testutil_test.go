package fmdapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testToken = "test-session-token"
	testBase  = "/fmi/data/vLatest/databases/TestDB"
)

// writeEnvelope writes a Data API response envelope around payload.
func writeEnvelope(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"response": payload,
		"messages": []map[string]string{{"code": "0", "message": "OK"}},
	})
}

// writeError writes a Data API error envelope with the given HTTP
// status and FileMaker error code.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"response": map[string]any{},
		"messages": []map[string]string{{"code": code, "message": message}},
	})
}

// loginOK answers a session-creation request with a fresh token.
func loginOK(w http.ResponseWriter) {
	w.Header().Set(tokenHeader, testToken)
	writeEnvelope(w, map[string]any{"token": testToken})
}

// testClient builds a credential-mode client against the mock server,
// with "Contacts" as the default layout.
func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	client, err := New(&Config{
		Server:   serverURL,
		Database: "TestDB",
		Username: "tester",
		Password: "secret",
		Layout:   "Contacts",
	})
	require.NoError(t, err)
	return client
}

// testAPIKeyClient builds an API-key client whose Otto port points back
// at the mock server, so proxied requests land there.
func testAPIKeyClient(t *testing.T, server *httptest.Server, key string) *Client {
	t.Helper()
	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	client, err := New(&Config{
		Server:   server.URL,
		Database: "TestDB",
		APIKey:   key,
		OttoPort: port,
		Layout:   "Contacts",
	})
	require.NoError(t, err)
	return client
}
