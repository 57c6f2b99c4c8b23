//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// Request describes one call against a router under test.
type Request struct {
	Method  string
	Path    string
	Body    any
	Token   string
	Headers map[string]string
	Cookies []*http.Cookie
}

func (r Request) build(t *testing.T) *http.Request {
	t.Helper()

	reqBody := bytes.NewBuffer(nil)
	if r.Body != nil {
		jsonBody, err := json.Marshal(r.Body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(r.Method, r.Path, reqBody)
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}
	for _, c := range r.Cookies {
		req.AddCookie(c)
	}
	return req
}

// Do serves r on handler. handler is a gin engine in unit tests and the full router in e2e.
func Do(t *testing.T, handler http.Handler, r Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r.build(t))
	return w
}

// executes HTTP request with optional authorization
func PerformRequest(t *testing.T, handler http.Handler, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(t, handler, Request{Method: method, Path: path, Body: body, Token: authToken})
}

func PerformRequestWithHeaders(t *testing.T, handler http.Handler, method, path string, body any, authToken string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(t, handler, Request{Method: method, Path: path, Body: body, Token: authToken, Headers: headers})
}

func PerformRequestWithCookies(t *testing.T, handler http.Handler, method, path string, body any, cookies []*http.Cookie, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(t, handler, Request{Method: method, Path: path, Body: body, Token: authToken, Cookies: cookies})
}
