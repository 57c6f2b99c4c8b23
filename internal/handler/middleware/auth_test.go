//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"appointment-engine/internal/domain/auth"
	"appointment-engine/internal/domain/user"
	"appointment-engine/internal/handler/middleware"
	"appointment-engine/tests/common/builder"
	"appointment-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	tokens map[string]*auth.Principal
}

func (s stubValidator) ValidateToken(token string) (*auth.Principal, error) {
	if p, ok := s.tokens[token]; ok {
		return p, nil
	}
	return nil, errors.New("token is expired")
}

type whoami struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"userId"`
	Role          string `json:"role"`
}

func newAuthRouter(p *auth.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	authMw := middleware.NewAuthMiddleware(stubValidator{tokens: map[string]*auth.Principal{"good-token": p}})

	handler := func(c *gin.Context) {
		got, ok := middleware.GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusOK, whoami{})
			return
		}
		c.JSON(http.StatusOK, whoami{Authenticated: true, UserID: got.UserID.String(), Role: got.Role.String()})
	}

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/private", authMw.RequireAuth(), handler)
	r.GET("/public", authMw.OptionalAuth(), handler)
	return r
}

func TestRequireAuth(t *testing.T) {
	p := builder.NewPrincipalBuilder().WithRole(user.RoleStaff).Build()
	r := newAuthRouter(p)

	t.Run("bearer token attaches the principal", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "good-token")

		var body whoami
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, whoami{Authenticated: true, UserID: p.UserID.String(), Role: "staff"}, body)
	})

	t.Run("cookie token is accepted", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: middleware.AccessTokenCookie, Value: "good-token"}}
		rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/private", nil, cookies, "")

		var body whoami
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.True(t, body.Authenticated)
	})

	t.Run("header wins over a stale cookie", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: middleware.AccessTokenCookie, Value: "stale-token"}}
		rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/private", nil, cookies, "good-token")

		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("invalid token is 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "stale-token")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestOptionalAuth(t *testing.T) {
	p := builder.NewPrincipalBuilder().Build()
	r := newAuthRouter(p)

	tests := []struct {
		name      string
		token     string
		wantAuthd bool
	}{
		{"anonymous", "", false},
		{"valid token", "good-token", true},
		{"invalid token is ignored", "stale-token", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodGet, "/public", nil, tt.token)

			var body whoami
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			assert.Equal(t, tt.wantAuthd, body.Authenticated)
		})
	}
}

func TestGetPrincipal_NotSet(t *testing.T) {
	c, _ := gin.CreateTestContext(nil)
	p, ok := middleware.GetPrincipal(c)
	require.False(t, ok)
	assert.Nil(t, p)
}
