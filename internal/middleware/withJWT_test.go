package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddegtyarev/linkpulse/internal/app/service"
)

func TestWithJWTIssuesCookie(t *testing.T) {
	auth := service.NewAuth("testsecret")

	var gotUserID string
	handler := WithJWT(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/shorten", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	assert.NotEmpty(t, gotUserID)

	var tokenCookie *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == "token" {
			tokenCookie = c
		}
	}
	require.NotNil(t, tokenCookie)

	claims, err := auth.ParseClaims(tokenCookie)
	require.NoError(t, err)
	assert.Equal(t, gotUserID, claims.UserID)
}

func TestWithJWTKeepsExistingIdentity(t *testing.T) {
	auth := service.NewAuth("testsecret")

	token, userID, err := auth.BuildJWTString()
	require.NoError(t, err)

	var gotUserID string
	handler := WithJWT(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/shorten", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	assert.Equal(t, userID, gotUserID)
	assert.Empty(t, res.Cookies())
}

func TestWithJWTReplacesForeignToken(t *testing.T) {
	auth := service.NewAuth("testsecret")
	other := service.NewAuth("othersecret")

	token, _, err := other.BuildJWTString()
	require.NoError(t, err)

	handler := WithJWT(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodPost, "/api/shorten", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	require.Len(t, res.Cookies(), 1)
	assert.Equal(t, "token", res.Cookies()[0].Name)
}

func TestRequireJWT(t *testing.T) {
	auth := service.NewAuth("testsecret")

	token, userID, err := auth.BuildJWTString()
	require.NoError(t, err)

	badToken, _, err := service.NewAuth("othersecret").BuildJWTString()
	require.NoError(t, err)

	tests := []struct {
		name       string
		cookie     *http.Cookie
		wantStatus int
	}{
		{name: "no cookie", cookie: nil, wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", cookie: &http.Cookie{Name: "token", Value: badToken}, wantStatus: http.StatusUnauthorized},
		{name: "garbage", cookie: &http.Cookie{Name: "token", Value: "not-a-jwt"}, wantStatus: http.StatusUnauthorized},
		{name: "valid", cookie: &http.Cookie{Name: "token", Value: token}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID string
			handler := RequireJWT(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = UserID(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/urls", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			assert.Equal(t, tt.wantStatus, res.StatusCode)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID, gotUserID)
			}
		})
	}
}
