package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ddegtyarev/linkpulse/internal/app/service"
	"github.com/ddegtyarev/linkpulse/internal/mocks"
	"github.com/ddegtyarev/linkpulse/internal/storage"
)

func newTestServer(t *testing.T) (*mocks.MockLinkServiceIface, *httptest.Server, service.AuthIface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockLinkServiceIface(ctrl)
	auth := service.NewAuth("testsecret")

	srv := httptest.NewServer(Init(svc, auth, "10.0.0.0/8", zap.NewNop()))
	t.Cleanup(srv.Close)

	return svc, srv, auth
}

func noRedirect() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
		Timeout: 5 * time.Second,
	}
}

func TestRouteRedirect(t *testing.T) {
	svc, srv, _ := newTestServer(t)

	link := &storage.LinkRecord{Code: "abc123", OriginalURL: "https://example.com", IsActive: true}
	svc.EXPECT().Resolve(gomock.Any(), "abc123").Return(link, nil)
	svc.EXPECT().RecordClick(link, gomock.Any())

	res, err := noRedirect().Get(srv.URL + "/abc123")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "https://example.com", res.Header.Get("Location"))
}

func TestRouteRejectsShortCodes(t *testing.T) {
	_, srv, _ := newTestServer(t)

	// Two characters falls outside the code pattern and never reaches the
	// redirect handler.
	res, err := noRedirect().Get(srv.URL + "/ab")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestRouteRootIsBadRequest(t *testing.T) {
	_, srv, _ := newTestServer(t)

	res, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestRouteShortenIssuesCookie(t *testing.T) {
	svc, srv, _ := newTestServer(t)

	created := &storage.LinkRecord{Code: "abc123", OriginalURL: "https://example.com", IsActive: true}
	svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Not("")).Return(created, nil)
	svc.EXPECT().ShortURL("abc123").Return(srv.URL + "/abc123")

	body := bytes.NewBufferString(`{"url":"https://example.com"}`)
	res, err := http.Post(srv.URL+"/api/shorten", "application/json", body)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var hasToken bool
	for _, c := range res.Cookies() {
		if c.Name == "token" {
			hasToken = true
		}
	}
	assert.True(t, hasToken)
}

func TestRouteOwnerEndpointsRequireAuth(t *testing.T) {
	_, srv, _ := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/urls"},
		{http.MethodPatch, "/api/urls/11111111-1111-1111-1111-111111111111"},
		{http.MethodDelete, "/api/urls/11111111-1111-1111-1111-111111111111"},
		{http.MethodGet, "/api/analytics/11111111-1111-1111-1111-111111111111"},
	}

	for _, p := range paths {
		req, err := http.NewRequest(p.method, srv.URL+p.path, nil)
		require.NoError(t, err)

		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		res.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "%s %s", p.method, p.path)
	}
}

func TestRouteInternalStatsSubnetGuard(t *testing.T) {
	svc, srv, _ := newTestServer(t)

	// Outside the trusted subnet.
	res, err := http.Get(srv.URL + "/api/internal/stats")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Inside it.
	svc.EXPECT().Stats(gomock.Any()).Return(storage.Stats{Links: 1, Clicks: 2}, nil)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/internal/stats", nil)
	require.NoError(t, err)
	req.Header.Set("X-Real-IP", "10.1.2.3")

	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestRoutePing(t *testing.T) {
	svc, srv, _ := newTestServer(t)

	svc.EXPECT().PingContext(gomock.Any()).Return(nil)

	res, err := http.Get(srv.URL + "/ping")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
}
