package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/manifold/pkg/domain"
	"github.com/umputun/manifold/pkg/metrics"
	"github.com/umputun/manifold/server/mocks"
)

func testConfig(listen string) *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return listen, 30 * time.Second },
		GetServerLimitsFunc: func() (int64, int64) { return 1024 * 1024, 10 },
	}
}

func testTokens() *mocks.TokenResolverMock {
	return &mocks.TokenResolverMock{
		RequestContextFunc: func(token string) domain.RequestContext {
			return domain.StaticRequestContext{Token: token, Who: domain.Principal{ID: "user-" + token}}
		},
	}
}

func TestServer_New(t *testing.T) {
	srv := New(Params{Config: testConfig(":8080"), App: &mocks.UseCasesMock{}, Tokens: testTokens(), Version: "1.0.0"})
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
	assert.Nil(t, srv.metrics)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	srv := New(Params{Config: testConfig(fmt.Sprintf("127.0.0.1:%d", port)), App: &mocks.UseCasesMock{},
		Tokens: testTokens(), Version: "1.0.0"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// wait for server to start
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Status(t *testing.T) {
	srv := New(Params{Config: testConfig(":8080"), App: &mocks.UseCasesMock{}, Tokens: testTokens(), Version: "1.2.3"})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"version":"1.2.3"`)
	assert.Equal(t, "manifold", w.Header().Get("App-Name"))
}

func TestServer_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	c.UseCase("list_all_feeds", time.Now(), nil)

	srv := New(Params{Config: testConfig(":8080"), App: &mocks.UseCasesMock{}, Tokens: testTokens(), Metrics: reg})
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `manifold_usecase_total{op="list_all_feeds",result="ok"} 1`)

	t.Run("not served without gatherer", func(t *testing.T) {
		srv := New(Params{Config: testConfig(":8080"), App: &mocks.UseCasesMock{}, Tokens: testTokens()})
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServer_SizeLimit(t *testing.T) {
	cfg := testConfig(":8080")
	cfg.GetServerLimitsFunc = func() (int64, int64) { return 1024, 10 }
	srv := New(Params{Config: cfg, App: &mocks.UseCasesMock{}, Tokens: testTokens()})

	body := `{"title":"` + strings.Repeat("x", 2048) + `"}`
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/services", strings.NewReader(body)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
