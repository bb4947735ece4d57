package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"taxtoken/internal/api"
	"taxtoken/internal/api/handler/v1handler"
	mocktoken "taxtoken/internal/token/mock"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestServer(t *testing.T, pprof bool) (*mocktoken.MockToken, http.Handler) {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	tok := mocktoken.NewMockToken(gomock.NewController(t))
	srv, err := api.NewServer(api.Deps{Deps: v1handler.Deps{Token: tok}}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: string(pubPEM)},
		RequestTimeout:    5 * time.Second,
		MetricsPath:       "/metrics",
		Pprof:             pprof,
	})
	require.NoError(t, err)

	return tok, srv.Handler
}

func TestNewServer_Routes(t *testing.T) {
	tok, h := newTestServer(t, false)
	tok.EXPECT().Info(gomock.Any()).Return(&domain.TokenState{Symbol: "TAX"}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/token", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"symbol":"TAX"`)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/specs/v1.yaml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "title: Tax Token Service")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewServer_Pprof(t *testing.T) {
	_, h := newTestServer(t, true)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewServer_InvalidPublicKey(t *testing.T) {
	_, err := api.NewServer(api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "garbage"},
		MetricsPath:       "/metrics",
	})
	require.ErrorContains(t, err, "could not create sec handler")
}

func TestNewServer_ZeroOptions(t *testing.T) {
	require.NotPanics(t, func() {
		_, err := api.NewServer(api.Deps{}, api.Options{})
		require.ErrorContains(t, err, "metrics path is required")
	})

	require.NotPanics(t, func() {
		_, err := api.NewServer(api.Deps{}, api.Options{
			SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "garbage"},
		})
		require.Error(t, err)
	})
}
