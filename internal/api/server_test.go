package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"domainsync/internal/api"
	"domainsync/internal/api/handler/v1handler"
	"domainsync/pkg/controller"
	"domainsync/pkg/logger"
	"domainsync/pkg/storage"
	mockstorage "domainsync/pkg/storage/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func testOptions(publicKey string) api.Options {
	return api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKey},
		Addr:              ":0",
		RequestTimeout:    5 * time.Second,
		MetricsPath:       "/metrics",
	}
}

func get(t *testing.T, h http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestNewServer_PublicRoutes(t *testing.T) {
	srv, err := api.NewServer(context.Background(), api.Deps{}, testOptions(""))
	require.NoError(t, err)

	rec := get(t, srv.Handler, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(controller.RequestIDHeader))

	rec = get(t, srv.Handler, "/specs/v1.yaml", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "openapi:")
}

func TestNewServer_V1DisabledWithoutPublicKey(t *testing.T) {
	srv, err := api.NewServer(context.Background(), api.Deps{}, testOptions(""))
	require.NoError(t, err)

	require.Equal(t, http.StatusNotFound, get(t, srv.Handler, "/v1/domains", "").Code)
}

func TestNewServer_InvalidPublicKey(t *testing.T) {
	_, err := api.NewServer(context.Background(), api.Deps{}, testOptions("not a pem"))
	require.Error(t, err)
}

func TestNewServer_V1RequiresToken(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	store.EXPECT().Contacts(gomock.Any()).Return([]storage.ContactRecord{}, nil)

	srv, err := api.NewServer(context.Background(),
		api.Deps{Deps: v1handler.Deps{Storage: store}}, testOptions(string(pubPEM)))
	require.NoError(t, err)

	rec := get(t, srv.Handler, "/v1/contacts", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"missing bearer token"}`, rec.Body.String())

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   "ops",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(priv)
	require.NoError(t, err)

	rec = get(t, srv.Handler, "/v1/contacts", token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}
