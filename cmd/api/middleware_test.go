package main

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCors_AllowedOrigin(t *testing.T) {
	mux := newTestApplication(&GatewayMock{}).mount()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://reliance.orbits-it.com")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://reliance.orbits-it.com", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCors_BlockedOrigin(t *testing.T) {
	mux := newTestApplication(&GatewayMock{}).mount()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"error":"Not allowed by CORS policy"}`, rr.Body.String())
}

func TestCors_NoOriginAllowed(t *testing.T) {
	// curl, mobile apps and health probes send no Origin header.
	mux := newTestApplication(&GatewayMock{}).mount()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCors_Preflight(t *testing.T) {
	mux := newTestApplication(&GatewayMock{}).mount()

	req := httptest.NewRequest(http.MethodOptions, "/create-checkout-session", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestBasicAuth_DebugVars(t *testing.T) {
	mux := newTestApplication(&GatewayMock{}).mount()

	req := httptest.NewRequest(http.MethodGet, "/debug/vars", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/debug/vars", nil)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:secret")))
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
