package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"reliance/internal/payments"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// GatewayMock implements payments.CheckoutGateway for testing.
type GatewayMock struct {
	sessionID   string
	createErr   error
	raw         json.RawMessage
	retrieveErr error

	createCalls int
	lastCharge  payments.ChargeRequest
	lastID      string
}

func (g *GatewayMock) CreateSession(_ context.Context, req payments.ChargeRequest) (string, error) {
	g.createCalls++
	g.lastCharge = req
	if g.createErr != nil {
		return "", g.createErr
	}
	return g.sessionID, nil
}

func (g *GatewayMock) RetrieveSession(_ context.Context, id string) (json.RawMessage, error) {
	g.lastID = id
	if g.retrieveErr != nil {
		return nil, g.retrieveErr
	}
	return g.raw, nil
}

func newTestApplication(gateway payments.CheckoutGateway) *application {
	return &application{
		config: config{
			addr:        ":5000",
			frontendURL: "https://reliance.orbits-it.com",
			allowedOrigins: []string{
				"http://localhost:3000",
				"https://reliance.orbits-it.com",
			},
			auth: authConfig{basic: basicConfig{user: "admin", pass: "secret"}},
		},
		logger:  zap.NewNop().Sugar(),
		gateway: gateway,
	}
}

const minimalBooking = `{
	"price": 49.99,
	"email": "jo@example.com",
	"pickupAddress": {"city": "London"},
	"dropAddress": {"city": "Leeds"},
	"pickupLocation": {},
	"dropLocation": {},
	"details": {}
}`

func TestCreateCheckoutSession(t *testing.T) {
	mock := &GatewayMock{sessionID: "sess_123"}
	mux := newTestApplication(mock).mount()

	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", bytes.NewBufferString(minimalBooking))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"sessionId":"sess_123"}`, rr.Body.String())

	assert.Equal(t, 1, mock.createCalls)
	assert.Equal(t, int64(4999), mock.lastCharge.UnitAmount)
	assert.Equal(t, "From London to Leeds", mock.lastCharge.Description)
	assert.Equal(t, "jo@example.com", mock.lastCharge.Metadata["email"])
}

func TestCreateCheckoutSession_MalformedBooking(t *testing.T) {
	mock := &GatewayMock{sessionID: "sess_123"}
	mux := newTestApplication(mock).mount()

	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", bytes.NewBufferString(`{"price": 49.99}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "pickupAddress")
	assert.Equal(t, 0, mock.createCalls, "no external call for malformed input")
}

func TestCreateCheckoutSession_NonPositivePrice(t *testing.T) {
	mock := &GatewayMock{sessionID: "sess_123"}
	mux := newTestApplication(mock).mount()

	body := `{
		"price": 0,
		"pickupAddress": {}, "dropAddress": {},
		"pickupLocation": {}, "dropLocation": {}, "details": {}
	}`
	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 0, mock.createCalls)
}

func TestCreateCheckoutSession_InvalidJSON(t *testing.T) {
	mock := &GatewayMock{}
	mux := newTestApplication(mock).mount()

	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", bytes.NewBufferString(`{not json`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 0, mock.createCalls)
}

func TestCreateCheckoutSession_GatewayFailure(t *testing.T) {
	mock := &GatewayMock{createErr: errors.New("stripe: api_key_invalid")}
	mux := newTestApplication(mock).mount()

	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", bytes.NewBufferString(minimalBooking))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	// Static message only; processor detail never reaches the client.
	assert.JSONEq(t, `{"error":"Unable to create Stripe session"}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "api_key_invalid")
}

func TestGetCheckoutSession(t *testing.T) {
	raw := json.RawMessage(`{"id":"sess_abc","status":"complete","amount_total":4999}`)
	mock := &GatewayMock{raw: raw}
	mux := newTestApplication(mock).mount()

	req := httptest.NewRequest(http.MethodGet, "/checkout-session/sess_abc", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, string(raw), rr.Body.String(), "session object passed through verbatim")
	assert.Equal(t, "sess_abc", mock.lastID)
}

func TestGetCheckoutSession_Failure(t *testing.T) {
	mock := &GatewayMock{retrieveErr: errors.New("stripe: resource_missing")}
	mux := newTestApplication(mock).mount()

	req := httptest.NewRequest(http.MethodGet, "/checkout-session/sess_nope", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid session ID"}`, rr.Body.String())
}

func TestHealthCheck(t *testing.T) {
	mux := newTestApplication(&GatewayMock{}).mount()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestHealthCheck_IgnoresGatewayFailures(t *testing.T) {
	mock := &GatewayMock{createErr: errors.New("down"), retrieveErr: errors.New("down")}
	mux := newTestApplication(mock).mount()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
