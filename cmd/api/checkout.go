package main

import (
	"errors"
	"net/http"

	"reliance/internal/booking"

	"github.com/go-chi/chi/v5"
)

type sessionResponse struct {
	SessionID string `json:"sessionId"`
}

// CreateCheckoutSession godoc
//
//	@Summary		Create a Stripe checkout session for a booking
//	@Description	Normalizes the booking into a single GBP line item plus metadata and opens a hosted Stripe Checkout session.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			booking	body		booking.Booking	true	"Booking payload"
//	@Success		200		{object}	sessionResponse	"Session id for Stripe redirect"
//	@Failure		400		{object}	error			"Malformed booking payload"
//	@Failure		500		{object}	error			"Unable to create Stripe session"
//	@Router			/create-checkout-session [post]
func (app *application) createCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	var b booking.Booking
	if err := readJSON(w, r, &b); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	charge, err := booking.Normalize(&b)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			app.badRequestResponse(w, r, verr)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.logger.Infow("creating checkout session",
		"price", charge.Metadata["price"],
		"unit_amount", charge.UnitAmount,
		"quote_ref", charge.Metadata["quoteRef"],
	)

	id, err := app.gateway.CreateSession(r.Context(), charge)
	if err != nil {
		// Full detail stays server-side; the client gets a static message.
		app.logger.Errorw("stripe session creation failed", "error", err.Error())
		writeJSONError(w, http.StatusInternalServerError, "Unable to create Stripe session")
		return
	}

	if err := writeJSON(w, http.StatusOK, sessionResponse{SessionID: id}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// GetCheckoutSession godoc
//
//	@Summary		Retrieve a checkout session
//	@Description	Forwards the session id to Stripe and returns the session object verbatim.
//	@Tags			Checkout
//	@Produce		json
//	@Param			sessionID	path		string	true	"Checkout session id"
//	@Success		200			{object}	object	"Stripe checkout session"
//	@Failure		500			{object}	error	"Invalid session ID"
//	@Router			/checkout-session/{sessionID} [get]
func (app *application) getCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	raw, err := app.gateway.RetrieveSession(r.Context(), id)
	if err != nil {
		app.logger.Errorw("stripe session retrieve failed", "session_id", id, "error", err.Error())
		writeJSONError(w, http.StatusInternalServerError, "Invalid session ID")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
