package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/draftea/checkout-system/checkout-service/application"
	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/draftea/checkout-system/shared/models"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

const defaultEventsLimit = 100

// CheckoutHandlers contains checkout session HTTP handlers
type CheckoutHandlers struct {
	startCheckout        *application.StartCheckout
	getSession           *application.GetSession
	endCheckout          *application.EndCheckout
	dispatchAction       *application.DispatchAction
	checkEmbeddedSupport *application.CheckEmbeddedSupport
	eventStore           events.EventStore
}

// NewCheckoutHandlers creates new checkout handlers. eventStore may be nil.
func NewCheckoutHandlers(
	startCheckout *application.StartCheckout,
	getSession *application.GetSession,
	endCheckout *application.EndCheckout,
	dispatchAction *application.DispatchAction,
	checkEmbeddedSupport *application.CheckEmbeddedSupport,
	eventStore events.EventStore,
) *CheckoutHandlers {
	return &CheckoutHandlers{
		startCheckout:        startCheckout,
		getSession:           getSession,
		endCheckout:          endCheckout,
		dispatchAction:       dispatchAction,
		checkEmbeddedSupport: checkEmbeddedSupport,
		eventStore:           eventStore,
	}
}

// StartCheckout starts a session and answers once its checkout loaded
func (h *CheckoutHandlers) StartCheckout(w http.ResponseWriter, r *http.Request) {
	var cmd application.StartCheckoutCommand
	if err := decodeOptional(r, &cmd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	cmd.CheckoutID = chi.URLParam(r, "checkoutID")

	response, err := h.startCheckout.Execute(r.Context(), &cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", "/sessions/"+response.SessionID)
	writeJSON(w, http.StatusCreated, NewSessionView(response.Snapshot))
}

// GetSession handles session retrieval requests
func (h *CheckoutHandlers) GetSession(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.getSession.Execute(r.Context(), &application.GetSessionQuery{
		SessionID: chi.URLParam(r, "id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NewSessionView(snapshot))
}

// EndCheckout closes a session
func (h *CheckoutHandlers) EndCheckout(w http.ResponseWriter, r *http.Request) {
	err := h.endCheckout.Execute(r.Context(), &application.EndCheckoutCommand{
		SessionID: chi.URLParam(r, "id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DispatchAction reports a presentation callback to a session
func (h *CheckoutHandlers) DispatchAction(w http.ResponseWriter, r *http.Request) {
	var cmd application.DispatchActionCommand
	if err := decodeOptional(r, &cmd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	cmd.SessionID = chi.URLParam(r, "id")
	cmd.Action = chi.URLParam(r, "action")

	snapshot, err := h.dispatchAction.Execute(r.Context(), &cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NewSessionView(snapshot))
}

// CheckEmbeddedSupport rejects payment methods the parent frame cannot host
func (h *CheckoutHandlers) CheckEmbeddedSupport(w http.ResponseWriter, r *http.Request) {
	var query application.CheckEmbeddedSupportQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	query.SessionID = chi.URLParam(r, "id")

	err := h.checkEmbeddedSupport.Execute(r.Context(), &query)
	var notEmbeddable *domain.NotEmbeddableError
	if errors.As(err, &notEmbeddable) {
		writeJSON(w, http.StatusUnprocessableEntity, NewErrorView(err))
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetCheckoutEvents lists the archived tracking events of a checkout
func (h *CheckoutHandlers) GetCheckoutEvents(w http.ResponseWriter, r *http.Request) {
	if h.eventStore == nil {
		http.Error(w, "Event archive disabled", http.StatusNotFound)
		return
	}

	checkoutID, err := models.NewID(chi.URLParam(r, "checkoutID"))
	if err != nil {
		http.Error(w, "Checkout ID is required", http.StatusBadRequest)
		return
	}

	evts, err := h.eventStore.GetEvents(r.Context(), checkoutID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, evts)
}

// GetStepEvents pages through the step events of every checkout
func (h *CheckoutHandlers) GetStepEvents(w http.ResponseWriter, r *http.Request) {
	if h.eventStore == nil {
		http.Error(w, "Event archive disabled", http.StatusNotFound)
		return
	}

	offset, err := intParam(r, "offset", 0)
	if err != nil {
		http.Error(w, "Invalid offset", http.StatusBadRequest)
		return
	}
	limit, err := intParam(r, "limit", defaultEventsLimit)
	if err != nil || limit <= 0 {
		http.Error(w, "Invalid limit", http.StatusBadRequest)
		return
	}

	evts, err := h.eventStore.GetEventsByTopic(r.Context(), events.StepTopics, offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, evts)
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/checkouts/{checkoutID}", func(r chi.Router) {
		r.Post("/sessions", h.StartCheckout)
		r.Get("/events", h.GetCheckoutEvents)
	})
	r.Get("/events/steps", h.GetStepEvents)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", h.GetSession)
		r.Delete("/", h.EndCheckout)
		r.Post("/embedded-support", h.CheckEmbeddedSupport)
		r.Post("/{action}", h.DispatchAction)
	})
}

// decodeOptional accepts an empty body
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrSessionNotFound),
		errors.Is(err, domain.ErrCheckoutNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrUnknownAction),
		errors.Is(err, application.ErrInvalidAction),
		errors.Is(err, models.ErrEmptyID):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrSessionNotReady):
		return http.StatusConflict
	case errors.Is(err, application.ErrSessionClosed):
		return http.StatusGone
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
