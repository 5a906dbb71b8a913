package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/draftea/checkout-system/checkout-service/application"
	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/checkout-service/mocks"
	"github.com/draftea/checkout-system/shared/events"
	"github.com/draftea/checkout-system/shared/models"
)

func testCheckout() *domain.Checkout {
	return &domain.Checkout{
		ID: "checkout-1",
		Cart: &domain.Cart{
			ID: "cart-1",
			LineItems: domain.LineItems{
				PhysicalItems: []domain.LineItem{{ID: "item-1", Name: "Mug", Quantity: 1}},
			},
		},
		Customer: &domain.Customer{ID: 7, Email: "ada@example.com"},
		Consignments: []domain.Consignment{{
			ID:          "consignment-1",
			LineItemIDs: []string{"item-1"},
			ShippingAddress: &domain.Address{
				FirstName: "Ada", LastName: "Lovelace", Address1: "12 Analytical Row",
				City: "London", CountryCode: "GB", PostalCode: "N1 9GU",
			},
			SelectedShippingOption: &domain.ShippingOption{ID: "ground"},
		}},
		Config: &domain.Config{
			Links: domain.Links{SiteLink: "https://shop.example.com"},
		},
	}
}

type httpEnv struct {
	router *chi.Mux
	loader *mocks.MockCheckoutLoader
	store  *mocks.MockEventStore
}

func newHTTPEnv(t *testing.T) *httpEnv {
	t.Helper()
	registry := application.NewSessionRegistry()
	t.Cleanup(registry.CloseAll)

	env := &httpEnv{
		router: chi.NewRouter(),
		loader: mocks.NewMockCheckoutLoader(t),
		store:  mocks.NewMockEventStore(t),
	}
	h := NewCheckoutHandlers(
		application.NewStartCheckout(registry, application.SessionDependencies{Loader: env.loader}),
		application.NewGetSession(registry),
		application.NewEndCheckout(registry),
		application.NewDispatchAction(registry),
		application.NewCheckEmbeddedSupport(registry),
		env.store,
	)
	h.RegisterRoutes(env.router)
	return env
}

func (env *httpEnv) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func (env *httpEnv) start(t *testing.T) *SessionView {
	t.Helper()
	env.loader.EXPECT().LoadCheckout(mock.Anything, "checkout-1", mock.Anything).Return(testCheckout(), nil).Once()

	rec := env.do(http.MethodPost, "/checkouts/checkout-1/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeView(t, rec)
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) *SessionView {
	t.Helper()
	var view SessionView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	return &view
}

func TestCheckoutHandlers_StartCheckout(t *testing.T) {
	env := newHTTPEnv(t)

	view := env.start(t)

	assert.NotEmpty(t, view.SessionID)
	assert.True(t, view.IsLoaded)
	assert.Equal(t, "billing", view.CurrentStep)
	assert.Equal(t, "login", view.CustomerViewType)
	require.Len(t, view.Steps, 4)
	assert.Equal(t, "Customer", view.Steps[0].Title)
	assert.True(t, view.Steps[2].IsCurrent)
	assert.True(t, view.State.HasSelectedShippingOptions)
	assert.Nil(t, view.Error)
}

func TestCheckoutHandlers_StartCheckoutLoadFailure(t *testing.T) {
	env := newHTTPEnv(t)
	env.loader.EXPECT().LoadCheckout(mock.Anything, "checkout-1", mock.Anything).
		Return(nil, errors.New("storefront unavailable")).Once()

	rec := env.do(http.MethodPost, "/checkouts/checkout-1/sessions", `{"container_id":"app"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	view := decodeView(t, rec)
	require.NotNil(t, view.Error)
	assert.Equal(t, "load_failure", view.Error.Kind)
	assert.Empty(t, view.CurrentStep)
}

func TestCheckoutHandlers_StartCheckoutInvalidBody(t *testing.T) {
	env := newHTTPEnv(t)

	rec := env.do(http.MethodPost, "/checkouts/checkout-1/sessions", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutHandlers_SessionLifecycle(t *testing.T) {
	env := newHTTPEnv(t)
	session := env.start(t)
	path := "/sessions/" + session.SessionID

	rec := env.do(http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session.Version, decodeView(t, rec).Version)

	rec = env.do(http.MethodPost, path+"/edit", `{"step_type":"shipping"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeView(t, rec)
	assert.Equal(t, "shipping", view.CurrentStep)
	assert.Equal(t, "shipping", view.State.ActiveStepType)
	assert.True(t, view.Steps[1].IsCurrent)

	rec = env.do(http.MethodPost, path+"/unhandled_error",
		`{"error":{"type":"custom","title":"Card declined","message":"Try another card"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	view = decodeView(t, rec)
	require.NotNil(t, view.Error)
	assert.Equal(t, &ErrorView{Kind: "custom", Title: "Card declined", Message: "Try another card"}, view.Error)

	rec = env.do(http.MethodPost, path+"/order_submitted", `{"order_id":12}`)
	require.Equal(t, http.StatusOK, rec.Code)
	view = decodeView(t, rec)
	require.NotNil(t, view.Redirect)
	assert.Equal(t, "/checkout/order-confirmation", view.Redirect.URL)
	assert.True(t, view.State.IsRedirecting)

	rec = env.do(http.MethodPost, path+"/embedded-support", `{"method_ids":["paypal"]}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutHandlers_DispatchErrors(t *testing.T) {
	env := newHTTPEnv(t)
	session := env.start(t)
	path := "/sessions/" + session.SessionID

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{name: "unknown action", path: path + "/teleport", want: http.StatusBadRequest},
		{name: "unknown step", path: path + "/edit", body: `{"step_type":"review"}`, want: http.StatusBadRequest},
		{name: "malformed body", path: path + "/edit", body: `{`, want: http.StatusBadRequest},
		{name: "missing methods", path: path + "/embedded-support", body: `{}`, want: http.StatusBadRequest},
		{name: "unknown session", path: "/sessions/missing/ready", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestCheckoutHandlers_Events(t *testing.T) {
	env := newHTTPEnv(t)
	archived := []*events.Event{
		events.NewEvent("checkout-1", events.CheckoutStartedTopic, map[string]string{"session_id": "s-1"}),
	}

	env.store.EXPECT().GetEvents(mock.Anything, models.ID("checkout-1")).Return(archived, nil).Once()
	rec := env.do(http.MethodGet, "/checkouts/checkout-1/events", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []events.Event
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, events.CheckoutStartedTopic, got[0].Topic)

	env.store.EXPECT().GetEventsByTopic(mock.Anything, events.StepTopics, 20, 10).Return(nil, nil).Once()
	rec = env.do(http.MethodGet, "/events/steps?offset=20&limit=10", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/events/steps?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env.store.EXPECT().GetEvents(mock.Anything, models.ID("checkout-2")).Return(nil, errors.New("database unavailable")).Once()
	rec = env.do(http.MethodGet, "/checkouts/checkout-2/events", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{application.ErrSessionNotFound, http.StatusNotFound},
		{errors.Wrap(domain.ErrCheckoutNotFound, "checkout-1"), http.StatusNotFound},
		{errors.Wrap(application.ErrInvalidAction, "bad"), http.StatusBadRequest},
		{errors.Wrap(models.ErrEmptyID, "invalid checkout ID"), http.StatusBadRequest},
		{errors.Wrap(application.ErrSessionNotReady, "failed to dispatch ready"), http.StatusConflict},
		{application.ErrSessionClosed, http.StatusGone},
		{errors.Wrap(context.DeadlineExceeded, "checkout did not load in time"), http.StatusGatewayTimeout},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}
