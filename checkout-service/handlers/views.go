package handlers

import (
	"github.com/draftea/checkout-system/checkout-service/application"
	"github.com/draftea/checkout-system/checkout-service/domain"
)

// SessionView is the JSON shape of a session snapshot
type SessionView struct {
	SessionID        string           `json:"session_id"`
	CheckoutID       string           `json:"checkout_id"`
	Version          int64            `json:"version"`
	IsLoaded         bool             `json:"is_loaded"`
	IsEmbedded       bool             `json:"is_embedded"`
	CurrentStep      string           `json:"current_step,omitempty"`
	CustomerViewType string           `json:"customer_view_type"`
	Steps            []StepView       `json:"steps"`
	State            StateView        `json:"state"`
	Error            *ErrorView       `json:"error,omitempty"`
	Branding         *BrandingView    `json:"branding,omitempty"`
	Redirect         *domain.Redirect `json:"redirect,omitempty"`
	Styles           domain.Styles    `json:"styles,omitempty"`
}

// BrandingView is the header of a branded checkout
type BrandingView struct {
	Site    string `json:"site"`
	SiteURL string `json:"site_url"`
	LogoURL string `json:"logo_url,omitempty"`
	CartURL string `json:"cart_url"`
}

func NewBrandingView(b *domain.Branding) *BrandingView {
	if b == nil {
		return nil
	}
	return &BrandingView{
		Site:    b.Site,
		SiteURL: b.SiteURL,
		LogoURL: b.LogoURL,
		CartURL: b.CartURL(),
	}
}

type StepView struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	IsRequired bool   `json:"is_required"`
	IsActive   bool   `json:"is_active"`
	IsComplete bool   `json:"is_complete"`
	IsEditable bool   `json:"is_editable"`
	IsCurrent  bool   `json:"is_current"`
}

type StateView struct {
	ActiveStepType             string `json:"active_step_type,omitempty"`
	DefaultStepType            string `json:"default_step_type,omitempty"`
	IsMultiShippingMode        bool   `json:"is_multi_shipping_mode"`
	IsBillingSameAsShipping    bool   `json:"is_billing_same_as_shipping"`
	HasSelectedShippingOptions bool   `json:"has_selected_shipping_options"`
	IsBuyNowCartEnabled        bool   `json:"is_buy_now_cart_enabled"`
	IsCartEmpty                bool   `json:"is_cart_empty"`
	IsRedirecting              bool   `json:"is_redirecting"`
	IsViewMounted              bool   `json:"is_view_mounted"`
}

// ErrorView renders custom errors with their own heading
type ErrorView struct {
	Kind    string `json:"kind"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
}

func NewErrorView(err error) *ErrorView {
	if err == nil {
		return nil
	}
	return &ErrorView{
		Kind:    domain.ErrorKind(err),
		Title:   domain.ErrorTitle(err),
		Message: err.Error(),
	}
}

// NewSessionView renders a snapshot
func NewSessionView(s *application.Snapshot) *SessionView {
	state := s.State
	view := &SessionView{
		SessionID:        s.SessionID,
		CheckoutID:       s.CheckoutID,
		Version:          s.Version,
		IsLoaded:         s.IsLoaded,
		IsEmbedded:       s.IsEmbedded,
		CurrentStep:      s.CurrentStep.String(),
		CustomerViewType: string(s.CustomerViewType),
		Steps:            make([]StepView, 0, len(s.Steps)),
		State: StateView{
			ActiveStepType:             state.ActiveStepType.String(),
			DefaultStepType:            state.DefaultStepType.String(),
			IsMultiShippingMode:        state.IsMultiShippingMode,
			IsBillingSameAsShipping:    state.IsBillingSameAsShipping,
			HasSelectedShippingOptions: state.HasSelectedShippingOptions,
			IsBuyNowCartEnabled:        state.IsBuyNowCartEnabled,
			IsCartEmpty:                state.IsCartEmpty,
			IsRedirecting:              state.IsRedirecting,
			IsViewMounted:              state.IsViewMounted,
		},
		Error:    NewErrorView(state.Error),
		Branding: NewBrandingView(state.Branding),
		Redirect: s.Redirect,
		Styles:   s.Styles,
	}

	titles := stepTitles{}
	for _, step := range s.Steps {
		title, err := domain.VisitStep[string](step, titles)
		if err != nil {
			continue
		}
		view.Steps = append(view.Steps, StepView{
			Type:       step.Type.String(),
			Title:      title,
			IsRequired: step.IsRequired,
			IsActive:   step.IsActive,
			IsComplete: step.IsComplete,
			IsEditable: step.IsEditable,
			IsCurrent:  step.Type == s.CurrentStep,
		})
	}
	return view
}

type stepTitles struct{}

func (stepTitles) VisitCustomer(domain.Step) string { return "Customer" }
func (stepTitles) VisitShipping(domain.Step) string { return "Shipping" }
func (stepTitles) VisitBilling(domain.Step) string  { return "Billing" }
func (stepTitles) VisitPayment(domain.Step) string  { return "Payment" }
