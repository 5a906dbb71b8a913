package domain

// FeatureBuyNowCart toggles the buy-now order confirmation route
const FeatureBuyNowCart = "CHECKOUT-3190.enable_buy_now_cart"

// FlashMessageError is the flash message type surfaced as a blocking error
const FlashMessageError = "error"

// Checkout is the snapshot of a checkout as returned by the loader and pushed by the
// consignment subscription
type Checkout struct {
	ID             string         `json:"id"`
	Cart           *Cart          `json:"cart,omitempty"`
	Consignments   []Consignment  `json:"consignments,omitempty"`
	BillingAddress *Address       `json:"billing_address,omitempty"`
	Customer       *Customer      `json:"customer,omitempty"`
	FlashMessages  []FlashMessage `json:"flash_messages,omitempty"`
	Config         *Config        `json:"config,omitempty"`
}

type Cart struct {
	ID        string    `json:"id"`
	LineItems LineItems `json:"line_items"`
}

type LineItems struct {
	PhysicalItems []LineItem `json:"physical_items,omitempty"`
	DigitalItems  []LineItem `json:"digital_items,omitempty"`
}

type LineItem struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Brand            string   `json:"brand,omitempty"`
	Quantity         int      `json:"quantity"`
	CategoryNames    []string `json:"category_names,omitempty"`
	AddedByPromotion bool     `json:"added_by_promotion,omitempty"`
}

// Consignment groups line items shipped together with one shipping option choice
type Consignment struct {
	ID                       string           `json:"id"`
	LineItemIDs              []string         `json:"line_item_ids"`
	ShippingAddress          *Address         `json:"shipping_address,omitempty"`
	SelectedShippingOption   *ShippingOption  `json:"selected_shipping_option,omitempty"`
	AvailableShippingOptions []ShippingOption `json:"available_shipping_options,omitempty"`
}

type ShippingOption struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type Address struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email,omitempty"`
	Address1    string `json:"address1"`
	City        string `json:"city"`
	CountryCode string `json:"country_code"`
	PostalCode  string `json:"postal_code"`
}

// IsComplete reports whether the address carries every mandatory field
func (a *Address) IsComplete() bool {
	return a != nil &&
		a.FirstName != "" &&
		a.LastName != "" &&
		a.Address1 != "" &&
		a.City != "" &&
		a.CountryCode != "" &&
		a.PostalCode != ""
}

type Customer struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	IsGuest bool   `json:"is_guest"`
}

type FlashMessage struct {
	Type    string `json:"type"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
}

type Config struct {
	Links            Links            `json:"links"`
	CheckoutSettings CheckoutSettings `json:"checkout_settings"`
}

type Links struct {
	SiteLink          string `json:"site_link"`
	LoginLink         string `json:"login_link"`
	CreateAccountLink string `json:"create_account_link"`
	CartLink          string `json:"cart_link"`
}

type CheckoutSettings struct {
	HasMultiShippingEnabled              bool            `json:"has_multi_shipping_enabled"`
	CheckoutBillingSameAsShippingEnabled *bool           `json:"checkout_billing_same_as_shipping_enabled,omitempty"`
	IsGuestEnabled                       bool            `json:"is_guest_enabled"`
	CanCreateAccountInCheckout           bool            `json:"can_create_account_in_checkout"`
	Features                             map[string]bool `json:"features,omitempty"`
}

// BillingSameAsShipping defaults to true when the store does not say otherwise
func (s CheckoutSettings) BillingSameAsShipping() bool {
	if s.CheckoutBillingSameAsShippingEnabled == nil {
		return true
	}
	return *s.CheckoutBillingSameAsShippingEnabled
}

func (s CheckoutSettings) IsFeatureEnabled(key string) bool {
	return s.Features[key]
}

// Settings returns the checkout settings, zero valued when no config was loaded
func (c *Checkout) Settings() CheckoutSettings {
	if c == nil || c.Config == nil {
		return CheckoutSettings{}
	}
	return c.Config.CheckoutSettings
}

// Links returns the store links, zero valued when no config was loaded
func (c *Checkout) Links() Links {
	if c == nil || c.Config == nil {
		return Links{}
	}
	return c.Config.Links
}

// ErrorFlashMessages returns the queued flash messages of the error class
func (c *Checkout) ErrorFlashMessages() []FlashMessage {
	if c == nil {
		return nil
	}
	var res []FlashMessage
	for _, msg := range c.FlashMessages {
		if msg.Type == FlashMessageError {
			res = append(res, msg)
		}
	}
	return res
}

// HasPhysicalItems reports whether anything in the cart has to be shipped
func (c *Checkout) HasPhysicalItems() bool {
	return c != nil && c.Cart != nil && len(c.Cart.LineItems.PhysicalItems) > 0
}

// LoadOptions describes what the loader should include in the snapshot
type LoadOptions struct {
	Include []string
}

const (
	IncludePhysicalItemCategories = "cart.lineItems.physicalItems.categoryNames"
	IncludeDigitalItemCategories  = "cart.lineItems.digitalItems.categoryNames"
)

// DefaultLoadOptions requests line item category data for both item kinds
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Include: []string{
			IncludePhysicalItemCategories,
			IncludeDigitalItemCategories,
		},
	}
}

// Includes reports whether the given include path was requested
func (o LoadOptions) Includes(path string) bool {
	for _, inc := range o.Include {
		if inc == path {
			return true
		}
	}
	return false
}
