package domain

// HasSelectedShippingOptions reports whether every consignment has a chosen shipping
// option. An empty list has nothing left to choose.
func HasSelectedShippingOptions(consignments []Consignment) bool {
	for _, c := range consignments {
		if c.SelectedShippingOption == nil || c.SelectedShippingOption.ID == "" {
			return false
		}
	}
	return true
}

// IsUsingMultiShipping reports whether the physical items are split across consignments.
// A single consignment counts as multi-shipping when it leaves out any physical item
// the shopper added.
func IsUsingMultiShipping(consignments []Consignment, lineItems LineItems) bool {
	switch len(consignments) {
	case 0:
		return false
	case 1:
	default:
		return true
	}

	covered := make(map[string]struct{}, len(consignments[0].LineItemIDs))
	for _, id := range consignments[0].LineItemIDs {
		covered[id] = struct{}{}
	}

	for _, item := range lineItems.PhysicalItems {
		if item.AddedByPromotion {
			continue
		}
		if _, ok := covered[item.ID]; !ok {
			return true
		}
	}
	return false
}
