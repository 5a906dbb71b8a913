package infrastructure

import (
	"sync"

	"github.com/draftea/checkout-system/checkout-service/domain"
)

var (
	_ domain.ConsignmentSubscriber = (*ConsignmentHub)(nil)
	_ domain.ConsignmentPublisher  = (*ConsignmentHub)(nil)
)

// ConsignmentHub fans refreshed checkout snapshots out to the sessions subscribed to
// the same checkout
type ConsignmentHub struct {
	mu          sync.RWMutex
	nextID      int
	subscribers map[string]map[int]func(*domain.Checkout)
}

func NewConsignmentHub() *ConsignmentHub {
	return &ConsignmentHub{subscribers: map[string]map[int]func(*domain.Checkout){}}
}

// SubscribeToConsignments registers fn for the checkout. The returned function is
// safe to call more than once.
func (h *ConsignmentHub) SubscribeToConsignments(checkoutID string, fn func(*domain.Checkout)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	if h.subscribers[checkoutID] == nil {
		h.subscribers[checkoutID] = map[int]func(*domain.Checkout){}
	}
	h.subscribers[checkoutID][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			h.unsubscribe(checkoutID, id)
		})
	}
}

func (h *ConsignmentHub) unsubscribe(checkoutID string, id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.subscribers[checkoutID]
	delete(subs, id)
	if len(subs) == 0 {
		delete(h.subscribers, checkoutID)
	}
}

// PublishConsignments delivers the snapshot to every subscriber of its checkout.
// Subscribers are called outside the lock.
func (h *ConsignmentHub) PublishConsignments(checkout *domain.Checkout) {
	if checkout == nil {
		return
	}

	h.mu.RLock()
	fns := make([]func(*domain.Checkout), 0, len(h.subscribers[checkout.ID]))
	for _, fn := range h.subscribers[checkout.ID] {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()

	for _, fn := range fns {
		fn(checkout)
	}
}

// Subscribers returns the number of live subscriptions for the checkout
func (h *ConsignmentHub) Subscribers(checkoutID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[checkoutID])
}
