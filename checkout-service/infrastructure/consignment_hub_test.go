package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draftea/checkout-system/checkout-service/domain"
)

func TestConsignmentHub(t *testing.T) {
	hub := NewConsignmentHub()

	var first, second, other []*domain.Checkout
	unsubscribeFirst := hub.SubscribeToConsignments("checkout-1", func(c *domain.Checkout) { first = append(first, c) })
	hub.SubscribeToConsignments("checkout-1", func(c *domain.Checkout) { second = append(second, c) })
	hub.SubscribeToConsignments("checkout-2", func(c *domain.Checkout) { other = append(other, c) })
	assert.Equal(t, 2, hub.Subscribers("checkout-1"))

	snapshot := &domain.Checkout{ID: "checkout-1"}
	hub.PublishConsignments(snapshot)
	assert.Equal(t, []*domain.Checkout{snapshot}, first)
	assert.Equal(t, []*domain.Checkout{snapshot}, second)
	assert.Empty(t, other)

	unsubscribeFirst()
	unsubscribeFirst()
	assert.Equal(t, 1, hub.Subscribers("checkout-1"))

	hub.PublishConsignments(snapshot)
	hub.PublishConsignments(nil)
	assert.Len(t, first, 1)
	assert.Len(t, second, 2)
}

func TestConsignmentHub_SubscriberMayUnsubscribeWhileDelivered(t *testing.T) {
	hub := NewConsignmentHub()

	var unsubscribe func()
	calls := 0
	unsubscribe = hub.SubscribeToConsignments("checkout-1", func(*domain.Checkout) {
		calls++
		unsubscribe()
	})

	hub.PublishConsignments(&domain.Checkout{ID: "checkout-1"})
	hub.PublishConsignments(&domain.Checkout{ID: "checkout-1"})

	assert.Equal(t, 1, calls)
	assert.Zero(t, hub.Subscribers("checkout-1"))
}
