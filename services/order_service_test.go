package services

import (
	"testing"

	"qrmenu/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) placeOrder(t *testing.T, rest *entity.Restaurant, p *entity.Product) *entity.Order {
	t.Helper()

	order, err := f.orders.CreateFromPublic(&CreateOrderReq{
		RestaurantID: rest.ID,
		CustomerName: "Walk-in",
		TotalAmount:  price("9.00"),
		Items: []OrderItemIn{
			{ProductID: p.ID, Quantity: 2, UnitPrice: price("4.50"), TotalPrice: price("9.00")},
		},
	})
	require.NoError(t, err)
	return order
}

func TestOrderCreate_StartsPending(t *testing.T) {
	f := newFixture(t)
	_, rest := f.tenant(t, "owner@a.test", entity.PlanElite, 10)
	p := f.product(t, rest.ID, "Soup", 4.50)

	order := f.placeOrder(t, rest, p)

	assert.Equal(t, entity.OrderPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(price("9.00")))

	items, err := f.orderRepo.Items(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	// snapshots are stored as submitted, not recomputed later
	assert.True(t, items[0].UnitPrice.Equal(price("4.50")))
	assert.True(t, items[0].TotalPrice.Equal(price("9.00")))
	assert.Equal(t, 2, items[0].Quantity)
}

func TestOrderCreate_FreePlanRejected(t *testing.T) {
	f := newFixture(t)
	_, rest := f.tenant(t, "owner@a.test", entity.PlanFree, 10)
	p := f.product(t, rest.ID, "Soup", 4.50)

	_, err := f.orders.CreateFromPublic(&CreateOrderReq{
		RestaurantID: rest.ID,
		TotalAmount:  price("4.50"),
		Items:        []OrderItemIn{{ProductID: p.ID, Quantity: 1, UnitPrice: price("4.50"), TotalPrice: price("4.50")}},
	})
	assert.ErrorIs(t, err, ErrPlanRequired)
}

func TestOrderCreate_RejectsForeignProducts(t *testing.T) {
	f := newFixture(t)
	_, restA := f.tenant(t, "a@x.test", entity.PlanElite, 10)
	_, restB := f.tenant(t, "b@x.test", entity.PlanElite, 10)
	foreign := f.product(t, restB.ID, "Their Dish", 7.00)

	_, err := f.orders.CreateFromPublic(&CreateOrderReq{
		RestaurantID: restA.ID,
		TotalAmount:  price("7.00"),
		Items:        []OrderItemIn{{ProductID: foreign.ID, Quantity: 1, UnitPrice: price("7.00"), TotalPrice: price("7.00")}},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderCreate_Validation(t *testing.T) {
	f := newFixture(t)
	_, rest := f.tenant(t, "owner@a.test", entity.PlanElite, 10)
	p := f.product(t, rest.ID, "Soup", 4.50)

	tests := []struct {
		name string
		req  CreateOrderReq
	}{
		{"no_items", CreateOrderReq{RestaurantID: rest.ID, TotalAmount: price("1.00")}},
		{"zero_quantity", CreateOrderReq{
			RestaurantID: rest.ID, TotalAmount: price("1.00"),
			Items: []OrderItemIn{{ProductID: p.ID, Quantity: 0, UnitPrice: price("1.00"), TotalPrice: price("1.00")}},
		}},
		{"negative_total", CreateOrderReq{
			RestaurantID: rest.ID, TotalAmount: price("-1.00"),
			Items: []OrderItemIn{{ProductID: p.ID, Quantity: 1, UnitPrice: price("1.00"), TotalPrice: price("1.00")}},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.orders.CreateFromPublic(&tc.req)
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestOrderCreate_UnknownRestaurant(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.CreateFromPublic(&CreateOrderReq{
		RestaurantID: 9999,
		TotalAmount:  price("1.00"),
		Items:        []OrderItemIn{{ProductID: 1, Quantity: 1, UnitPrice: price("1.00"), TotalPrice: price("1.00")}},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderTransitions_HappyPath(t *testing.T) {
	f := newFixture(t)
	user, rest := f.tenant(t, "owner@a.test", entity.PlanElite, 10)
	p := f.product(t, rest.ID, "Soup", 4.50)
	order := f.placeOrder(t, rest, p)

	for _, next := range []string{entity.OrderPreparing, entity.OrderReady, entity.OrderCompleted} {
		updated, err := f.orders.Transition(user.ID, order.ID, &OrderUpdate{Status: &next})
		require.NoError(t, err, "transition to %s", next)
		assert.Equal(t, next, updated.Status)
	}
}

func TestOrderTransitions_CancelFromPendingOnly(t *testing.T) {
	f := newFixture(t)
	user, rest := f.tenant(t, "owner@a.test", entity.PlanElite, 10)
	p := f.product(t, rest.ID, "Soup", 4.50)

	cancel := entity.OrderCancelled

	order := f.placeOrder(t, rest, p)
	updated, err := f.orders.Transition(user.ID, order.ID, &OrderUpdate{Status: &cancel})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, updated.Status)

	// once preparing, cancel is no longer reachable
	other := f.placeOrder(t, rest, p)
	preparing := entity.OrderPreparing
	_, err = f.orders.Transition(user.ID, other.ID, &OrderUpdate{Status: &preparing})
	require.NoError(t, err)
	_, err = f.orders.Transition(user.ID, other.ID, &OrderUpdate{Status: &cancel})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOrderTransitions_NoSkipsNoBacktracking(t *testing.T) {
	f := newFixture(t)
	user, rest := f.tenant(t, "owner@a.test", entity.PlanElite, 10)
	p := f.product(t, rest.ID, "Soup", 4.50)

	tests := []struct {
		name string
		walk []string // applied first, must succeed
		to   string   // then rejected
	}{
		{"pending_to_ready", nil, entity.OrderReady},
		{"pending_restated", nil, entity.OrderPending},
		{"preparing_restated", []string{entity.OrderPreparing}, entity.OrderPreparing},
		{"pending_to_completed", nil, entity.OrderCompleted},
		{"preparing_back_to_pending", []string{entity.OrderPreparing}, entity.OrderPending},
		{"ready_back_to_preparing", []string{entity.OrderPreparing, entity.OrderReady}, entity.OrderPreparing},
		{"completed_is_terminal", []string{entity.OrderPreparing, entity.OrderReady, entity.OrderCompleted}, entity.OrderPreparing},
		{"cancelled_is_terminal", []string{entity.OrderCancelled}, entity.OrderPreparing},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			order := f.placeOrder(t, rest, p)
			for _, step := range tc.walk {
				s := step
				_, err := f.orders.Transition(user.ID, order.ID, &OrderUpdate{Status: &s})
				require.NoError(t, err)
			}
			to := tc.to
			_, err := f.orders.Transition(user.ID, order.ID, &OrderUpdate{Status: &to})
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestOrderTransition_CrossTenantIsNotFound(t *testing.T) {
	f := newFixture(t)
	userA, _ := f.tenant(t, "a@x.test", entity.PlanElite, 10)
	_, restB := f.tenant(t, "b@x.test", entity.PlanElite, 10)
	p := f.product(t, restB.ID, "Their Dish", 7.00)
	order := f.placeOrder(t, restB, p)

	preparing := entity.OrderPreparing
	_, err := f.orders.Transition(userA.ID, order.ID, &OrderUpdate{Status: &preparing})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.orders.DetailForUser(userA.ID, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderUpdate_NotesOnly(t *testing.T) {
	f := newFixture(t)
	user, rest := f.tenant(t, "owner@a.test", entity.PlanElite, 10)
	p := f.product(t, rest.ID, "Soup", 4.50)
	order := f.placeOrder(t, rest, p)

	notes := "no onions"
	updated, err := f.orders.Transition(user.ID, order.ID, &OrderUpdate{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "no onions", updated.Notes)
	assert.Equal(t, entity.OrderPending, updated.Status)
}
