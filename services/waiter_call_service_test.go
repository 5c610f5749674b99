package services

import (
	"testing"

	"qrmenu/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaiterCall_FreePlanRejected(t *testing.T) {
	f := newFixture(t)
	_, rest := f.tenant(t, "owner@a.test", entity.PlanFree, 10)

	_, err := f.calls.CreateFromPublic(&CreateWaiterCallReq{RestaurantID: rest.ID, Message: "water"})
	assert.ErrorIs(t, err, ErrPlanRequired)
}

func TestWaiterCall_CreateStartsPending(t *testing.T) {
	f := newFixture(t)
	user, rest := f.tenant(t, "owner@a.test", entity.PlanElite, 10)

	table, err := f.tables.Create(user.ID, &TableIn{Name: "Masa 1"})
	require.NoError(t, err)

	call, err := f.calls.CreateFromPublic(&CreateWaiterCallReq{
		RestaurantID: rest.ID,
		TableID:      &table.ID,
		Message:      "check please",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CallPending, call.Status)
}

func TestWaiterCall_RejectsForeignTable(t *testing.T) {
	f := newFixture(t)
	_, restA := f.tenant(t, "a@x.test", entity.PlanElite, 10)
	userB, _ := f.tenant(t, "b@x.test", entity.PlanElite, 10)

	theirTable, err := f.tables.Create(userB.ID, &TableIn{Name: "B1"})
	require.NoError(t, err)

	_, err = f.calls.CreateFromPublic(&CreateWaiterCallReq{
		RestaurantID: restA.ID,
		TableID:      &theirTable.ID,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWaiterCallTransitions(t *testing.T) {
	f := newFixture(t)
	user, rest := f.tenant(t, "owner@a.test", entity.PlanElite, 10)

	newCall := func() *entity.WaiterCall {
		call, err := f.calls.CreateFromPublic(&CreateWaiterCallReq{RestaurantID: rest.ID})
		require.NoError(t, err)
		return call
	}

	responded := entity.CallResponded
	resolved := entity.CallResolved
	pending := entity.CallPending

	// pending -> responded -> resolved
	call := newCall()
	updated, err := f.calls.Transition(user.ID, call.ID, &WaiterCallUpdate{Status: &responded})
	require.NoError(t, err)
	assert.Equal(t, entity.CallResponded, updated.Status)
	updated, err = f.calls.Transition(user.ID, call.ID, &WaiterCallUpdate{Status: &resolved})
	require.NoError(t, err)
	assert.Equal(t, entity.CallResolved, updated.Status)

	// pending -> resolved directly
	call = newCall()
	updated, err = f.calls.Transition(user.ID, call.ID, &WaiterCallUpdate{Status: &resolved})
	require.NoError(t, err)
	assert.Equal(t, entity.CallResolved, updated.Status)

	// resolved is terminal
	_, err = f.calls.Transition(user.ID, call.ID, &WaiterCallUpdate{Status: &responded})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// no backtracking to pending
	call = newCall()
	_, err = f.calls.Transition(user.ID, call.ID, &WaiterCallUpdate{Status: &responded})
	require.NoError(t, err)
	_, err = f.calls.Transition(user.ID, call.ID, &WaiterCallUpdate{Status: &pending})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// restating the current status is not a transition
	_, err = f.calls.Transition(user.ID, call.ID, &WaiterCallUpdate{Status: &responded})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	call = newCall()
	_, err = f.calls.Transition(user.ID, call.ID, &WaiterCallUpdate{Status: &pending})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestWaiterCallList_StatusFilter(t *testing.T) {
	f := newFixture(t)
	user, rest := f.tenant(t, "owner@a.test", entity.PlanElite, 10)

	for i := 0; i < 3; i++ {
		_, err := f.calls.CreateFromPublic(&CreateWaiterCallReq{RestaurantID: rest.ID})
		require.NoError(t, err)
	}
	all, err := f.calls.ListForUser(user.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	responded := entity.CallResponded
	_, err = f.calls.Transition(user.ID, all[0].ID, &WaiterCallUpdate{Status: &responded})
	require.NoError(t, err)

	pendingOnly, err := f.calls.ListForUser(user.ID, entity.CallPending)
	require.NoError(t, err)
	assert.Len(t, pendingOnly, 2)
}

func TestWaiterCallTransition_CrossTenantIsNotFound(t *testing.T) {
	f := newFixture(t)
	userA, _ := f.tenant(t, "a@x.test", entity.PlanElite, 10)
	_, restB := f.tenant(t, "b@x.test", entity.PlanElite, 10)

	call, err := f.calls.CreateFromPublic(&CreateWaiterCallReq{RestaurantID: restB.ID})
	require.NoError(t, err)

	responded := entity.CallResponded
	_, err = f.calls.Transition(userA.ID, call.ID, &WaiterCallUpdate{Status: &responded})
	assert.ErrorIs(t, err, ErrNotFound)
}
