package services

import (
	"testing"

	"qrmenu/entity"

	"github.com/stretchr/testify/assert"
)

func TestCanCreateProduct(t *testing.T) {
	tests := []struct {
		name    string
		plan    string
		max     int
		count   int64
		allowed bool
	}{
		{"free_below_limit", entity.PlanFree, 10, 9, true},
		{"free_at_limit", entity.PlanFree, 10, 10, false},
		{"free_over_limit", entity.PlanFree, 10, 25, false},
		{"free_zero_limit", entity.PlanFree, 0, 0, false},
		{"elite_below", entity.PlanElite, 10, 3, true},
		{"elite_at_free_limit", entity.PlanElite, 10, 10, true},
		{"elite_huge_count", entity.PlanElite, 10, 100000, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rest := &entity.Restaurant{Plan: tc.plan, MaxProducts: tc.max}
			assert.Equal(t, tc.allowed, CanCreateProduct(rest, tc.count))
		})
	}
}

func TestFeatureGates(t *testing.T) {
	free := &entity.Restaurant{Plan: entity.PlanFree}
	elite := &entity.Restaurant{Plan: entity.PlanElite}

	assert.False(t, CanUseOrdering(free))
	assert.False(t, CanUseWaiterCall(free))
	assert.True(t, CanUseOrdering(elite))
	assert.True(t, CanUseWaiterCall(elite))
}
