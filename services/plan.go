// services/plan.go
package services

import (
	"qrmenu/entity"
)

// Plan policy: pure decisions over a restaurant's tier. The free tier caps
// product count and loses the customer-facing ordering and waiter-call
// features; elite has no limits.

func CanCreateProduct(rest *entity.Restaurant, currentProductCount int64) bool {
	if rest.Plan == entity.PlanElite {
		return true
	}
	return currentProductCount < int64(rest.MaxProducts)
}

func CanUseOrdering(rest *entity.Restaurant) bool {
	return rest.Plan == entity.PlanElite
}

func CanUseWaiterCall(rest *entity.Restaurant) bool {
	return rest.Plan == entity.PlanElite
}
