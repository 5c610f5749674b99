package controllers

import (
	"strconv"

	"qrmenu/pkg/resp"
	"qrmenu/services"
	"qrmenu/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(service *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: service}
}

// GET /api/restaurant
func (ctl *RestaurantController) Get(c *gin.Context) {
	rest, err := ctl.Service.GetForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// POST /api/restaurant
func (ctl *RestaurantController) Create(c *gin.Context) {
	var req services.RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Service.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rest)
}

// PUT /api/restaurant/:id
func (ctl *RestaurantController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.RestaurantUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Service.Update(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// DELETE /api/restaurant/:id
func (ctl *RestaurantController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "restaurant deleted"})
}

// GET /api/dashboard/stats
func (ctl *RestaurantController) DashboardStats(c *gin.Context) {
	stats, err := ctl.Service.DashboardStats(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, stats)
}
