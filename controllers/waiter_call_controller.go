package controllers

import (
	"strconv"

	"qrmenu/pkg/resp"
	"qrmenu/services"
	"qrmenu/utils"

	"github.com/gin-gonic/gin"
)

type WaiterCallController struct {
	Service *services.WaiterCallService
}

func NewWaiterCallController(service *services.WaiterCallService) *WaiterCallController {
	return &WaiterCallController{Service: service}
}

// GET /api/waiter-calls?status=
func (ctl *WaiterCallController) List(c *gin.Context) {
	calls, err := ctl.Service.ListForUser(utils.CurrentUserID(c), c.Query("status"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, calls)
}

// POST /api/waiter-calls (public)
func (ctl *WaiterCallController) Create(c *gin.Context) {
	var req services.CreateWaiterCallReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	call, err := ctl.Service.CreateFromPublic(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, call)
}

// PUT /api/waiter-calls/:id
func (ctl *WaiterCallController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.WaiterCallUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	call, err := ctl.Service.Transition(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, call)
}
