package controllers

import (
	"fmt"
	"strconv"
	"time"

	"qrmenu/pkg/resp"
	"qrmenu/services"
	"qrmenu/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
	Export  *services.ExportService
}

func NewOrderController(service *services.OrderService, export *services.ExportService) *OrderController {
	return &OrderController{Service: service, Export: export}
}

// GET /api/orders?limit=
func (ctl *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	orders, err := ctl.Service.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	detail, err := ctl.Service.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

// POST /api/orders (public)
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.CreateFromPublic(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// PUT /api/orders/:id
func (ctl *OrderController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.OrderUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.Transition(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /api/orders/export
func (ctl *OrderController) ExportXLSX(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "500"))

	f, err := ctl.Export.OrdersXLSX(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		resp.ServerError(c, err)
	}
}
