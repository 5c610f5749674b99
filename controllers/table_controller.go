package controllers

import (
	"strconv"

	"qrmenu/pkg/resp"
	"qrmenu/services"
	"qrmenu/utils"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	Service *services.TableService
}

func NewTableController(service *services.TableService) *TableController {
	return &TableController{Service: service}
}

// GET /api/tables
func (ctl *TableController) List(c *gin.Context) {
	tables, err := ctl.Service.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, tables)
}

// POST /api/tables
func (ctl *TableController) Create(c *gin.Context) {
	var req services.TableIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	table, err := ctl.Service.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, table)
}

// PUT /api/tables/:id
func (ctl *TableController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.TableUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	table, err := ctl.Service.Update(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, table)
}

// DELETE /api/tables/:id
func (ctl *TableController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "table deleted"})
}

// GET /api/tables/:id/qrcode.png
func (ctl *TableController) QRCodePNG(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	png, err := ctl.Service.QRCodePNG(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.Data(200, "image/png", png)
}
