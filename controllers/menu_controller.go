package controllers

import (
	"qrmenu/pkg/resp"
	"qrmenu/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// GET /api/menu/:qrCode (public)
func (ctl *MenuController) ByQRCode(c *gin.Context) {
	menu, err := ctl.Service.ByQRCode(c.Param("qrCode"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, menu)
}
