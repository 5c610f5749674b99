package controllers

import (
	"strconv"

	"qrmenu/pkg/resp"
	"qrmenu/services"
	"qrmenu/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{Service: service}
}

// GET /api/products?categoryId=
func (ctl *ProductController) List(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			resp.BadRequest(c, "categoryId must be numeric")
			return
		}
		u := uint(id)
		categoryID = &u
	}

	products, err := ctl.Service.ListForUser(utils.CurrentUserID(c), categoryID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, products)
}

// POST /api/products
func (ctl *ProductController) Create(c *gin.Context) {
	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	product, err := ctl.Service.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, product)
}

// PUT /api/products/:id
func (ctl *ProductController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.ProductUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	product, err := ctl.Service.Update(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, product)
}

// DELETE /api/products/:id
func (ctl *ProductController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "product deleted"})
}
