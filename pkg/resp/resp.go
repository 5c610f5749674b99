package resp

import (
	"errors"
	"net/http"

	"qrmenu/services"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Error maps a service error onto the wire. Ownership failures and absent
// rows are deliberately the same 404; limit/plan/setup errors carry machine
// codes so the dashboard can react.
func Error(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{
			"ok": false, "error": ve.Message, "field": ve.Field,
		})
	case errors.Is(err, services.ErrNotFound):
		NotFound(c, "not found")
	case errors.Is(err, services.ErrSetupRequired):
		c.JSON(http.StatusNotFound, gin.H{
			"ok": false, "error": "restaurant not set up yet", "code": "SETUP_REQUIRED",
		})
	case errors.Is(err, services.ErrLimitReached):
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":    false,
			"error": "Product limit reached. Upgrade to Elite plan to add more products.",
			"code":  "PRODUCT_LIMIT_REACHED",
		})
	case errors.Is(err, services.ErrPlanRequired):
		c.JSON(http.StatusForbidden, gin.H{
			"ok": false, "error": "feature requires the elite plan", "code": "PLAN_UPGRADE_REQUIRED",
		})
	case errors.Is(err, services.ErrInvalidTransition):
		BadRequest(c, err.Error())
	default:
		ServerError(c, err)
	}
}
