package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every handler answers with the same envelope: {"status":"success", ...}
// or {"status":"error","message":...}.

func payload(extra gin.H) gin.H {
	out := gin.H{"status": "success"}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func OK(c *gin.Context, extra gin.H) {
	c.JSON(http.StatusOK, payload(extra))
}
func Created(c *gin.Context, extra gin.H) {
	c.JSON(http.StatusCreated, payload(extra))
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
}
