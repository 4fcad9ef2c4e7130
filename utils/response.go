// file: utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: msg, Data: data})
}

func Error(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, Response{Code: code, Msg: msg})
}

// ValidationError returns a field-level error list alongside the envelope code.
func ValidationError(c *gin.Context, code int, msg string, fields interface{}) {
	c.JSON(http.StatusOK, Response{Code: code, Msg: msg, Data: gin.H{"fields": fields}})
}
