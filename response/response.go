package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Render 按format参数协商输出格式，默认JSON
// format=xml/csv/jsonp时先经json序列化再转换，保证三种格式看到同一份字段
func Render(c *gin.Context, status int, data any) {
	switch c.Query("format") {
	case "xml":
		renderXML(c, status, data)
	case "csv":
		renderCSV(c, status, data)
	case "jsonp":
		renderJSONP(c, status, data)
	default:
		c.JSON(status, data)
	}
}

// Success 200带协商格式的数据
func Success(c *gin.Context, data any) {
	Render(c, http.StatusOK, data)
}

// Created 201，正文只带新资源的URI
func Created(c *gin.Context, uri string) {
	Render(c, http.StatusCreated, gin.H{"URI": uri})
}

// NoContent 204空正文
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest 400
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// NotFound 404
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

// Error 任意状态码的错误输出
func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"error": msg})
}
