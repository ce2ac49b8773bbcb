package handler

import (
	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

func writeHTML(c *gin.Context, status int, body []byte) {
	c.Data(status, htmlContentType, body)
}

func requestID(c *gin.Context) string {
	if value, exists := c.Get(requestIDContextKey); exists {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
