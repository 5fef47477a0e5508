package middleware

import (
	"cybit_edu/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxClientIDLength = 64

// ClientID 没有登录体系，客户端通过 X-Client-ID 请求头标识自己。
// 缺失或不合法时生成新的 ID，并在响应头中返回给客户端保存。
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(util.ClientIDHeader))
		if !validClientID(id) {
			id = uuid.New().String()
		}
		c.Set(util.ClientIDKey, id)
		c.Header(util.ClientIDHeader, id)
		c.Next()
	}
}

func validClientID(id string) bool {
	if id == "" || len(id) > maxClientIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// GetClientID 未经过中间件时返回空字符串
func GetClientID(c *gin.Context) string {
	return c.GetString(util.ClientIDKey)
}
