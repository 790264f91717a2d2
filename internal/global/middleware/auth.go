package middleware

import (
	"strings"

	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/response"

	"github.com/gin-gonic/gin"
)

// Auth 鉴权中间件
// 不传 roles 表示任意已登录用户；传入 roles 时要求角色命中其中之一
// 角色为封闭集合，管理员与审核员互斥，因此审核区只放行审核员
func Auth(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		payload, valid := jwt.ParseToken(token)
		if !valid {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			allowed := false
			for _, r := range roles {
				if payload.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				response.Fail(c, response.ErrUnauthorized)
				c.Abort()
				return
			}
		}

		c.Set("payload", payload)
		c.Next()
	}
}

// OptionalAuth 公开端点使用：带了有效令牌就注入身份，否则匿名放行
// 列表页的 is_joined / is_liked 标记依赖这里注入的身份
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if payload, valid := jwt.ParseToken(token); valid {
				c.Set("payload", payload)
			}
		}
		c.Next()
	}
}
