package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/juliasydor/despesas-pessoais/internal/api/response"
	"github.com/juliasydor/despesas-pessoais/internal/token"
)

// Context key，下游 Handler 通过它拿当前登录用户
const (
	CtxUserID   = "userID"
	CtxUsername = "username"
)

// Auth 校验 Bearer Token 的中间件
// 缺失、格式错误、签名无效、过期统一返回 401，不会进入业务 Handler
func Auth(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AbortError(c, http.StatusUnauthorized, "authorization header required")
			return
		}

		// 格式通常是 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.AbortError(c, http.StatusUnauthorized, "invalid authorization format")
			return
		}

		claims, err := issuer.Parse(parts[1])
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		// 提取 Claims 并注入 Context
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Next()
	}
}
