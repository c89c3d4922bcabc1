package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juliasydor/despesas-pessoais/internal/api/controller"
	"github.com/juliasydor/despesas-pessoais/internal/api/middleware"
	"github.com/juliasydor/despesas-pessoais/internal/token"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/juliasydor/despesas-pessoais/docs"
)

// route 路由表的一行，public 标记是否跳过鉴权
type route struct {
	method  string
	path    string
	public  bool
	handler gin.HandlerFunc
}

// RegisterRoutes 注册所有路由
// 用显式路由表代替分组：每条路由自带 public 标记，注册时统一决定是否挂鉴权中间件
func RegisterRoutes(r *gin.Engine, issuer *token.Issuer, authCtrl *controller.AuthController, expenseCtrl *controller.ExpenseController) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := middleware.Auth(issuer)

	routes := []route{
		{http.MethodPost, "/auth/sign-up", true, authCtrl.SignUp},
		{http.MethodPost, "/auth/sign-in", true, authCtrl.SignIn},
		{http.MethodPost, "/expenses", false, expenseCtrl.Create},
		{http.MethodGet, "/expenses", false, expenseCtrl.List},
		{http.MethodGet, "/expenses/:id", false, expenseCtrl.Get},
		{http.MethodPatch, "/expenses/:id", false, expenseCtrl.Update},
		{http.MethodDelete, "/expenses/:id", false, expenseCtrl.Delete},
	}

	for _, rt := range routes {
		if rt.public {
			r.Handle(rt.method, rt.path, rt.handler)
		} else {
			r.Handle(rt.method, rt.path, auth, rt.handler)
		}
	}
}
