package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juliasydor/despesas-pessoais/internal/api"
	"github.com/juliasydor/despesas-pessoais/internal/api/controller"
	"github.com/juliasydor/despesas-pessoais/internal/api/middleware"
	"github.com/juliasydor/despesas-pessoais/internal/config"
	"github.com/juliasydor/despesas-pessoais/internal/infrastructure/database"
	"github.com/juliasydor/despesas-pessoais/internal/repository"
	"github.com/juliasydor/despesas-pessoais/internal/service"
	"github.com/juliasydor/despesas-pessoais/internal/token"
)

// @title           Despesas API
// @version         1.0
// @description     个人记账后端：注册/登录 + 支出记录的增删改查

// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 请输入 "Bearer <token>" (注意 Bearer 和 token 之间有空格)

func main() {
	// 1. 初始化 Logger，JSON 格式方便采集
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	conf, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "err", err)
		os.Exit(1)
	}

	// 2. Infra Initialization
	db, err := database.NewMySQLConnection(conf.Database.DSN) // 这里会自动建表
	if err != nil {
		slog.Error("init database failed", "err", err)
		os.Exit(1)
	}

	if conf.JWT.Secret == "secret" {
		slog.Warn("using default jwt secret, do not run this in production")
	}
	issuer := token.NewIssuer(conf.JWT.Secret, time.Duration(conf.JWT.ExpireHours)*time.Hour)

	// 3. Layer Wiring (依赖注入)
	userRepo := repository.NewUserRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)
	authCtrl := controller.NewAuthController(service.NewAuthService(userRepo, issuer))
	expenseCtrl := controller.NewExpenseController(service.NewExpenseService(expenseRepo))

	// 4. Server Start
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(middleware.Cors())
	api.RegisterRoutes(r, issuer, authCtrl, expenseCtrl)

	slog.Info("server starting", "port", conf.Server.Port)
	if err := r.Run(conf.Server.Port); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
