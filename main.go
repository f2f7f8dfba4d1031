// @title Quiz Prep 后端 API
// @version 1.0
// @description 刷题练习应用的后端服务：按难度取题、记录答题会话、历史保留与错题回顾。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"quiz_prep_backend/internal/app"
	"quiz_prep_backend/internal/config"
	"quiz_prep_backend/pkg/configwatcher"
	"quiz_prep_backend/pkg/database"
	"quiz_prep_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 迁移模式只连数据库，不碰 Redis/追踪/后台任务
	if *migrateOnly {
		if _, err := database.InitDB(&cfg.Database); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 配置热更新：保留上限和错题策略改了不用重启
	go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)

	application.Run()
}
