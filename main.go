// @title Cybit Edu 后端 API
// @version 1.0
// @description Cybit Edu 学习平台的后端服务：课程目录、课时播放、视频测验、代码练习场与管理端统计。
// @description 没有登录体系，客户端通过 X-Client-ID 请求头标识自己。

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

package main

import (
	"cybit_edu/internal/app"
	"cybit_edu/internal/config"
	"cybit_edu/pkg/logger"
	"flag"
	"log"
	"path/filepath"

	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	forceSeed := flag.Bool("force-seed", false, "即使数据库已有课程也重新导入课程数据")
	seedOnly := flag.Bool("seed-only", false, "只执行迁移和课程导入，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.ForceSeed = *forceSeed

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *seedOnly {
		application.Close()
		log.Println("课程数据导入完成，退出程序")
		return
	}

	application.ConfigFile = filepath.Join(*configDir, "config.yaml")
	if err := application.Run(); err != nil {
		logger.Log.Error("Server stopped with error", zap.Error(err))
	}
}
