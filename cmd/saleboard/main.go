package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"saleboard/internal/config"
	"saleboard/internal/importer"
	"saleboard/internal/server"
	"saleboard/internal/service/board"
	"saleboard/internal/service/excel"
	"saleboard/internal/store"
	"saleboard/internal/util"
)

var (
	port     = flag.Int("port", 0, "服务端口 (覆盖配置文件)")
	devMode  = flag.Bool("dev", false, "开发模式")
	dataDir  = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
	watchDir = flag.String("watchDir", "", "统计文件自动检测目录 (覆盖配置文件)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Saleboard - 销售积分红黑榜系统")
	fmt.Println("==========================================")

	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}

	// 命令行参数覆盖配置
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	if *watchDir != "" {
		cfg.Watch.Dir = *watchDir
	}

	// 确保数据目录存在
	if dir, err := config.EnsureDataDir(cfg); err != nil {
		log.Printf("创建数据目录失败: %v", err)
	} else {
		fmt.Printf("数据目录: %s\n", dir)
	}

	session := store.NewSession()
	coordinator := importer.NewCoordinator(session, board.Weights{
		Sales:   cfg.Business.SalesWeight,
		Payment: cfg.Business.PaymentWeight,
	})

	// 自动检测最新统计文件并载入
	watch := cfg.Watch.Dir
	if watch == "" {
		watch, _ = os.Getwd()
	}
	if path, err := excel.DetectLatestFile(watch, cfg.Watch.Pattern); err != nil {
		log.Printf("检测统计文件失败: %v", err)
	} else if path != "" {
		fmt.Printf("检测到统计文件: %s\n", path)
		if report, err := coordinator.IngestFile(path); err != nil {
			log.Printf("自动载入失败: %v", err)
		} else {
			fmt.Printf("已载入 %s（%d 名员工，%d 个小组）\n", report.PeriodKey, report.Rows, report.Teams)
		}
	}

	// 创建服务器
	srv := server.NewServer(cfg, session, coordinator)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	// 启动服务器
	go func() {
		fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 打开浏览器
	if !cfg.Server.DevMode {
		fmt.Printf("正在打开浏览器: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("无法自动打开浏览器，请手动访问: %s\n", url)
		}
	} else {
		fmt.Printf("开发模式: 请访问 %s\n", url)
	}

	fmt.Println("\n按 Ctrl+C 停止服务...")

	// 等待信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n服务已停止")
}
