package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saleboard/internal/api"
	"saleboard/internal/config"
	"saleboard/internal/importer"
	"saleboard/internal/store"
)

// Server HTTP服务器
type Server struct {
	router  *gin.Engine
	session *store.Session
	api     *api.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig, session *store.Session, coordinator *importer.Coordinator) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router:  gin.Default(),
		session: session,
		api:     api.NewHandler(session, coordinator),
	}

	s.setupRoutes()

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API 路由
	group := s.router.Group("/api")
	{
		s.api.RegisterRoutes(group)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "接口不存在"})
	})
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router 获取路由（用于测试）
func (s *Server) Router() *gin.Engine {
	return s.router
}
