package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zhixunlab/consult-booking/internal/config"
	dbpkg "github.com/zhixunlab/consult-booking/internal/db"
	"github.com/zhixunlab/consult-booking/internal/middleware"
	"github.com/zhixunlab/consult-booking/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.New()
	r.Use(gin.Logger())

	// an unhandled fault must never leak internals to the client
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "服务器内部错误"})
	}))

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "页面不存在"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
