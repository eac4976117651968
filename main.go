package main

import (
	"log"

	"github.com/GrainArc/DataAtlas/config"
	"github.com/GrainArc/DataAtlas/models"
	"github.com/GrainArc/DataAtlas/routers"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := models.InitDatabase(); err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}
	r := gin.Default()
	routers.ApiRouters(r)
	routers.GraphRouters(r)
	log.Printf("服务启动，监听 %s", config.MainRouter)
	if err := r.Run(config.MainRouter); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}
