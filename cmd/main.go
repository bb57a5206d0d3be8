package main

import (
	"log"

	"github.com/ak-pc/Dextro/internal/config"
	"github.com/ak-pc/Dextro/internal/handler"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional: deployments usually set the real environment
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		// Still serve: the page shows the remedy instead of the table
		log.Println("configuration incomplete:", err)
	}
	handler.SetConfig(cfg)

	r := gin.Default()
	r.SetHTMLTemplate(handler.Template())

	r.GET("/ping", handler.Ping)

	r.GET("/", handler.PageHandler)
	r.GET("/api/profiles", handler.ProfilesHandler)
	r.GET("/export", handler.ExportHandler)

	r.Run(":" + cfg.Port)
}
