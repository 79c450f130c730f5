package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/study-space/core/internal/modules/chat"
	"github.com/study-space/core/internal/modules/subject"
	"github.com/study-space/core/internal/pkg/llm"
	"github.com/study-space/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":    "study-space-core",
		"message": "Educational Study App API",
		"version": "1.0.0",
	}

	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		dbOK := a.store.Ping(ctx) == nil

		status := "ok"
		code := http.StatusOK
		if !dbOK {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":   status,
			"database": dbOK,
		})
	})

	api := r.Group("/api")
	api.GET("", func(c *gin.Context) { c.JSON(http.StatusOK, appInfo) })

	chatSvc := chat.NewService(a.store, llm.NewClient(), a.cfg.AI, a.logger)
	chat.NewHandler(chatSvc).RegisterRoutes(api)
	subject.NewHandler().RegisterRoutes(api)
}
