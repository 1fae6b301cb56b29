package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
	"github.com/SscSPs/blog_api/internal/dto"
	"github.com/SscSPs/blog_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	apiVersion        = "1.0.0"
	readinessDeadline = 2 * time.Second
)

// getStatus godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} dto.APIStatusResponse
// @Router / [get]
func getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, dto.APIStatusResponse{
		Message:   "API is live",
		Status:    "success",
		Version:   apiVersion,
		Timestamp: time.Now().UTC(),
	})
}

func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// readinessHandler pings every dependency and reports 503 if any is down.
func readinessHandler(checks map[string]portsrepo.Pinger) gin.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessDeadline)
		defer cancel()

		resp := dto.ReadinessResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC(),
			Checks:    make(map[string]dto.CheckResult, len(checks)),
		}
		status := http.StatusOK
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Readiness check failed",
					slog.String("check", name),
					slog.String("error", err.Error()))
				resp.Checks[name] = dto.CheckResult{Status: "down", Error: err.Error()}
				resp.Status = "unavailable"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = dto.CheckResult{Status: "up"}
		}
		c.JSON(status, resp)
	}
}
