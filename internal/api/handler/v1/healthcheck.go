package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/magscene/magsav-api/internal/api/handler/v1/response"
)

const readinessTimeout = 2 * time.Second

// HandleHealthcheck godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Health
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.Health{Status: "ok"})
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type ReadinessHandler struct {
	db Pinger
}

func NewReadinessHandler(db Pinger) *ReadinessHandler {
	return &ReadinessHandler{
		db: db,
	}
}

// HandleReadiness godoc
// @Summary      Readiness check
// @Description  Pings the database.
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Readiness
// @Failure      503  {object}  response.Readiness
// @Router       /readiness [get]
func (h *ReadinessHandler) HandleReadiness(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), readinessTimeout)
	defer cancel()

	if err := h.db.PingContext(pingCtx); err != nil {
		_ = ctx.Error(fmt.Errorf("v1.HandleReadiness -> h.db.PingContext -> %w", err))
		ctx.JSON(http.StatusServiceUnavailable, response.Readiness{Status: "unavailable", Database: "down"})
		return
	}

	ctx.JSON(http.StatusOK, response.Readiness{Status: "ready", Database: "up"})
}
