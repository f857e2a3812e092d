package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"famitodo/internal/adapter/http/dto"
	"famitodo/internal/core/ports"
)

// SweepHandler exposes the sweep to the external scheduler. The handler is
// intentionally thin: it stamps "now" and reports whatever the engine did.
type SweepHandler struct {
	sweepService ports.SweepService
}

func NewSweepHandler(sweepService ports.SweepService) *SweepHandler {
	return &SweepHandler{sweepService: sweepService}
}

func (h *SweepHandler) Run(c *gin.Context) {
	report, err := h.sweepService.RunSweep(c.Request.Context(), time.Now().UTC())
	if err != nil {
		zap.L().Error("sweep run failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.SweepResponse{Success: false})
		return
	}

	c.JSON(http.StatusOK, dto.SweepResponse{
		Success:   true,
		Processed: report.Processed,
		Errors:    report.Errors,
		Details:   report.Failures,
	})
}
