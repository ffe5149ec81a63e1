package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pawmatch/internal/queue"
	"github.com/your-org/pawmatch/internal/storage"
)

type SystemHandler struct {
	uploads  *storage.UploadStore // nil when not configured
	producer *queue.Producer      // nil when not configured
}

func NewSystemHandler(uploads *storage.UploadStore, producer *queue.Producer) *SystemHandler {
	return &SystemHandler{uploads: uploads, producer: producer}
}

func (h *SystemHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz checks whichever optional backends are configured. The record
// store is compiled in, so a process with no backends is always ready.
func (h *SystemHandler) Readyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if h.uploads != nil {
		if err := h.uploads.Ping(ctx); err != nil {
			checks["minio"] = err.Error()
			healthy = false
		} else {
			checks["minio"] = "ok"
		}
	}

	if h.producer != nil {
		if err := h.producer.Ping(); err != nil {
			checks["nats"] = err.Error()
			healthy = false
		} else {
			checks["nats"] = "ok"
		}
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status": map[bool]string{true: "ready", false: "not ready"}[healthy],
		"checks": checks,
	})
}
