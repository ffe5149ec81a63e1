package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/your-org/pawmatch/internal/api/handlers"
	"github.com/your-org/pawmatch/internal/api/ws"
	"github.com/your-org/pawmatch/internal/auth"
	"github.com/your-org/pawmatch/internal/matching"
	"github.com/your-org/pawmatch/internal/queue"
	"github.com/your-org/pawmatch/internal/storage"
	"github.com/your-org/pawmatch/internal/store"
	"github.com/your-org/pawmatch/internal/vision"
)

type RouterConfig struct {
	APIKey string
	Store  *store.Store
	Finder *matching.Finder
	// Extractor analyzes uploaded images (real provider or mock fallback).
	Extractor *vision.Extractor
	// Uploads and Producer are optional; nil disables the concern.
	Uploads  *storage.UploadStore
	Producer *queue.Producer
	Hub      *ws.Hub
	// MinSimilarity is the default match threshold.
	MinSimilarity float64
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggingMiddleware())
	r.Use(cors.Default())

	// System endpoints (no auth)
	systemH := handlers.NewSystemHandler(cfg.Uploads, cfg.Producer)
	r.GET("/healthz", systemH.Healthz)
	r.GET("/readyz", systemH.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 (with auth)
	v1 := r.Group("/v1")
	v1.Use(auth.APIKeyMiddleware(cfg.APIKey))

	// WebSocket
	if cfg.Hub != nil {
		v1.GET("/ws", cfg.Hub.HandleWS)
	}

	// Pets
	petH := handlers.NewPetHandler(cfg.Store)
	v1.GET("/pets", petH.List)
	v1.GET("/pets/:id", petH.Get)

	// Matches. With a queue wired, events reach the hub through the
	// consumer instead, so the handler must not also broadcast directly.
	matchHub := cfg.Hub
	if cfg.Producer != nil {
		matchHub = nil
	}
	matchH := handlers.NewMatchHandler(cfg.Finder, matchHub, cfg.Producer, cfg.MinSimilarity)
	v1.GET("/matches", matchH.Find)

	// Images
	imageH := handlers.NewImageHandler(cfg.Extractor, cfg.Uploads)
	v1.POST("/images/analyze", imageH.Analyze)
	v1.POST("/images/compare", imageH.Compare)

	return r
}
