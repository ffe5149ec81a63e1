package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/your-org/pawmatch/internal/api"
	"github.com/your-org/pawmatch/internal/api/ws"
	"github.com/your-org/pawmatch/internal/config"
	"github.com/your-org/pawmatch/internal/matching"
	"github.com/your-org/pawmatch/internal/observability"
	"github.com/your-org/pawmatch/internal/queue"
	"github.com/your-org/pawmatch/internal/storage"
	"github.com/your-org/pawmatch/internal/store"
	"github.com/your-org/pawmatch/internal/vision"
	"github.com/your-org/pawmatch/pkg/dto"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	observability.SetupLogger(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("starting pawmatch API service", "port", cfg.Server.Port)

	// Record store is compiled in; nothing to connect to.
	recordStore := store.New(store.SeedPets())
	finder := matching.NewFinder(recordStore)

	// Optional: MinIO for uploaded analysis images
	var uploads *storage.UploadStore
	if cfg.MinIO.Enabled() {
		uploads, err = storage.NewUploadStore(cfg.MinIO)
		if err != nil {
			slog.Error("connect to minio", "error", err)
			os.Exit(1)
		}
		if err := uploads.EnsureBucket(context.Background()); err != nil {
			slog.Warn("ensure minio bucket", "error", err)
		}
	}

	// Optional: NATS for match event fan-out
	var producer *queue.Producer
	var consumer *queue.Consumer
	if cfg.NATS.Enabled() {
		producer, err = queue.NewProducer(cfg.NATS.URL)
		if err != nil {
			slog.Error("connect to nats", "error", err)
			os.Exit(1)
		}
		defer producer.Close()

		if err := producer.EnsureStreams(context.Background()); err != nil {
			slog.Warn("ensure nats streams", "error", err)
		}

		consumer, err = queue.NewConsumer(cfg.NATS.URL)
		if err != nil {
			slog.Error("create match consumer", "error", err)
			os.Exit(1)
		}
		defer consumer.Close()
	}

	// WebSocket hub
	hub := ws.NewHub()
	go hub.Run()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// With a queue in the path, match events reach clients through it.
	if consumer != nil {
		err = consumer.ConsumeMatches(ctx, "api-matches", func(ctx context.Context, msg jetstream.Msg) error {
			var event dto.MatchEvent
			if err := json.Unmarshal(msg.Data(), &event); err != nil {
				return err
			}
			hub.BroadcastMatch(&event)
			return nil
		})
		if err != nil {
			slog.Warn("start match consumer", "error", err)
		}
	}

	// Vision provider chain: local ONNX classifier if configured, else the
	// remote detection API if a credential is present, else mock only.
	mock := vision.NewMockProvider(cfg.Vision.MockSeed)
	var provider vision.Provider

	if cfg.Vision.LocalEnabled() {
		ort.SetSharedLibraryPath(getONNXLibPath())
		if err := ort.InitializeEnvironment(); err != nil {
			slog.Warn("onnx runtime init failed — local classifier unavailable", "error", err)
		} else {
			classifier, err := vision.NewClassifier(cfg.Vision.ModelPath, cfg.Vision.LabelsPath, cfg.Vision.MinConfidence)
			if err != nil {
				slog.Warn("classifier init failed — local classifier unavailable", "error", err)
			} else {
				provider = classifier
				defer classifier.Close()
				defer ort.DestroyEnvironment()
				slog.Info("local pet classifier ready", "model", cfg.Vision.ModelPath)
			}
		}
	}
	if provider == nil && cfg.Vision.RemoteEnabled() {
		provider = vision.NewRemoteProvider(cfg.Vision.Endpoint, cfg.Vision.APIKey)
		slog.Info("remote detection provider ready", "endpoint", cfg.Vision.Endpoint)
	}
	if provider == nil {
		slog.Info("no vision provider configured, serving mock analysis results")
	}

	extractor := vision.NewExtractor(provider, mock)

	// Setup router
	router := api.NewRouter(api.RouterConfig{
		APIKey:        cfg.Server.APIKey,
		Store:         recordStore,
		Finder:        finder,
		Extractor:     extractor,
		Uploads:       uploads,
		Producer:      producer,
		Hub:           hub,
		MinSimilarity: cfg.Matching.MinSimilarity,
	})

	// Start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("API server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down API server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("API server stopped")
}

// getONNXLibPath returns the ONNX Runtime shared library path.
func getONNXLibPath() string {
	switch runtime.GOOS {
	case "windows":
		return "onnxruntime.dll"
	case "linux":
		return "libonnxruntime.so"
	case "darwin":
		return "libonnxruntime.dylib"
	default:
		return "onnxruntime.dll"
	}
}
