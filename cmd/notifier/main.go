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
	"syscall"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/your-org/pawmatch/internal/config"
	"github.com/your-org/pawmatch/internal/observability"
	"github.com/your-org/pawmatch/internal/queue"
	"github.com/your-org/pawmatch/pkg/dto"
)

// The notifier tails match events off the queue and turns them into owner
// notifications. For now that means structured log lines; a mail or push
// sender would hang off the same handler.
func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	metricsAddr := flag.String("metrics-addr", ":8082", "metrics listen address")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	observability.SetupLogger(cfg.Logging.Level, cfg.Logging.Format)

	if !cfg.NATS.Enabled() {
		fmt.Fprintln(os.Stderr, "notifier requires nats.url to be configured")
		os.Exit(1)
	}

	slog.Info("starting pawmatch notifier", "nats", cfg.NATS.URL)

	consumer, err := queue.NewConsumer(cfg.NATS.URL)
	if err != nil {
		slog.Error("create consumer", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = consumer.ConsumeMatches(ctx, "pawmatch-notifier", func(_ context.Context, msg jetstream.Msg) error {
		var event dto.MatchEvent
		if err := json.Unmarshal(msg.Data(), &event); err != nil {
			slog.Error("unmarshal match event", "error", err)
			return nil // malformed events are not retryable
		}

		slog.Info("match notification",
			"pet", event.PetID,
			"lost_pet", event.LostPetID,
			"found_pet", event.FoundPetID,
			"similarity", event.Similarity,
			"confidence", event.Confidence,
		)
		return nil
	})
	if err != nil {
		slog.Error("start match consumer", "error", err)
		os.Exit(1)
	}

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
		slog.Info("notifier metrics listening", "addr", *metricsAddr)
		if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
			slog.Error("metrics server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down notifier...")
	cancel()
	time.Sleep(2 * time.Second)
	slog.Info("notifier stopped")
}
