package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Matching MatchingConfig `yaml:"matching"`
	Vision   VisionConfig   `yaml:"vision"`
	MinIO    MinIOConfig    `yaml:"minio"`
	NATS     NATSConfig     `yaml:"nats"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"`
}

type MatchingConfig struct {
	// MinSimilarity is the default threshold applied when a match query
	// does not supply one.
	MinSimilarity float64 `yaml:"min_similarity"`
}

type VisionConfig struct {
	// Local ONNX classifier. Both paths must be set to enable it.
	ModelPath  string `yaml:"model_path"`
	LabelsPath string `yaml:"labels_path"`
	// MinConfidence discards classifier winners below this probability.
	MinConfidence float64 `yaml:"min_confidence"`

	// Remote detection endpoint, used when no local model is configured.
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"api_key"`

	// MockSeed makes the mock provider deterministic; 0 seeds from the clock.
	MockSeed int64 `yaml:"mock_seed"`
}

// LocalEnabled reports whether a local classifier is configured.
func (v VisionConfig) LocalEnabled() bool {
	return v.ModelPath != "" && v.LabelsPath != ""
}

// RemoteEnabled reports whether a remote detection credential is configured.
func (v VisionConfig) RemoteEnabled() bool {
	return v.APIKey != ""
}

type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// Enabled reports whether upload storage is configured at all.
func (m MinIOConfig) Enabled() bool {
	return m.Endpoint != ""
}

type NATSConfig struct {
	URL string `yaml:"url"`
}

func (n NATSConfig) Enabled() bool {
	return n.URL != ""
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads config from YAML file and applies environment variable overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(cfg)
	setDefaults(cfg)

	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Matching.MinSimilarity == 0 {
		cfg.Matching.MinSimilarity = 70
	}
	if cfg.Vision.MinConfidence == 0 {
		cfg.Vision.MinConfidence = 0.25
	}
	if cfg.Vision.Endpoint == "" {
		cfg.Vision.Endpoint = "https://detect.roboflow.com/pet-detection/1"
	}
	if cfg.MinIO.Bucket == "" {
		cfg.MinIO.Bucket = "pawmatch-uploads"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PAWMATCH_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("PAWMATCH_API_KEY"); v != "" {
		cfg.Server.APIKey = v
	}
	if v := os.Getenv("PAWMATCH_MIN_SIMILARITY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Matching.MinSimilarity = f
		}
	}
	if v := os.Getenv("PAWMATCH_VISION_MODEL_PATH"); v != "" {
		cfg.Vision.ModelPath = v
	}
	if v := os.Getenv("PAWMATCH_VISION_LABELS_PATH"); v != "" {
		cfg.Vision.LabelsPath = v
	}
	if v := os.Getenv("PAWMATCH_VISION_ENDPOINT"); v != "" {
		cfg.Vision.Endpoint = v
	}
	if v := os.Getenv("PAWMATCH_VISION_API_KEY"); v != "" {
		cfg.Vision.APIKey = v
	}
	if v := os.Getenv("PAWMATCH_NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("PAWMATCH_MINIO_ENDPOINT"); v != "" {
		cfg.MinIO.Endpoint = v
	}
	if v := os.Getenv("PAWMATCH_MINIO_ACCESS_KEY"); v != "" {
		cfg.MinIO.AccessKey = v
	}
	if v := os.Getenv("PAWMATCH_MINIO_SECRET_KEY"); v != "" {
		cfg.MinIO.SecretKey = v
	}
	if v := os.Getenv("PAWMATCH_MINIO_BUCKET"); v != "" {
		cfg.MinIO.Bucket = v
	}
}
