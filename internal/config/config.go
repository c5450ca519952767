package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	S3          S3Config
	Paths       PathsConfig
	Engine      EngineConfig
	Accelerator AcceleratorConfig
}

// S3Config holds object store settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// PathsConfig holds the local input and output directories.
type PathsConfig struct {
	InputDir   string `mapstructure:"input_dir"`
	OutputRoot string `mapstructure:"output_root"`
}

// EngineConfig holds conversion engine settings. Languages is an optional
// extraction hint passed through to the engine untouched.
type EngineConfig struct {
	Languages    []string `mapstructure:"languages"`
	ImageQuality int      `mapstructure:"image_quality"`
}

// AcceleratorConfig holds accelerator memory settings. Provider selects the
// memory probe implementation ("hostmem" or "noop"); UsageThreshold is the
// reserved/total ratio at which a reclamation pass runs.
type AcceleratorConfig struct {
	Provider       string  `mapstructure:"provider"`
	MemoryBudgetMB int64   `mapstructure:"memory_budget_mb"`
	UsageThreshold float64 `mapstructure:"usage_threshold"`
}

// Load reads configuration from environment variables with the OCRBATCH_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("OCRBATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.prefix", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access_key", "")
	v.SetDefault("s3.secret_key", "")

	// Path defaults
	v.SetDefault("paths.input_dir", "data/pdfs")
	v.SetDefault("paths.output_root", "data/ocr_results")

	// Engine defaults
	v.SetDefault("engine.languages", "")
	v.SetDefault("engine.image_quality", 80)

	// Accelerator defaults
	v.SetDefault("accelerator.provider", "hostmem")
	v.SetDefault("accelerator.memory_budget_mb", 16384)
	v.SetDefault("accelerator.usage_threshold", 0.66)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"s3.region":                    "OCRBATCH_S3_REGION",
		"s3.bucket":                    "OCRBATCH_S3_BUCKET",
		"s3.prefix":                    "OCRBATCH_S3_PREFIX",
		"s3.endpoint":                  "OCRBATCH_S3_ENDPOINT",
		"s3.access_key":                "OCRBATCH_S3_ACCESS_KEY",
		"s3.secret_key":                "OCRBATCH_S3_SECRET_KEY",
		"paths.input_dir":              "OCRBATCH_PATHS_INPUT_DIR",
		"paths.output_root":            "OCRBATCH_PATHS_OUTPUT_ROOT",
		"engine.languages":             "OCRBATCH_ENGINE_LANGUAGES",
		"engine.image_quality":         "OCRBATCH_ENGINE_IMAGE_QUALITY",
		"accelerator.provider":         "OCRBATCH_ACCELERATOR_PROVIDER",
		"accelerator.memory_budget_mb": "OCRBATCH_ACCELERATOR_MEMORY_BUDGET_MB",
		"accelerator.usage_threshold":  "OCRBATCH_ACCELERATOR_USAGE_THRESHOLD",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Languages arrive as a single comma-separated env value
	if langs := v.GetString("engine.languages"); langs != "" {
		cfg.Engine.Languages = splitAndTrim(langs)
	} else {
		cfg.Engine.Languages = nil
	}

	return &cfg, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
