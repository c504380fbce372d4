package configs

import (
	"errors"
	"fmt"
	"strings"

	"tracking-pixel/internal/shared/validators"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. PIXEL_STREAM_DRIVER overrides stream.driver.
const EnvPrefix = "PIXEL"

// LoadConfig reads configuration from file, applies environment overrides and validates it.
// An empty configPath loads defaults and environment only (serverless deployments).
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	if err := validateCombination(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so that environment overrides work without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 60)

	v.SetDefault("log.level", "info")

	v.SetDefault("ingest.path", "/e")
	v.SetDefault("ingest.max_body_bytes", 64*1024)
	v.SetDefault("ingest.cors_origin", "*")

	v.SetDefault("ua.default_device", "Unknown")

	v.SetDefault("aggregation.mode", "sync")
	v.SetDefault("aggregation.ttl_days", 7)

	v.SetDefault("stream.driver", "local")
	v.SetDefault("stream.name", "")
	v.SetDefault("stream.partitions", 4)
	v.SetDefault("stream.batch_size", 100)
	v.SetDefault("stream.flush_interval_ms", 1000)

	v.SetDefault("counter_store.driver", "memory")
	v.SetDefault("counter_store.table", "")

	v.SetDefault("blob_storage.driver", "local")
	v.SetDefault("blob_storage.root_dir", "./data")
	v.SetDefault("blob_storage.bucket", "")

	v.SetDefault("dashboard.poll_interval_seconds", 5)
	v.SetDefault("dashboard.api_endpoint", "")

	v.SetDefault("aws.region", "")
	v.SetDefault("aws.endpoint", "")
}

// validateCombination rejects driver combinations that cannot work together.
func validateCombination(cfg *Config) error {
	// Firehose delivers straight to storage; nothing would consume the stream for counters.
	if cfg.Aggregation.Mode == AggregationModeBatch && cfg.Stream.Driver == StreamDriverFirehose {
		return errors.New("aggregation.mode (batch requires stream.driver local or kinesis)")
	}
	return nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "server.port")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Server.Port" -> "server.port")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "required_if", "required_unless":
		msg = fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	case "ingestpath":
		msg = fmt.Sprintf("%s (must be an absolute, non-reserved path)", field)
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
