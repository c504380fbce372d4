package configs

const (
	AggregationModeSync  = "sync"
	AggregationModeBatch = "batch"

	StreamDriverLocal    = "local"
	StreamDriverKinesis  = "kinesis"
	StreamDriverFirehose = "firehose"

	CounterStoreDriverMemory   = "memory"
	CounterStoreDriverDynamoDB = "dynamodb"

	BlobStorageDriverLocal = "local"
	BlobStorageDriverS3    = "s3"
)

// Config holds all configuration for the application.
type Config struct {
	Server       ServerConfig       `mapstructure:"server" validate:"required"`
	Log          LogConfig          `mapstructure:"log" validate:"required"`
	Ingest       IngestConfig       `mapstructure:"ingest" validate:"required"`
	UserAgent    UserAgentConfig    `mapstructure:"ua" validate:"required"`
	Aggregation  AggregationConfig  `mapstructure:"aggregation" validate:"required"`
	Stream       StreamConfig       `mapstructure:"stream" validate:"required"`
	CounterStore CounterStoreConfig `mapstructure:"counter_store" validate:"required"`
	BlobStorage  BlobStorageConfig  `mapstructure:"blob_storage" validate:"required"`
	Dashboard    DashboardConfig    `mapstructure:"dashboard" validate:"required"`
	AWS          AWSConfig          `mapstructure:"aws"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// IngestConfig holds the pixel/custom event endpoint configuration.
type IngestConfig struct {
	Path         string `mapstructure:"path" validate:"required,ingestpath"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes" validate:"required,min=1"`
	CORSOrigin   string `mapstructure:"cors_origin"`
}

// UserAgentConfig holds user-agent classification configuration.
type UserAgentConfig struct {
	DefaultDevice string `mapstructure:"default_device" validate:"required"`
}

// AggregationConfig selects where counters are updated.
//   - sync: the ingest request updates counters inline; the stream consumer only archives
//   - batch: the ingest request only publishes; the stream consumer archives and updates counters
type AggregationConfig struct {
	Mode    string `mapstructure:"mode" validate:"required,oneof=sync batch"`
	TTLDays int    `mapstructure:"ttl_days" validate:"required,min=1"`
}

// StreamConfig holds stream transport configuration.
type StreamConfig struct {
	Driver          string `mapstructure:"driver" validate:"required,oneof=local kinesis firehose"`
	Name            string `mapstructure:"name" validate:"required_unless=Driver local"`
	Partitions      int    `mapstructure:"partitions" validate:"required,min=1,max=64"`
	BatchSize       int    `mapstructure:"batch_size" validate:"required,min=1,max=10000"`
	FlushIntervalMs int    `mapstructure:"flush_interval_ms" validate:"required,min=1"`
}

// CounterStoreConfig holds counter store configuration.
type CounterStoreConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=memory dynamodb"`
	Table  string `mapstructure:"table" validate:"required_if=Driver dynamodb"`
}

// BlobStorageConfig holds archive blob storage configuration.
type BlobStorageConfig struct {
	Driver  string `mapstructure:"driver" validate:"required,oneof=local s3"`
	RootDir string `mapstructure:"root_dir" validate:"required_if=Driver local"`
	Bucket  string `mapstructure:"bucket" validate:"required_if=Driver s3"`
}

// DashboardConfig holds demo/dashboard page configuration.
type DashboardConfig struct {
	PollIntervalSeconds int    `mapstructure:"poll_interval_seconds" validate:"required,min=1"`
	APIEndpoint         string `mapstructure:"api_endpoint"`
}

// AWSConfig holds shared AWS client configuration. Endpoint is only set for local emulators.
type AWSConfig struct {
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
}

// UsesAWS reports whether any configured driver needs AWS clients.
func (c *Config) UsesAWS() bool {
	return c.Stream.Driver != StreamDriverLocal ||
		c.CounterStore.Driver == CounterStoreDriverDynamoDB ||
		c.BlobStorage.Driver == BlobStorageDriverS3
}
